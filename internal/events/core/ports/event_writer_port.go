package ports

import (
	"context"

	"event-trends-service/internal/events/core/domain"
)

type EventWriterPort interface {
	// EnsurePerson provisions a person for an unseen distinct id so that
	// person-level analytics always resolve. Existing mappings are
	// untouched.
	EnsurePerson(ctx context.Context, teamID int64, distinctID string) error

	// InsertEvent stores the event and links it to the matched actions.
	InsertEvent(ctx context.Context, e *domain.Event, actionIDs []int64) error
}
