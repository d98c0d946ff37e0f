package ports

import (
	"context"

	"event-trends-service/internal/trends/core/domain"
)

type PeopleStorePort interface {
	// GetByPersonIDs loads the team's person profiles for the given ids,
	// ordered by id. Unknown ids are silently dropped.
	GetByPersonIDs(ctx context.Context, teamID int64, personIDs []int64) ([]domain.Person, error)
}
