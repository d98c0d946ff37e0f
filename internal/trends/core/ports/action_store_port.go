package ports

import (
	"context"
	"errors"

	"event-trends-service/internal/trends/core/domain"
)

var ErrActionNotFound = errors.New("action not found")

type ActionStorePort interface {
	// GetAction resolves a non-deleted action for the team.
	// Returns ErrActionNotFound when it does not exist.
	GetAction(ctx context.Context, teamID, actionID int64) (*domain.Action, error)

	// ListActions returns the team's non-deleted actions, newest first.
	ListActions(ctx context.Context, teamID int64) ([]domain.Action, error)
}
