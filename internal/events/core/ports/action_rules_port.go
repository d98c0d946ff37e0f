package ports

import (
	"context"

	"event-trends-service/internal/events/core/domain"
)

type ActionRulesPort interface {
	// ListRules returns the match rules of the team's non-deleted actions,
	// ordered by action then step.
	ListRules(ctx context.Context, teamID int64) ([]domain.ActionRule, error)
}
