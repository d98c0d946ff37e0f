package postgres

import (
	"context"

	"event-trends-service/internal/events/core/domain"
	"event-trends-service/internal/events/core/ports"
)

type ActionRulesRepository struct {
	db DB
}

func NewActionRulesRepository(db DB) *ActionRulesRepository {
	return &ActionRulesRepository{db: db}
}

var _ ports.ActionRulesPort = (*ActionRulesRepository)(nil)

const listRulesSQL = `
SELECT s.action_id, COALESCE(s.event, ''), COALESCE(s.url, ''), COALESCE(s.url_matching, 'contains')
FROM action_steps s
JOIN actions a ON a.id = s.action_id
WHERE a.team_id = $1 AND NOT a.deleted
ORDER BY s.action_id, s.id`

func (r *ActionRulesRepository) ListRules(ctx context.Context, teamID int64) ([]domain.ActionRule, error) {
	rows, err := r.db.QueryContext(ctx, listRulesSQL, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rules []domain.ActionRule
	for rows.Next() {
		var rule domain.ActionRule
		if err := rows.Scan(&rule.ActionID, &rule.EventName, &rule.URL, &rule.URLMatching); err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return rules, nil
}
