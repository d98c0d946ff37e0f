package postgres

import (
	"context"

	"event-trends-service/internal/trends/core/domain"
	"event-trends-service/internal/trends/core/ports"
)

type ActionStore struct {
	db DB
}

func NewActionStore(db DB) *ActionStore {
	return &ActionStore{db: db}
}

var _ ports.ActionStorePort = (*ActionStore)(nil)

const getActionSQL = `
SELECT id, name
FROM actions
WHERE team_id = $1 AND id = $2 AND NOT deleted`

func (s *ActionStore) GetAction(ctx context.Context, teamID, actionID int64) (*domain.Action, error) {
	rows, err := s.db.QueryContext(ctx, getActionSQL, teamID, actionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, ports.ErrActionNotFound
	}

	var a domain.Action
	if err := rows.Scan(&a.ID, &a.Name); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &a, nil
}

const listActionsSQL = `
SELECT id, name
FROM actions
WHERE team_id = $1 AND NOT deleted
ORDER BY id DESC`

func (s *ActionStore) ListActions(ctx context.Context, teamID int64) ([]domain.Action, error) {
	rows, err := s.db.QueryContext(ctx, listActionsSQL, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var actions []domain.Action
	for rows.Next() {
		var a domain.Action
		if err := rows.Scan(&a.ID, &a.Name); err != nil {
			return nil, err
		}
		actions = append(actions, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return actions, nil
}
