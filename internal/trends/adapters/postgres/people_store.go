package postgres

import (
	"context"
	"encoding/json"
	"time"

	"event-trends-service/internal/trends/core/domain"
	"event-trends-service/internal/trends/core/ports"

	"github.com/lib/pq"
)

type PeopleStore struct {
	db DB
}

func NewPeopleStore(db DB) *PeopleStore {
	return &PeopleStore{db: db}
}

var _ ports.PeopleStorePort = (*PeopleStore)(nil)

const getPersonsSQL = `
SELECT id, COALESCE(name, ''), COALESCE(properties::text, '{}'), created_at
FROM persons
WHERE team_id = $1 AND id = ANY($2)
ORDER BY id`

func (s *PeopleStore) GetByPersonIDs(ctx context.Context, teamID int64, personIDs []int64) ([]domain.Person, error) {
	if len(personIDs) == 0 {
		return []domain.Person{}, nil
	}

	rows, err := s.db.QueryContext(ctx, getPersonsSQL, teamID, pq.Array(personIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	people := make([]domain.Person, 0, len(personIDs))
	for rows.Next() {
		var (
			p         domain.Person
			propsJSON string
			createdAt time.Time
		)
		if err := rows.Scan(&p.ID, &p.Name, &propsJSON, &createdAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(propsJSON), &p.Properties); err != nil {
			return nil, err
		}
		p.CreatedAt = createdAt.UTC()
		people = append(people, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return people, nil
}
