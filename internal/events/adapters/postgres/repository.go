package postgres

import (
	"context"
	"encoding/json"

	"event-trends-service/internal/events/core/domain"
	"event-trends-service/internal/events/core/ports"

	"github.com/lib/pq"
)

type EventRepository struct {
	db DB
}

func NewEventRepository(db DB) *EventRepository {
	return &EventRepository{db: db}
}

var _ ports.EventWriterPort = (*EventRepository)(nil)

// SQL templates
const ensurePersonSQL = `
WITH new_person AS (
    INSERT INTO persons (team_id, created_at)
    SELECT $1, now()
    WHERE NOT EXISTS (
        SELECT 1 FROM person_distinct_ids
        WHERE team_id = $1 AND distinct_id = $2
    )
    RETURNING id
)
INSERT INTO person_distinct_ids (team_id, distinct_id, person_id)
SELECT $1, $2, id FROM new_person
ON CONFLICT (team_id, distinct_id) DO NOTHING;
`

const insertEventSQL = `
INSERT INTO events (
    id,
    team_id,
    distinct_id,
    event_name,
    properties,
    timestamp
) VALUES (
    $1, $2, $3,
    $4, $5, $6
);
`

const linkActionsSQL = `
INSERT INTO action_events (action_id, event_id)
SELECT unnest($1::bigint[]), $2;
`

func (r *EventRepository) EnsurePerson(ctx context.Context, teamID int64, distinctID string) error {
	_, err := r.db.ExecContext(ctx, ensurePersonSQL, teamID, distinctID)
	return err
}

func (r *EventRepository) InsertEvent(ctx context.Context, e *domain.Event, actionIDs []int64) error {
	propertiesJSON, err := json.Marshal(e.Properties)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, insertEventSQL,
		e.ID,
		e.TeamID,
		e.DistinctID,
		e.Name,
		propertiesJSON,
		e.Timestamp,
	)
	if err != nil {
		return err
	}

	if len(actionIDs) == 0 {
		return nil
	}

	_, err = r.db.ExecContext(ctx, linkActionsSQL, pq.Array(actionIDs), e.ID)
	return err
}
