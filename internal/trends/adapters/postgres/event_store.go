package postgres

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"event-trends-service/internal/trends/core/domain"
	"event-trends-service/internal/trends/core/ports"
)

// EventStore answers aggregation queries over the events table. Grouping and
// distinct-counting are pushed down to Postgres; the core only shapes the
// returned rows.
type EventStore struct {
	db DB
}

func NewEventStore(db DB) *EventStore {
	return &EventStore{db: db}
}

var _ ports.EventStorePort = (*EventStore)(nil)

// eventQuery is the FROM/WHERE skeleton shared by every aggregation.
// Person-level aggregations join person_distinct_ids so that merged distinct
// ids resolve to a single person.
type eventQuery struct {
	from  string
	where string
	args  []any
}

func buildEventQuery(sel ports.EventSelection, f ports.EventFilter, joinPersons bool) (eventQuery, error) {
	from := "events e"
	conds := make([]string, 0, 4)
	args := make([]any, 0, 4)

	next := func() int { return len(args) + 1 }

	conds = append(conds, fmt.Sprintf("e.team_id = $%d", next()))
	args = append(args, sel.TeamID)

	switch {
	case sel.ActionID > 0:
		from += " JOIN action_events ae ON ae.event_id = e.id"
		conds = append(conds, fmt.Sprintf("ae.action_id = $%d", next()))
		args = append(args, sel.ActionID)
	case sel.EventName != "":
		conds = append(conds, fmt.Sprintf("e.event_name = $%d", next()))
		args = append(args, sel.EventName)
	}

	if joinPersons {
		from += " JOIN person_distinct_ids pd ON pd.team_id = e.team_id AND pd.distinct_id = e.distinct_id"
	}

	if f.TimestampFrom != nil {
		conds = append(conds, fmt.Sprintf("e.timestamp >= $%d", next()))
		args = append(args, *f.TimestampFrom)
	}
	if f.TimestampTo != nil {
		conds = append(conds, fmt.Sprintf("e.timestamp <= $%d", next()))
		args = append(args, *f.TimestampTo)
	}

	for _, p := range f.Properties {
		cond, vals, err := propertyCondition(p, len(args)+1)
		if err != nil {
			return eventQuery{}, err
		}
		conds = append(conds, cond)
		args = append(args, vals...)
	}

	return eventQuery{
		from:  from,
		where: strings.Join(conds, " AND "),
		args:  args,
	}, nil
}

func propertyCondition(p domain.PropertyFilter, idx int) (string, []any, error) {
	key := fmt.Sprintf("e.properties->>$%d", idx)

	switch p.Operator {
	case domain.OperatorExact:
		return fmt.Sprintf("%s = $%d", key, idx+1), []any{p.Key, textValue(p.Value)}, nil
	case domain.OperatorIsNot:
		return fmt.Sprintf("%s IS DISTINCT FROM $%d", key, idx+1), []any{p.Key, textValue(p.Value)}, nil
	case domain.OperatorIContains:
		return fmt.Sprintf("%s ILIKE $%d", key, idx+1), []any{p.Key, "%" + textValue(p.Value) + "%"}, nil
	case domain.OperatorIsSet:
		return fmt.Sprintf("%s IS NOT NULL", key), []any{p.Key}, nil
	case domain.OperatorIsNotSet:
		return fmt.Sprintf("%s IS NULL", key), []any{p.Key}, nil
	case domain.OperatorGT:
		return fmt.Sprintf("(%s)::numeric > $%d", key, idx+1), []any{p.Key, numericValue(p.Value)}, nil
	case domain.OperatorGTE:
		return fmt.Sprintf("(%s)::numeric >= $%d", key, idx+1), []any{p.Key, numericValue(p.Value)}, nil
	case domain.OperatorLT:
		return fmt.Sprintf("(%s)::numeric < $%d", key, idx+1), []any{p.Key, numericValue(p.Value)}, nil
	case domain.OperatorLTE:
		return fmt.Sprintf("(%s)::numeric <= $%d", key, idx+1), []any{p.Key, numericValue(p.Value)}, nil
	default:
		// the usecase validates operators; this is a programming error
		return "", nil, fmt.Errorf("unsupported property operator: %q", p.Operator)
	}
}

// textValue renders a filter value the way properties->> does: as text.
func textValue(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	if f, ok := v.(float64); ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return fmt.Sprintf("%v", v)
}

func numericValue(v any) any {
	if s, ok := v.(string); ok {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}
	return v
}

func countExpr(math domain.MathMode) string {
	if math == domain.MathDAU {
		return "COUNT(DISTINCT pd.person_id)"
	}
	return "COUNT(*)"
}

func (s *EventStore) DailyCounts(ctx context.Context, sel ports.EventSelection, f ports.EventFilter, math domain.MathMode) ([]ports.DayCount, error) {
	q, err := buildEventQuery(sel, f, math == domain.MathDAU)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
SELECT
    date_trunc('day', e.timestamp) AS day,
    %s AS count
FROM %s
WHERE %s
GROUP BY day
ORDER BY day`, countExpr(math), q.from, q.where)

	rows, err := s.db.QueryContext(ctx, query, q.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ports.DayCount
	for rows.Next() {
		var day time.Time
		var count int64
		if err := rows.Scan(&day, &count); err != nil {
			return nil, err
		}
		out = append(out, ports.DayCount{Day: day.UTC(), Count: count})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

func (s *EventStore) PropertyCounts(ctx context.Context, sel ports.EventSelection, f ports.EventFilter, key string, math domain.MathMode) ([]ports.PropertyCount, error) {
	q, err := buildEventQuery(sel, f, math == domain.MathDAU)
	if err != nil {
		return nil, err
	}

	keyIdx := len(q.args) + 1
	args := append(q.args, key)

	// missing and empty values collapse into a single "undefined" bucket
	query := fmt.Sprintf(`
SELECT
    COALESCE(NULLIF(e.properties->>$%d, ''), 'undefined') AS value,
    %s AS count
FROM %s
WHERE %s
GROUP BY value
ORDER BY count DESC, value`, keyIdx, countExpr(math), q.from, q.where)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ports.PropertyCount
	for rows.Next() {
		var value string
		var count int64
		if err := rows.Scan(&value, &count); err != nil {
			return nil, err
		}
		out = append(out, ports.PropertyCount{Value: value, Count: count})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

func (s *EventStore) StickinessCounts(ctx context.Context, sel ports.EventSelection, f ports.EventFilter, maxDays int) ([]ports.StickinessBucket, error) {
	q, err := buildEventQuery(sel, f, true)
	if err != nil {
		return nil, err
	}

	maxIdx := len(q.args) + 1
	args := append(q.args, maxDays)

	// two-phase: per-person distinct active days, then a histogram over
	// that derived column
	query := fmt.Sprintf(`
SELECT v.day_count, COUNT(*) AS persons
FROM (
    SELECT pd.person_id, COUNT(DISTINCT date_trunc('day', e.timestamp)) AS day_count
    FROM %s
    WHERE %s
    GROUP BY pd.person_id
) v
WHERE v.day_count <= $%d
GROUP BY v.day_count
ORDER BY v.day_count`, q.from, q.where, maxIdx)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ports.StickinessBucket
	for rows.Next() {
		var dayCount, persons int64
		if err := rows.Scan(&dayCount, &persons); err != nil {
			return nil, err
		}
		out = append(out, ports.StickinessBucket{DayCount: int(dayCount), Persons: persons})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

func (s *EventStore) DistinctPersons(ctx context.Context, sel ports.EventSelection, f ports.EventFilter, limit int) ([]int64, error) {
	q, err := buildEventQuery(sel, f, true)
	if err != nil {
		return nil, err
	}

	limitIdx := len(q.args) + 1
	args := append(q.args, limit)

	query := fmt.Sprintf(`
SELECT DISTINCT pd.person_id
FROM %s
WHERE %s
ORDER BY pd.person_id
LIMIT $%d`, q.from, q.where, limitIdx)

	return s.queryPersonIDs(ctx, query, args)
}

func (s *EventStore) PersonsActiveExactly(ctx context.Context, sel ports.EventSelection, f ports.EventFilter, days, limit int) ([]int64, error) {
	q, err := buildEventQuery(sel, f, true)
	if err != nil {
		return nil, err
	}

	daysIdx := len(q.args) + 1
	args := append(q.args, days, limit)

	query := fmt.Sprintf(`
SELECT pd.person_id
FROM %s
WHERE %s
GROUP BY pd.person_id
HAVING COUNT(DISTINCT date_trunc('day', e.timestamp)) = $%d
ORDER BY pd.person_id
LIMIT $%d`, q.from, q.where, daysIdx, daysIdx+1)

	return s.queryPersonIDs(ctx, query, args)
}

func (s *EventStore) queryPersonIDs(ctx context.Context, query string, args []any) ([]int64, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return ids, nil
}
