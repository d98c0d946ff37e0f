package postgres

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"event-trends-service/internal/trends/core/domain"
	"event-trends-service/internal/trends/core/ports"
)

// fakeRowScanner implements RowScanner for tests.
type fakeRowScanner struct {
	rows []fakeRow
	i    int
	err  error
}

type fakeRow struct {
	values []any
}

func (f *fakeRowScanner) Next() bool {
	return f.i < len(f.rows)
}

func (f *fakeRowScanner) Scan(dest ...any) error {
	if f.i >= len(f.rows) {
		return errors.New("no more rows")
	}
	row := f.rows[f.i]
	if len(dest) != len(row.values) {
		return errors.New("dest length mismatch")
	}
	for i := range dest {
		switch d := dest[i].(type) {
		case *int64:
			v, ok := row.values[i].(int64)
			if !ok {
				return errors.New("type assertion to int64 failed")
			}
			*d = v
		case *string:
			v, ok := row.values[i].(string)
			if !ok {
				return errors.New("type assertion to string failed")
			}
			*d = v
		case *time.Time:
			v, ok := row.values[i].(time.Time)
			if !ok {
				return errors.New("type assertion to time.Time failed")
			}
			*d = v
		default:
			return errors.New("unsupported dest type")
		}
	}
	f.i++
	return nil
}

func (f *fakeRowScanner) Err() error {
	return f.err
}

func (f *fakeRowScanner) Close() error {
	return nil
}

// fakeDB implements the DB interface.
type fakeDB struct {
	QueryFn   func(ctx context.Context, query string, args ...any) (RowScanner, error)
	lastQuery string
	lastArgs  []any
	called    bool
}

func (f *fakeDB) QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error) {
	f.called = true
	f.lastQuery = query
	f.lastArgs = args
	if f.QueryFn != nil {
		return f.QueryFn(ctx, query, args...)
	}
	return &fakeRowScanner{}, nil
}

func ts(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func boundedFilter() ports.EventFilter {
	from := ts(2020, 1, 1)
	to := ts(2020, 1, 4)
	return ports.EventFilter{TimestampFrom: &from, TimestampTo: &to}
}

// ------------------------------------------------------------
// DAILY COUNTS
// ------------------------------------------------------------

func TestEventStore_DailyCounts(t *testing.T) {
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			return &fakeRowScanner{rows: []fakeRow{
				{values: []any{ts(2020, 1, 1), int64(2)}},
				{values: []any{ts(2020, 1, 3), int64(1)}},
			}}, nil
		},
	}
	store := NewEventStore(db)

	sel := ports.EventSelection{TeamID: 1, EventName: "$pageview"}
	out, err := store.DailyCounts(context.Background(), sel, boundedFilter(), domain.MathTotal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(db.lastQuery, "FROM events e") {
		t.Fatalf("unexpected query: %s", db.lastQuery)
	}
	if !strings.Contains(db.lastQuery, "date_trunc('day', e.timestamp)") {
		t.Fatalf("expected day truncation, got: %s", db.lastQuery)
	}
	if !strings.Contains(db.lastQuery, "COUNT(*)") {
		t.Fatalf("expected raw count, got: %s", db.lastQuery)
	}
	if strings.Contains(db.lastQuery, "person_distinct_ids") {
		t.Fatalf("raw counts must not join persons: %s", db.lastQuery)
	}

	want := []any{int64(1), "$pageview", ts(2020, 1, 1), ts(2020, 1, 4)}
	if !reflect.DeepEqual(db.lastArgs, want) {
		t.Fatalf("expected args %v, got %v", want, db.lastArgs)
	}

	if len(out) != 2 || out[0].Count != 2 || !out[1].Day.Equal(ts(2020, 1, 3)) {
		t.Fatalf("unexpected rows: %+v", out)
	}
}

func TestEventStore_DailyCountsDAU(t *testing.T) {
	db := &fakeDB{}
	store := NewEventStore(db)

	sel := ports.EventSelection{TeamID: 1, EventName: "$pageview"}
	if _, err := store.DailyCounts(context.Background(), sel, boundedFilter(), domain.MathDAU); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(db.lastQuery, "COUNT(DISTINCT pd.person_id)") {
		t.Fatalf("expected distinct person count, got: %s", db.lastQuery)
	}
	if !strings.Contains(db.lastQuery, "JOIN person_distinct_ids pd") {
		t.Fatalf("expected person join, got: %s", db.lastQuery)
	}
}

func TestEventStore_SelectionByAction(t *testing.T) {
	db := &fakeDB{}
	store := NewEventStore(db)

	sel := ports.EventSelection{TeamID: 1, ActionID: 7}
	if _, err := store.DailyCounts(context.Background(), sel, boundedFilter(), domain.MathTotal); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(db.lastQuery, "JOIN action_events ae ON ae.event_id = e.id") {
		t.Fatalf("expected action linkage join, got: %s", db.lastQuery)
	}
	if !strings.Contains(db.lastQuery, "ae.action_id = $2") {
		t.Fatalf("expected action condition, got: %s", db.lastQuery)
	}
	if db.lastArgs[1] != int64(7) {
		t.Fatalf("expected action id arg, got %v", db.lastArgs)
	}
}

// ------------------------------------------------------------
// PROPERTY FILTER COMPILATION
// ------------------------------------------------------------

func TestEventStore_PropertyFilters(t *testing.T) {
	db := &fakeDB{}
	store := NewEventStore(db)

	f := boundedFilter()
	f.Properties = []domain.PropertyFilter{
		{Key: "$browser", Operator: domain.OperatorExact, Value: "Chrome"},
		{Key: "plan", Operator: domain.OperatorIContains, Value: "pro"},
		{Key: "utm_source", Operator: domain.OperatorIsSet},
		{Key: "price", Operator: domain.OperatorGT, Value: float64(10)},
	}

	sel := ports.EventSelection{TeamID: 1, EventName: "purchase"}
	if _, err := store.DailyCounts(context.Background(), sel, f, domain.MathTotal); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, frag := range []string{
		"e.properties->>$5 = $6",
		"e.properties->>$7 ILIKE $8",
		"e.properties->>$9 IS NOT NULL",
		"(e.properties->>$10)::numeric > $11",
	} {
		if !strings.Contains(db.lastQuery, frag) {
			t.Fatalf("expected %q in query: %s", frag, db.lastQuery)
		}
	}

	want := []any{
		int64(1), "purchase", ts(2020, 1, 1), ts(2020, 1, 4),
		"$browser", "Chrome",
		"plan", "%pro%",
		"utm_source",
		"price", float64(10),
	}
	if !reflect.DeepEqual(db.lastArgs, want) {
		t.Fatalf("expected args %v, got %v", want, db.lastArgs)
	}
}

func TestEventStore_UnsupportedOperator(t *testing.T) {
	db := &fakeDB{}
	store := NewEventStore(db)

	f := ports.EventFilter{Properties: []domain.PropertyFilter{
		{Key: "k", Operator: "regex", Value: "v"},
	}}

	_, err := store.DailyCounts(context.Background(), ports.EventSelection{TeamID: 1, EventName: "x"}, f, domain.MathTotal)
	if err == nil {
		t.Fatalf("expected error for unsupported operator")
	}
	if db.called {
		t.Fatalf("no query should run for an invalid filter")
	}
}

// ------------------------------------------------------------
// PROPERTY COUNTS (BREAKDOWN)
// ------------------------------------------------------------

func TestEventStore_PropertyCounts(t *testing.T) {
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			return &fakeRowScanner{rows: []fakeRow{
				{values: []any{"Chrome", int64(3)}},
				{values: []any{"undefined", int64(2)}},
				{values: []any{"Safari", int64(1)}},
			}}, nil
		},
	}
	store := NewEventStore(db)

	sel := ports.EventSelection{TeamID: 1, EventName: "$pageview"}
	out, err := store.PropertyCounts(context.Background(), sel, boundedFilter(), "$browser", domain.MathTotal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(db.lastQuery, "COALESCE(NULLIF(e.properties->>$5, ''), 'undefined')") {
		t.Fatalf("expected undefined bucketing, got: %s", db.lastQuery)
	}
	if !strings.Contains(db.lastQuery, "ORDER BY count DESC, value") {
		t.Fatalf("expected descending order, got: %s", db.lastQuery)
	}
	if db.lastArgs[len(db.lastArgs)-1] != "$browser" {
		t.Fatalf("expected breakdown key arg, got %v", db.lastArgs)
	}

	want := []ports.PropertyCount{
		{Value: "Chrome", Count: 3},
		{Value: "undefined", Count: 2},
		{Value: "Safari", Count: 1},
	}
	if !reflect.DeepEqual(out, want) {
		t.Fatalf("expected %v, got %v", want, out)
	}
}

// ------------------------------------------------------------
// STICKINESS
// ------------------------------------------------------------

func TestEventStore_StickinessCounts(t *testing.T) {
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			return &fakeRowScanner{rows: []fakeRow{
				{values: []any{int64(1), int64(1)}},
				{values: []any{int64(2), int64(1)}},
			}}, nil
		},
	}
	store := NewEventStore(db)

	sel := ports.EventSelection{TeamID: 1, EventName: "$pageview"}
	out, err := store.StickinessCounts(context.Background(), sel, boundedFilter(), 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(db.lastQuery, "COUNT(DISTINCT date_trunc('day', e.timestamp)) AS day_count") {
		t.Fatalf("expected distinct-day subquery, got: %s", db.lastQuery)
	}
	if !strings.Contains(db.lastQuery, "GROUP BY v.day_count") {
		t.Fatalf("expected histogram grouping, got: %s", db.lastQuery)
	}
	if db.lastArgs[len(db.lastArgs)-1] != 4 {
		t.Fatalf("expected maxDays arg, got %v", db.lastArgs)
	}

	want := []ports.StickinessBucket{
		{DayCount: 1, Persons: 1},
		{DayCount: 2, Persons: 1},
	}
	if !reflect.DeepEqual(out, want) {
		t.Fatalf("expected %v, got %v", want, out)
	}
}

// ------------------------------------------------------------
// PERSON RESOLUTION
// ------------------------------------------------------------

func TestEventStore_DistinctPersons(t *testing.T) {
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			return &fakeRowScanner{rows: []fakeRow{
				{values: []any{int64(10)}},
				{values: []any{int64(11)}},
			}}, nil
		},
	}
	store := NewEventStore(db)

	sel := ports.EventSelection{TeamID: 1, EventName: "$pageview"}
	ids, err := store.DistinctPersons(context.Background(), sel, boundedFilter(), 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(db.lastQuery, "SELECT DISTINCT pd.person_id") {
		t.Fatalf("expected distinct person select, got: %s", db.lastQuery)
	}
	if db.lastArgs[len(db.lastArgs)-1] != 100 {
		t.Fatalf("expected limit arg, got %v", db.lastArgs)
	}
	if !reflect.DeepEqual(ids, []int64{10, 11}) {
		t.Fatalf("expected ids [10 11], got %v", ids)
	}
}

func TestEventStore_PersonsActiveExactly(t *testing.T) {
	db := &fakeDB{}
	store := NewEventStore(db)

	sel := ports.EventSelection{TeamID: 1, ActionID: 7}
	if _, err := store.PersonsActiveExactly(context.Background(), sel, boundedFilter(), 3, 100); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(db.lastQuery, "HAVING COUNT(DISTINCT date_trunc('day', e.timestamp)) = $") {
		t.Fatalf("expected exact day-count condition, got: %s", db.lastQuery)
	}

	n := len(db.lastArgs)
	if db.lastArgs[n-2] != 3 || db.lastArgs[n-1] != 100 {
		t.Fatalf("expected days and limit args, got %v", db.lastArgs)
	}
}
