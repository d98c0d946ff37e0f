package ports

import (
	"context"
	"time"

	"event-trends-service/internal/trends/core/domain"
)

// EventSelection picks the base event set for one entity. Exactly one of
// ActionID / EventName is set.
type EventSelection struct {
	TeamID    int64
	ActionID  int64  // > 0: events linked to this action
	EventName string // != "": events with this name
}

// EventFilter narrows a selection by time range and property predicates.
// Nil bounds and an empty property list mean "match everything".
type EventFilter struct {
	// TimestampFrom is inclusive. TimestampTo is the exclusive-ish upper
	// bound already shifted past the end day (date_to + 1 day).
	TimestampFrom *time.Time
	TimestampTo   *time.Time
	Properties    []domain.PropertyFilter
}

type DayCount struct {
	Day   time.Time
	Count int64
}

type PropertyCount struct {
	Value string
	Count int64
}

// StickinessBucket: Persons were active on exactly DayCount distinct days.
type StickinessBucket struct {
	DayCount int
	Persons  int64
}

type EventStorePort interface {
	// DailyCounts groups matching events by calendar day, ordered by day.
	// Days with no events are absent from the result.
	DailyCounts(ctx context.Context, sel EventSelection, f EventFilter, math domain.MathMode) ([]DayCount, error)

	// PropertyCounts groups matching events by the value of one property,
	// ordered by count descending. Rows with a missing or empty value are
	// grouped under the single value "undefined".
	PropertyCounts(ctx context.Context, sel EventSelection, f EventFilter, key string, math domain.MathMode) ([]PropertyCount, error)

	// StickinessCounts counts, per distinct-day count K, the persons with
	// exactly K active days, keeping only persons with at most maxDays
	// active days. Ordered by K ascending; empty buckets are absent.
	StickinessCounts(ctx context.Context, sel EventSelection, f EventFilter, maxDays int) ([]StickinessBucket, error)

	// DistinctPersons lists the distinct persons behind the matching
	// events, ordered by person id, capped at limit.
	DistinctPersons(ctx context.Context, sel EventSelection, f EventFilter, limit int) ([]int64, error)

	// PersonsActiveExactly lists persons active on exactly days distinct
	// days, ordered by person id, capped at limit.
	PersonsActiveExactly(ctx context.Context, sel EventSelection, f EventFilter, days int, limit int) ([]int64, error)
}
