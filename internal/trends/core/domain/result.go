package domain

type BreakdownItem struct {
	Name  string
	Count int64
}

// TrendResult is the per-entity output of a trends query.
//
// Volume mode fills Labels/Days/Data with one element per calendar day and
// sets HasSeries when at least one event matched. Stickiness mode fills
// Labels/DayBuckets/Data with one element per distinct-day bucket.
type TrendResult struct {
	Entity    EntityRef
	Label     string
	Count     int64
	HasSeries bool

	Labels     []string
	Days       []string // ISO dates, Volume mode
	DayBuckets []int    // distinct-day counts 1..N, Stickiness mode
	Data       []int64

	Breakdown []BreakdownItem
}
