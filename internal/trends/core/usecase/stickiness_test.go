package usecase

import (
	"reflect"
	"testing"

	"event-trends-service/internal/trends/core/ports"
)

// ------------------------------------------------------------
// RANGE DAYS
// ------------------------------------------------------------

func TestStickinessRangeDays(t *testing.T) {
	from := date(2020, 1, 1)

	cases := []struct {
		to   string
		want int
	}{
		{"2020-01-01", 3}, // single-day window
		{"2020-01-02", 4},
		{"2020-01-07", 9},
	}

	for _, c := range cases {
		to, err := parseDate(c.to, from)
		if err != nil {
			t.Fatalf("parse %s: %v", c.to, err)
		}
		r := DateRange{From: &from, To: to}
		if got := stickinessRangeDays(r); got != c.want {
			t.Fatalf("to=%s: expected rangeDays=%d, got %d", c.to, c.want, got)
		}
	}
}

// ------------------------------------------------------------
// HISTOGRAM
// ------------------------------------------------------------

func TestBuildStickinessSeries_TwoDayWindow(t *testing.T) {
	from := date(2020, 1, 1)
	r := DateRange{From: &from, To: date(2020, 1, 2)}
	rangeDays := stickinessRangeDays(r)

	// person A active both days, person B active one day
	buckets := []ports.StickinessBucket{
		{DayCount: 1, Persons: 1},
		{DayCount: 2, Persons: 1},
	}

	s := buildStickinessSeries(buckets, rangeDays)

	wantLabels := []string{"1 day", "2 days", "3 days"}
	if !reflect.DeepEqual(s.labels, wantLabels) {
		t.Fatalf("expected labels=%v, got %v", wantLabels, s.labels)
	}
	if !reflect.DeepEqual(s.days, []int{1, 2, 3}) {
		t.Fatalf("expected days=[1 2 3], got %v", s.days)
	}
	if !reflect.DeepEqual(s.data, []int64{1, 1, 0}) {
		t.Fatalf("expected data=[1 1 0], got %v", s.data)
	}
}

func TestBuildStickinessSeries_ZeroFillsEmptyBuckets(t *testing.T) {
	buckets := []ports.StickinessBucket{
		{DayCount: 3, Persons: 7},
	}

	s := buildStickinessSeries(buckets, 6)

	if !reflect.DeepEqual(s.data, []int64{0, 0, 7, 0, 0}) {
		t.Fatalf("expected data=[0 0 7 0 0], got %v", s.data)
	}
	// every person lands in exactly one bucket
	if s.count != 7 {
		t.Fatalf("expected count=7, got %d", s.count)
	}
}

func TestBuildStickinessSeries_NoActors(t *testing.T) {
	s := buildStickinessSeries(nil, 4)

	if !reflect.DeepEqual(s.data, []int64{0, 0, 0}) {
		t.Fatalf("expected all-zero data, got %v", s.data)
	}
	if s.count != 0 {
		t.Fatalf("expected count=0, got %d", s.count)
	}
}
