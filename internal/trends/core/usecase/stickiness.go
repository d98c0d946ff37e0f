package usecase

import (
	"errors"
	"fmt"

	"event-trends-service/internal/trends/core/ports"
)

var ErrUnboundedDateRange = errors.New("stickiness requires a bounded date_from")

// stickinessRangeDays is the inclusive day span of the window plus a one-day
// buffer, so a person active on both the first and the last day still lands
// inside the histogram. Buckets run 1..rangeDays-1.
func stickinessRangeDays(r DateRange) int {
	span := int(r.To.Sub(*r.From).Hours()/24) + 1
	return span + 2
}

type stickinessSeries struct {
	labels []string
	days   []int
	data   []int64
	count  int64
}

// buildStickinessSeries zero-fills the per-bucket person counts for every
// distinct-day count in [1, rangeDays-1].
func buildStickinessSeries(buckets []ports.StickinessBucket, rangeDays int) stickinessSeries {
	byDay := make(map[int]int64, len(buckets))
	for _, b := range buckets {
		byDay[b.DayCount] = b.Persons
	}

	var s stickinessSeries
	for day := 1; day < rangeDays; day++ {
		label := fmt.Sprintf("%d day", day)
		if day > 1 {
			label += "s"
		}

		s.labels = append(s.labels, label)
		s.days = append(s.days, day)
		s.data = append(s.data, byDay[day])
		s.count += byDay[day]
	}

	return s
}
