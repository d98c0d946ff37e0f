package usecase

import (
	"event-trends-service/internal/trends/core/ports"
)

const (
	isoDayFormat   = "2006-01-02"
	dayLabelFormat = "Mon. 2 January"
)

type dailySeries struct {
	labels []string
	days   []string
	data   []int64
	count  int64
}

// buildDailySeries zero-fills the per-day counts over every calendar day in
// the window. When the window start is unbounded ("all"), the earliest day
// present in the rows becomes the effective start. Returns ok=false when
// nothing matched at all, in which case no series is produced.
func buildDailySeries(rows []ports.DayCount, r DateRange) (dailySeries, bool) {
	if len(rows) == 0 {
		return dailySeries{}, false
	}

	from := r.From
	if from == nil {
		first := truncateDay(rows[0].Day)
		from = &first
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[truncateDay(row.Day).Format(isoDayFormat)] += row.Count
	}

	var s dailySeries
	for day := *from; !day.After(r.To); day = day.AddDate(0, 0, 1) {
		iso := day.Format(isoDayFormat)
		c := counts[iso]

		s.labels = append(s.labels, day.Format(dayLabelFormat))
		s.days = append(s.days, iso)
		s.data = append(s.data, c)
		s.count += c
	}

	return s, true
}
