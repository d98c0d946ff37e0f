package usecase

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var (
	ErrDateParse        = errors.New("unparseable date")
	ErrInvalidDateRange = errors.New("date_from is after date_to")
)

// DateRange is a resolved day window. From is nil when the caller asked for
// "all" (unbounded start); To is always set.
type DateRange struct {
	From *time.Time
	To   time.Time
}

var relativeDateRe = regexp.MustCompile(`^-([0-9]+)([dwmy])$`)

// ResolveDateRange turns raw date_from / date_to request values into a
// concrete window. Relative expressions ("-7d", "-2w", "-1m", "-1y") resolve
// against now; absolute values parse as YYYY-MM-DD; "all" unbounds the start.
// Defaults: from = today minus 7 days, to = today.
func ResolveDateRange(dateFrom, dateTo string, now time.Time) (DateRange, error) {
	today := truncateDay(now)

	var r DateRange

	switch dateFrom {
	case "":
		from := today.AddDate(0, 0, -7)
		r.From = &from
	case "all":
		// caller derives the effective start from the earliest match
	default:
		from, err := parseDate(dateFrom, today)
		if err != nil {
			return DateRange{}, err
		}
		r.From = &from
	}

	if dateTo == "" {
		r.To = today
	} else {
		to, err := parseDate(dateTo, today)
		if err != nil {
			return DateRange{}, err
		}
		r.To = to
	}

	if r.From != nil && r.From.After(r.To) {
		return DateRange{}, ErrInvalidDateRange
	}

	return r, nil
}

func parseDate(raw string, today time.Time) (time.Time, error) {
	if m := relativeDateRe.FindStringSubmatch(raw); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", ErrDateParse, raw)
		}
		switch m[2] {
		case "d":
			return today.AddDate(0, 0, -n), nil
		case "w":
			return today.AddDate(0, 0, -7*n), nil
		case "m":
			return today.AddDate(0, -n, 0), nil
		case "y":
			return today.AddDate(-n, 0, 0), nil
		}
	}

	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrDateParse, raw)
	}
	return t.UTC(), nil
}

func truncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
