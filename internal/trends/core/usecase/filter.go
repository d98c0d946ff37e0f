package usecase

import (
	"errors"
	"fmt"

	"event-trends-service/internal/trends/core/domain"
	"event-trends-service/internal/trends/core/ports"
)

var ErrUnknownOperator = errors.New("unknown property filter operator")

// normalizePropertyFilters validates operators and fills in the default
// (an empty operator means exact match). Unknown operators are rejected,
// never silently ignored.
func normalizePropertyFilters(filters []domain.PropertyFilter) ([]domain.PropertyFilter, error) {
	if len(filters) == 0 {
		return nil, nil
	}

	out := make([]domain.PropertyFilter, 0, len(filters))
	for _, f := range filters {
		if f.Operator == "" {
			f.Operator = domain.OperatorExact
		}
		switch f.Operator {
		case domain.OperatorExact,
			domain.OperatorIsNot,
			domain.OperatorIContains,
			domain.OperatorIsSet,
			domain.OperatorIsNotSet,
			domain.OperatorGT,
			domain.OperatorGTE,
			domain.OperatorLT,
			domain.OperatorLTE:
			out = append(out, f)
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownOperator, f.Operator)
		}
	}
	return out, nil
}

// BuildEventFilter compiles a resolved date window and property predicates
// into the single filter handed to the event store. The upper bound is pushed
// one day past date_to so the entire end day is included. With no bounds and
// no properties the filter matches everything.
func BuildEventFilter(r DateRange, properties []domain.PropertyFilter) ports.EventFilter {
	f := ports.EventFilter{Properties: properties}

	if r.From != nil {
		from := *r.From
		f.TimestampFrom = &from
	}
	if !r.To.IsZero() {
		to := r.To.AddDate(0, 0, 1)
		f.TimestampTo = &to
	}

	return f
}
