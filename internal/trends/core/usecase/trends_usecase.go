package usecase

import (
	"context"
	"errors"
	"strconv"
	"time"

	"event-trends-service/internal/trends/core/domain"
	"event-trends-service/internal/trends/core/ports"
)

// EventEntityInput requests a trend for a raw event name, with optional
// per-entity overrides.
type EventEntityInput struct {
	Name       string
	Math       string
	Properties []domain.PropertyFilter
}

// ActionEntityInput requests a trend for an action, with optional per-entity
// overrides.
type ActionEntityInput struct {
	ID         int64
	Math       string
	Properties []domain.PropertyFilter
}

type TrendsInput struct {
	TeamID int64

	// Events nil means the parameter was absent. A non-nil empty slice is
	// an explicit empty request and suppresses the default-action
	// expansion, matching the wire contract.
	Events  []EventEntityInput
	Actions []ActionEntityInput

	DateFrom   string
	DateTo     string
	Properties []domain.PropertyFilter
	Breakdown  string
	ShownAs    string
}

type TrendsUseCase struct {
	events  ports.EventStorePort
	actions ports.ActionStorePort
	now     func() time.Time
}

func NewTrendsUseCase(events ports.EventStorePort, actions ports.ActionStorePort) *TrendsUseCase {
	return &TrendsUseCase{
		events:  events,
		actions: actions,
		now:     time.Now,
	}
}

// Execute computes one trend result per requested entity, events first then
// actions, each in request order. When neither actions nor events are
// requested, every non-deleted action of the team is computed instead.
func (uc *TrendsUseCase) Execute(ctx context.Context, in TrendsInput) ([]domain.TrendResult, error) {
	shownAs, err := parseDisplayMode(in.ShownAs)
	if err != nil {
		return nil, err
	}

	globalProps, err := normalizePropertyFilters(in.Properties)
	if err != nil {
		return nil, err
	}

	dates, err := ResolveDateRange(in.DateFrom, in.DateTo, uc.now())
	if err != nil {
		return nil, err
	}

	results := make([]domain.TrendResult, 0, len(in.Events)+len(in.Actions))

	for _, ev := range in.Events {
		sel := ports.EventSelection{TeamID: in.TeamID, EventName: ev.Name}
		ref := domain.EntityRef{ID: ev.Name, Name: ev.Name, Type: domain.EntityEvents}

		res, err := uc.serializeEntity(ctx, sel, ref, ev.Math, ev.Properties, globalProps, dates, shownAs, in.Breakdown)
		if err != nil {
			return nil, err
		}

		// A raw event with nothing to plot is omitted from the response.
		if res.HasSeries {
			results = append(results, res)
		}
	}

	switch {
	case len(in.Actions) > 0:
		for _, a := range in.Actions {
			action, err := uc.actions.GetAction(ctx, in.TeamID, a.ID)
			if errors.Is(err, ports.ErrActionNotFound) {
				// partial results over hard failure
				continue
			}
			if err != nil {
				return nil, err
			}

			res, err := uc.serializeAction(ctx, in.TeamID, action, a.Math, a.Properties, globalProps, dates, shownAs, in.Breakdown)
			if err != nil {
				return nil, err
			}
			results = append(results, res)
		}
	case in.Events == nil:
		actions, err := uc.actions.ListActions(ctx, in.TeamID)
		if err != nil {
			return nil, err
		}

		for i := range actions {
			res, err := uc.serializeAction(ctx, in.TeamID, &actions[i], "", nil, globalProps, dates, shownAs, in.Breakdown)
			if err != nil {
				return nil, err
			}
			results = append(results, res)
		}
	}

	return results, nil
}

func (uc *TrendsUseCase) serializeAction(
	ctx context.Context,
	teamID int64,
	action *domain.Action,
	math string,
	entityProps, globalProps []domain.PropertyFilter,
	dates DateRange,
	shownAs domain.DisplayMode,
	breakdown string,
) (domain.TrendResult, error) {
	sel := ports.EventSelection{TeamID: teamID, ActionID: action.ID}
	ref := domain.EntityRef{
		ID:   strconv.FormatInt(action.ID, 10),
		Name: action.Name,
		Type: domain.EntityActions,
	}
	return uc.serializeEntity(ctx, sel, ref, math, entityProps, globalProps, dates, shownAs, breakdown)
}

func (uc *TrendsUseCase) serializeEntity(
	ctx context.Context,
	sel ports.EventSelection,
	ref domain.EntityRef,
	math string,
	entityProps, globalProps []domain.PropertyFilter,
	dates DateRange,
	shownAs domain.DisplayMode,
	breakdown string,
) (domain.TrendResult, error) {
	res := domain.TrendResult{
		Entity:    ref,
		Label:     ref.Name,
		Breakdown: []domain.BreakdownItem{},
	}

	mode, err := parseMathMode(math)
	if err != nil {
		return domain.TrendResult{}, err
	}

	props, err := normalizePropertyFilters(entityProps)
	if err != nil {
		return domain.TrendResult{}, err
	}
	combined := make([]domain.PropertyFilter, 0, len(globalProps)+len(props))
	combined = append(combined, globalProps...)
	combined = append(combined, props...)

	filter := BuildEventFilter(dates, combined)

	switch shownAs {
	case domain.ShownAsVolume:
		rows, err := uc.events.DailyCounts(ctx, sel, filter, mode)
		if err != nil {
			return domain.TrendResult{}, err
		}

		if series, ok := buildDailySeries(rows, dates); ok {
			res.HasSeries = true
			res.Labels = series.labels
			res.Days = series.days
			res.Data = series.data
			res.Count = series.count
		}

		if breakdown != "" {
			byValue, err := uc.events.PropertyCounts(ctx, sel, filter, breakdown, mode)
			if err != nil {
				return domain.TrendResult{}, err
			}
			res.Breakdown, res.Count = buildBreakdown(byValue)
		}

	case domain.ShownAsStickiness:
		if dates.From == nil {
			return domain.TrendResult{}, ErrUnboundedDateRange
		}
		rangeDays := stickinessRangeDays(dates)

		buckets, err := uc.events.StickinessCounts(ctx, sel, filter, rangeDays)
		if err != nil {
			return domain.TrendResult{}, err
		}

		series := buildStickinessSeries(buckets, rangeDays)
		res.HasSeries = true
		res.Labels = series.labels
		res.DayBuckets = series.days
		res.Data = series.data
		res.Count = series.count
	}

	return res, nil
}
