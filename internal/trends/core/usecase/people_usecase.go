package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"event-trends-service/internal/trends/core/domain"
	"event-trends-service/internal/trends/core/ports"
)

// peopleLimit caps how many person ids are resolved to profiles per query.
const peopleLimit = 100

var (
	ErrMissingStickinessDays = errors.New("stickiness_days is required")
	ErrInvalidEntityID       = errors.New("invalid entity id")
)

type PeopleInput struct {
	TeamID     int64
	EntityID   string
	EntityType string
	ShownAs    string

	// StickinessDays is only read when HasStickinessDays is set; the
	// parameter is mandatory for stickiness people.
	StickinessDays    int
	HasStickinessDays bool

	DateFrom   string
	DateTo     string
	Properties []domain.PropertyFilter
}

// PeopleResult lists the distinct persons behind one entity's aggregate.
// Found is false when the entity does not resolve (unknown action id or
// entity type), which is not an error.
type PeopleResult struct {
	Entity domain.EntityRef
	People []domain.Person
	Count  int
	Found  bool
}

type PeopleUseCase struct {
	events  ports.EventStorePort
	actions ports.ActionStorePort
	people  ports.PeopleStorePort
	now     func() time.Time
}

func NewPeopleUseCase(events ports.EventStorePort, actions ports.ActionStorePort, people ports.PeopleStorePort) *PeopleUseCase {
	return &PeopleUseCase{
		events:  events,
		actions: actions,
		people:  people,
		now:     time.Now,
	}
}

// Execute reproduces the entity's matching event set under the same filter
// and mode logic as the trends computation, then resolves it to at most
// peopleLimit person profiles.
func (uc *PeopleUseCase) Execute(ctx context.Context, in PeopleInput) (PeopleResult, error) {
	shownAs, err := parseDisplayMode(in.ShownAs)
	if err != nil {
		return PeopleResult{}, err
	}

	props, err := normalizePropertyFilters(in.Properties)
	if err != nil {
		return PeopleResult{}, err
	}

	dates, err := ResolveDateRange(in.DateFrom, in.DateTo, uc.now())
	if err != nil {
		return PeopleResult{}, err
	}
	filter := BuildEventFilter(dates, props)

	var sel ports.EventSelection
	var ref domain.EntityRef

	switch domain.EntityType(in.EntityType) {
	case domain.EntityEvents:
		sel = ports.EventSelection{TeamID: in.TeamID, EventName: in.EntityID}
		ref = domain.EntityRef{ID: in.EntityID, Name: in.EntityID, Type: domain.EntityEvents}

	case domain.EntityActions:
		actionID, err := strconv.ParseInt(in.EntityID, 10, 64)
		if err != nil {
			return PeopleResult{}, fmt.Errorf("%w: %q", ErrInvalidEntityID, in.EntityID)
		}

		action, err := uc.actions.GetAction(ctx, in.TeamID, actionID)
		if errors.Is(err, ports.ErrActionNotFound) {
			return PeopleResult{}, nil
		}
		if err != nil {
			return PeopleResult{}, err
		}

		sel = ports.EventSelection{TeamID: in.TeamID, ActionID: action.ID}
		ref = domain.EntityRef{
			ID:   strconv.FormatInt(action.ID, 10),
			Name: action.Name,
			Type: domain.EntityActions,
		}

	default:
		return PeopleResult{}, nil
	}

	var personIDs []int64
	switch shownAs {
	case domain.ShownAsVolume:
		personIDs, err = uc.events.DistinctPersons(ctx, sel, filter, peopleLimit)
	case domain.ShownAsStickiness:
		if !in.HasStickinessDays {
			return PeopleResult{}, ErrMissingStickinessDays
		}
		personIDs, err = uc.events.PersonsActiveExactly(ctx, sel, filter, in.StickinessDays, peopleLimit)
	}
	if err != nil {
		return PeopleResult{}, err
	}

	people, err := uc.people.GetByPersonIDs(ctx, in.TeamID, personIDs)
	if err != nil {
		return PeopleResult{}, err
	}

	return PeopleResult{
		Entity: ref,
		People: people,
		Count:  len(people),
		Found:  true,
	}, nil
}
