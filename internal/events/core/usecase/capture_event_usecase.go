package usecase

import (
	"context"
	"errors"
	"time"

	"event-trends-service/internal/events/core/domain"
	"event-trends-service/internal/events/core/ports"

	"github.com/google/uuid"
)

var (
	ErrInvalidEvent = errors.New("invalid event")
	ErrFutureTime   = errors.New("timestamp cannot be in the future")
)

type CaptureEventInput struct {
	TeamID     int64
	DistinctID string
	Event      string
	Properties map[string]any
	Timestamp  int64 // unix seconds; 0 means "now"
}

type CaptureEventUseCase struct {
	writer ports.EventWriterPort
	rules  ports.ActionRulesPort
	now    func() time.Time
}

func NewCaptureEventUseCase(writer ports.EventWriterPort, rules ports.ActionRulesPort) *CaptureEventUseCase {
	return &CaptureEventUseCase{
		writer: writer,
		rules:  rules,
		now:    time.Now,
	}
}

func (uc *CaptureEventUseCase) Execute(ctx context.Context, in CaptureEventInput) (uuid.UUID, error) {
	if err := uc.validateInput(in); err != nil {
		return uuid.Nil, err
	}

	eventTime := uc.now().UTC()
	if in.Timestamp != 0 {
		eventTime = time.Unix(in.Timestamp, 0).UTC()
	}

	if in.Properties == nil {
		in.Properties = map[string]any{}
	}

	e := &domain.Event{
		ID:         uuid.New(),
		TeamID:     in.TeamID,
		DistinctID: in.DistinctID,
		Name:       in.Event,
		Properties: in.Properties,
		Timestamp:  eventTime,
	}

	rules, err := uc.rules.ListRules(ctx, in.TeamID)
	if err != nil {
		return uuid.Nil, err
	}
	actionIDs := matchActions(rules, e)

	if err := uc.writer.EnsurePerson(ctx, in.TeamID, in.DistinctID); err != nil {
		return uuid.Nil, err
	}

	if err := uc.writer.InsertEvent(ctx, e, actionIDs); err != nil {
		return uuid.Nil, err
	}

	return e.ID, nil
}

type BulkCaptureInput struct {
	Events []CaptureEventInput
}

type BulkCaptureResult struct {
	Stored int
}

func (uc *CaptureEventUseCase) BulkCapture(ctx context.Context, in BulkCaptureInput) (BulkCaptureResult, error) {
	var res BulkCaptureResult

	for _, ev := range in.Events {
		if err := uc.validateInput(ev); err != nil {
			return res, err
		}
	}

	for _, ev := range in.Events {
		if _, err := uc.Execute(ctx, ev); err != nil {
			return res, err
		}
		res.Stored++
	}

	return res, nil
}

func (uc *CaptureEventUseCase) validateInput(in CaptureEventInput) error {

	if in.TeamID <= 0 || in.DistinctID == "" || in.Event == "" {
		return ErrInvalidEvent
	}

	if in.Timestamp > uc.now().Unix() {
		return ErrFutureTime
	}

	return nil
}
