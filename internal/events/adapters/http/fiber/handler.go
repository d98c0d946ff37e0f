package fiber

import (
	"context"
	"errors"
	"net/http"

	"event-trends-service/internal/events/core/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CaptureEventUseCase interface {
	Execute(ctx context.Context, in usecase.CaptureEventInput) (uuid.UUID, error)
	BulkCapture(ctx context.Context, in usecase.BulkCaptureInput) (usecase.BulkCaptureResult, error)
}

type EventHandler struct {
	captureUC CaptureEventUseCase
}

func NewEventHandler(captureUC CaptureEventUseCase) *EventHandler {
	return &EventHandler{captureUC: captureUC}
}

// CreateEvent godoc
// @Summary Capture a new event
// @Description Stores a single event, links matching actions and provisions the person
// @Tags Events
// @Accept json
// @Produce json
// @Param request body CaptureEventRequest true "Event payload"
// @Success 201 {object} CaptureEventResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /events [post]
func (h *EventHandler) CreateEvent(c *fiber.Ctx) error {
	var req CaptureEventRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid_json",
		})
	}

	input := usecase.CaptureEventInput{
		TeamID:     req.TeamID,
		DistinctID: req.DistinctID,
		Event:      req.Event,
		Properties: req.Properties,
		Timestamp:  req.Timestamp,
	}

	id, err := h.captureUC.Execute(c.UserContext(), input)
	if err != nil {
		return captureError(c, err)
	}

	resp := CaptureEventResponse{
		Status: "captured",
		ID:     id.String(),
	}
	return c.Status(http.StatusCreated).JSON(resp)
}

// BulkCreateEvents godoc
// @Summary Bulk capture events
// @Description Accepts a list of events and stores them individually
// @Tags Events
// @Accept json
// @Produce json
// @Param request body BulkCaptureRequest true "Bulk event payload"
// @Success 201 {object} BulkCaptureResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /events/bulk [post]
func (h *EventHandler) BulkCreateEvents(c *fiber.Ctx) error {
	var req BulkCaptureRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid_json",
		})
	}

	if len(req.Events) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "events_list_required",
		})
	}

	inputs := make([]usecase.CaptureEventInput, len(req.Events))
	for i, e := range req.Events {
		inputs[i] = usecase.CaptureEventInput{
			TeamID:     e.TeamID,
			DistinctID: e.DistinctID,
			Event:      e.Event,
			Properties: e.Properties,
			Timestamp:  e.Timestamp,
		}
	}

	result, err := h.captureUC.BulkCapture(
		c.UserContext(),
		usecase.BulkCaptureInput{Events: inputs},
	)
	if err != nil {
		return captureError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(BulkCaptureResponse{
		Stored: result.Stored,
	})
}

func captureError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidEvent),
		errors.Is(err, usecase.ErrFutureTime):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_event",
			Message: err.Error(),
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}
