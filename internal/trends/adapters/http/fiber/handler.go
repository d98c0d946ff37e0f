package fiber

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"event-trends-service/internal/trends/core/domain"
	"event-trends-service/internal/trends/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type TrendsUseCase interface {
	Execute(ctx context.Context, in usecase.TrendsInput) ([]domain.TrendResult, error)
}

type PeopleUseCase interface {
	Execute(ctx context.Context, in usecase.PeopleInput) (usecase.PeopleResult, error)
}

type TrendsHandler struct {
	trendsUC TrendsUseCase
	peopleUC PeopleUseCase
}

func NewTrendsHandler(trendsUC TrendsUseCase, peopleUC PeopleUseCase) *TrendsHandler {
	return &TrendsHandler{trendsUC: trendsUC, peopleUC: peopleUC}
}

// GetTrends godoc
// @Summary Compute per-entity trends
// @Description Returns daily volume or stickiness series for the requested actions and events
// @Tags Trends
// @Produce json
// @Param team_id query int true "Team id"
// @Param actions query string false "JSON list of action entities"
// @Param events query string false "JSON list of event entities"
// @Param date_from query string false "Start date (YYYY-MM-DD, -7d, all)"
// @Param date_to query string false "End date"
// @Param properties query string false "JSON list of property filters"
// @Param breakdown query string false "Property key to break down by"
// @Param shown_as query string false "Volume | Stickiness"
// @Success 200 {array} TrendResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /trends [get]
func (h *TrendsHandler) GetTrends(c *fiber.Ctx) error {
	teamID, err := strconv.ParseInt(c.Query("team_id", ""), 10, 64)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "team_id is required",
		})
	}

	in := usecase.TrendsInput{
		TeamID:    teamID,
		DateFrom:  c.Query("date_from", ""),
		DateTo:    c.Query("date_to", ""),
		Breakdown: c.Query("breakdown", ""),
		ShownAs:   c.Query("shown_as", ""),
	}

	if raw := c.Query("events", ""); raw != "" {
		var parsed []eventEntityRequest
		if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
			return invalidJSON(c)
		}
		// non-nil even when empty: an explicit empty list is not
		// the same as an absent parameter
		in.Events = make([]usecase.EventEntityInput, 0, len(parsed))
		for _, e := range parsed {
			in.Events = append(in.Events, usecase.EventEntityInput{
				Name:       e.ID,
				Math:       e.Math,
				Properties: toPropertyFilters(e.Properties),
			})
		}
	}

	if raw := c.Query("actions", ""); raw != "" {
		var parsed []actionEntityRequest
		if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
			return invalidJSON(c)
		}
		in.Actions = make([]usecase.ActionEntityInput, 0, len(parsed))
		for _, a := range parsed {
			in.Actions = append(in.Actions, usecase.ActionEntityInput{
				ID:         a.ID,
				Math:       a.Math,
				Properties: toPropertyFilters(a.Properties),
			})
		}
	}

	if raw := c.Query("properties", ""); raw != "" {
		var parsed []propertyFilterRequest
		if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
			return invalidJSON(c)
		}
		in.Properties = toPropertyFilters(parsed)
	}

	results, err := h.trendsUC.Execute(c.UserContext(), in)
	if err != nil {
		return trendsError(c, err)
	}

	resp := make([]TrendResponse, 0, len(results))
	for _, res := range results {
		resp = append(resp, toTrendResponse(res))
	}

	return c.Status(http.StatusOK).JSON(resp)
}

// GetPeople godoc
// @Summary Resolve the people behind an aggregate
// @Description Returns up to 100 person profiles matching one entity's event set
// @Tags Trends
// @Produce json
// @Param team_id query int true "Team id"
// @Param entityId query string true "Action id or event name"
// @Param type query string true "actions | events"
// @Param shown_as query string false "Volume | Stickiness"
// @Param stickiness_days query int false "Exact active-day count (required for Stickiness)"
// @Param date_from query string false "Start date"
// @Param date_to query string false "End date"
// @Param properties query string false "JSON list of property filters"
// @Success 200 {array} PeopleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /people [get]
func (h *TrendsHandler) GetPeople(c *fiber.Ctx) error {
	teamID, err := strconv.ParseInt(c.Query("team_id", ""), 10, 64)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "team_id is required",
		})
	}

	entityID := c.Query("entityId", "")
	if entityID == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "entityId is required",
		})
	}

	in := usecase.PeopleInput{
		TeamID:     teamID,
		EntityID:   entityID,
		EntityType: c.Query("type", ""),
		ShownAs:    c.Query("shown_as", ""),
		DateFrom:   c.Query("date_from", ""),
		DateTo:     c.Query("date_to", ""),
	}

	if raw := c.Query("stickiness_days", ""); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid stickiness_days",
			})
		}
		in.StickinessDays = days
		in.HasStickinessDays = true
	}

	if raw := c.Query("properties", ""); raw != "" {
		var parsed []propertyFilterRequest
		if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
			return invalidJSON(c)
		}
		in.Properties = toPropertyFilters(parsed)
	}

	result, err := h.peopleUC.Execute(c.UserContext(), in)
	if err != nil {
		return trendsError(c, err)
	}

	if !result.Found {
		return c.Status(http.StatusOK).JSON([]PeopleResponse{})
	}

	people := make([]PersonResponse, 0, len(result.People))
	for _, p := range result.People {
		people = append(people, PersonResponse{
			ID:         p.ID,
			Name:       p.Name,
			Properties: p.Properties,
			CreatedAt:  p.CreatedAt,
		})
	}

	return c.Status(http.StatusOK).JSON([]PeopleResponse{{
		Action: EntityRefResponse{ID: result.Entity.ID, Name: result.Entity.Name},
		People: people,
		Count:  result.Count,
	}})
}

func toPropertyFilters(in []propertyFilterRequest) []domain.PropertyFilter {
	if len(in) == 0 {
		return nil
	}
	out := make([]domain.PropertyFilter, 0, len(in))
	for _, p := range in {
		out = append(out, domain.PropertyFilter{
			Key:      p.Key,
			Operator: domain.PropertyOperator(p.Operator),
			Value:    p.Value,
		})
	}
	return out
}

func toTrendResponse(res domain.TrendResult) TrendResponse {
	out := TrendResponse{
		Action: EntityRefResponse{
			ID:   res.Entity.ID,
			Name: res.Entity.Name,
			Type: string(res.Entity.Type),
		},
		Label:     res.Label,
		Count:     res.Count,
		Labels:    res.Labels,
		Data:      res.Data,
		Breakdown: make([]BreakdownItemResponse, 0, len(res.Breakdown)),
	}

	if res.DayBuckets != nil {
		out.Days = res.DayBuckets
	} else if res.Days != nil {
		out.Days = res.Days
	}

	for _, b := range res.Breakdown {
		out.Breakdown = append(out.Breakdown, BreakdownItemResponse{Name: b.Name, Count: b.Count})
	}

	return out
}

func invalidJSON(c *fiber.Ctx) error {
	return c.Status(http.StatusBadRequest).JSON(fiber.Map{
		"error": "invalid_json",
	})
}

func trendsError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrDateParse),
		errors.Is(err, usecase.ErrInvalidDateRange),
		errors.Is(err, usecase.ErrUnknownOperator),
		errors.Is(err, usecase.ErrUnknownDisplayMode),
		errors.Is(err, usecase.ErrUnknownMathMode),
		errors.Is(err, usecase.ErrUnboundedDateRange),
		errors.Is(err, usecase.ErrMissingStickinessDays),
		errors.Is(err, usecase.ErrInvalidEntityID):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: err.Error(),
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}
