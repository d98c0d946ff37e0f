package fiber

import "time"

// wire shape shared by the actions / events / properties JSON query params

type propertyFilterRequest struct {
	Key      string `json:"key"`
	Operator string `json:"operator"`
	Value    any    `json:"value"`
}

type actionEntityRequest struct {
	ID         int64                   `json:"id"`
	Math       string                  `json:"math"`
	Properties []propertyFilterRequest `json:"properties"`
}

type eventEntityRequest struct {
	ID         string                  `json:"id"`
	Math       string                  `json:"math"`
	Properties []propertyFilterRequest `json:"properties"`
}

type EntityRefResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
}

type BreakdownItemResponse struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// TrendResponse is one entity's aggregate. Days holds ISO date strings in
// Volume mode and distinct-day bucket numbers in Stickiness mode.
type TrendResponse struct {
	Action    EntityRefResponse       `json:"action"`
	Label     string                  `json:"label"`
	Count     int64                   `json:"count"`
	Labels    []string                `json:"labels,omitempty"`
	Days      any                     `json:"days,omitempty"`
	Data      []int64                 `json:"data,omitempty"`
	Breakdown []BreakdownItemResponse `json:"breakdown"`
}

type PersonResponse struct {
	ID         int64          `json:"id"`
	Name       string         `json:"name,omitempty"`
	Properties map[string]any `json:"properties"`
	CreatedAt  time.Time      `json:"created_at"`
}

type PeopleResponse struct {
	Action EntityRefResponse `json:"action"`
	People []PersonResponse  `json:"people"`
	Count  int               `json:"count"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_request"`
	Message string `json:"message" example:"unparseable date"`
}
