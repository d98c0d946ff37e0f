package fiber

// CaptureEventRequest represents the event capture payload
// @Description Event capture DTO
type CaptureEventRequest struct {
	TeamID     int64          `json:"team_id"`
	DistinctID string         `json:"distinct_id"`
	Event      string         `json:"event"`
	Properties map[string]any `json:"properties"`
	Timestamp  int64          `json:"timestamp"`
}

type CaptureEventResponse struct {
	Status string `json:"status"`
	ID     string `json:"id,omitempty"`
}

type BulkCaptureRequest struct {
	Events []CaptureEventRequest `json:"events"`
}

type BulkCaptureResponse struct {
	Stored int `json:"stored"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_event"`
	Message string `json:"message" example:"Event payload is invalid"`
}
