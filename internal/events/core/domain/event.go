package domain

import (
	"time"

	"github.com/google/uuid"
)

type Event struct {
	ID         uuid.UUID
	TeamID     int64
	DistinctID string
	Name       string
	Properties map[string]any
	Timestamp  time.Time
}

// ActionRule is one step of an action's definition, reduced to what the
// capture pipeline can observe server-side: the event name and the page URL
// carried in $current_url. URLMatching is "contains" or "exact".
type ActionRule struct {
	ActionID    int64
	EventName   string
	URL         string
	URLMatching string
}
