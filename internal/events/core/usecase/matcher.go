package usecase

import (
	"strings"

	"event-trends-service/internal/events/core/domain"
)

// matchActions returns the ids of the actions with at least one rule the
// event satisfies, in rule order. An action is linked at most once.
func matchActions(rules []domain.ActionRule, e *domain.Event) []int64 {
	var ids []int64
	seen := make(map[int64]bool)

	for _, r := range rules {
		if seen[r.ActionID] {
			continue
		}
		if ruleMatches(r, e) {
			seen[r.ActionID] = true
			ids = append(ids, r.ActionID)
		}
	}

	return ids
}

func ruleMatches(r domain.ActionRule, e *domain.Event) bool {
	// a rule with no criteria matches nothing
	if r.EventName == "" && r.URL == "" {
		return false
	}

	if r.EventName != "" && r.EventName != e.Name {
		return false
	}

	if r.URL != "" {
		current, _ := e.Properties["$current_url"].(string)
		if r.URLMatching == "exact" {
			if current != r.URL {
				return false
			}
		} else if !strings.Contains(current, r.URL) {
			return false
		}
	}

	return true
}
