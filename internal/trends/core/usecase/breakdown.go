package usecase

import (
	"event-trends-service/internal/trends/core/domain"
	"event-trends-service/internal/trends/core/ports"
)

// buildBreakdown converts the store's ranked property counts into breakdown
// items. The returned total replaces the entity's overall count so that the
// breakdown always sums to it.
func buildBreakdown(rows []ports.PropertyCount) ([]domain.BreakdownItem, int64) {
	items := make([]domain.BreakdownItem, 0, len(rows))

	var total int64
	for _, row := range rows {
		items = append(items, domain.BreakdownItem{Name: row.Value, Count: row.Count})
		total += row.Count
	}

	return items, total
}
