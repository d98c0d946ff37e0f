package usecase

import (
	"reflect"
	"testing"

	"event-trends-service/internal/trends/core/domain"
	"event-trends-service/internal/trends/core/ports"
)

func TestBuildBreakdown(t *testing.T) {
	rows := []ports.PropertyCount{
		{Value: "Chrome", Count: 3},
		{Value: "undefined", Count: 2},
		{Value: "Safari", Count: 1},
	}

	items, total := buildBreakdown(rows)

	want := []domain.BreakdownItem{
		{Name: "Chrome", Count: 3},
		{Name: "undefined", Count: 2},
		{Name: "Safari", Count: 1},
	}
	if !reflect.DeepEqual(items, want) {
		t.Fatalf("expected %v, got %v", want, items)
	}
	if total != 6 {
		t.Fatalf("expected total=6, got %d", total)
	}
}

func TestBuildBreakdown_Empty(t *testing.T) {
	items, total := buildBreakdown(nil)

	if len(items) != 0 || total != 0 {
		t.Fatalf("expected empty breakdown, got %v total=%d", items, total)
	}
}
