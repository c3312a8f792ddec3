package services

import (
	"testing"
	"time"

	"estate-backend/internal/models"
)

func TestFilterByDateRangeInclusiveBounds(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 31, 23, 59, 59, 0, time.UTC)

	buyers := []*models.Buyer{
		{Name: "before", CreatedAt: start.Add(-time.Second)},
		{Name: "at-start", CreatedAt: start},
		{Name: "inside", CreatedAt: start.AddDate(0, 0, 15)},
		{Name: "at-end", CreatedAt: end},
		{Name: "after", CreatedAt: end.Add(time.Second)},
	}

	matched := filterByDateRange(buyers, start, end)

	if len(matched) != 3 {
		t.Fatalf("expected 3 buyers inside the range, got %d", len(matched))
	}
	for _, buyer := range matched {
		if buyer.Name == "before" || buyer.Name == "after" {
			t.Fatalf("buyer %q should be outside the range", buyer.Name)
		}
	}
}

func TestFilterByDateRangeEmptyInput(t *testing.T) {
	matched := filterByDateRange(nil, time.Now().Add(-time.Hour), time.Now())
	if len(matched) != 0 {
		t.Fatalf("expected no matches, got %d", len(matched))
	}
	if matched == nil {
		t.Fatal("expected empty slice, not nil")
	}
}
