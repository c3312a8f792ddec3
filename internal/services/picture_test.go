package services

import (
	"testing"

	"estate-backend/internal/models"
)

func TestNextOrderEmptyGallery(t *testing.T) {
	if got := nextOrder(nil); got != 0 {
		t.Fatalf("expected first picture to get order 0, got %d", got)
	}
}

func TestNextOrderAppendsAfterMax(t *testing.T) {
	pictures := []*models.Picture{
		{Order: 0},
		{Order: 2},
		{Order: 1},
	}
	if got := nextOrder(pictures); got != 3 {
		t.Fatalf("expected next order 3 after max 2, got %d", got)
	}
}

func TestNextOrderIgnoresGaps(t *testing.T) {
	pictures := []*models.Picture{
		{Order: 5},
	}
	if got := nextOrder(pictures); got != 6 {
		t.Fatalf("expected next order 6, got %d", got)
	}
}

func TestOrderedIDsFollowsCallerSequence(t *testing.T) {
	byID := map[string]*models.Picture{
		"a": {ID: "a", Order: 0},
		"b": {ID: "b", Order: 1},
		"c": {ID: "c", Order: 2},
	}

	assignments := orderedIDs(byID, []string{"b", "a", "c"})

	if len(assignments) != 3 {
		t.Fatalf("expected 3 assignments, got %d", len(assignments))
	}
	want := []orderAssignment{{"b", 0}, {"a", 1}, {"c", 2}}
	for i, assignment := range assignments {
		if assignment != want[i] {
			t.Fatalf("assignment %d: expected %+v, got %+v", i, want[i], assignment)
		}
	}
}

func TestOrderedIDsSkipsForeignIDs(t *testing.T) {
	byID := map[string]*models.Picture{
		"a": {ID: "a"},
		"b": {ID: "b"},
	}

	assignments := orderedIDs(byID, []string{"other", "b", "missing", "a"})

	want := []orderAssignment{{"b", 0}, {"a", 1}}
	if len(assignments) != len(want) {
		t.Fatalf("expected %d assignments, got %d", len(want), len(assignments))
	}
	for i, assignment := range assignments {
		if assignment != want[i] {
			t.Fatalf("assignment %d: expected %+v, got %+v", i, want[i], assignment)
		}
	}
}
