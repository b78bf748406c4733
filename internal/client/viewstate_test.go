package client

import (
	"testing"

	"github.com/habittrack/habittrack/internal/models"
)

func TestCompletedHabitIDs(t *testing.T) {
	view := &ViewState{SelectedDate: "2025-06-01"}
	completions := []models.Completion{
		{ID: "c1", HabitID: "h1", Date: "2025-06-01"},
		{ID: "c2", HabitID: "h2", Date: "2025-06-02"},
		{ID: "c3", HabitID: "h3", Date: "2025-06-01"},
	}

	completed := view.CompletedHabitIDs(completions)
	if len(completed) != 2 {
		t.Fatalf("expected 2 completed habits, got %d", len(completed))
	}
	if !completed["h1"] || !completed["h3"] {
		t.Fatalf("unexpected completed set: %v", completed)
	}
}

func TestActiveDates(t *testing.T) {
	completions := []models.Completion{
		{ID: "c1", HabitID: "h1", Date: "2025-06-01"},
		{ID: "c2", HabitID: "h1", Date: "2025-06-01"},
		{ID: "c3", HabitID: "h2", Date: "2025-06-03"},
	}

	dates := ActiveDates(completions)
	if len(dates) != 2 {
		t.Fatalf("expected 2 active dates, got %d", len(dates))
	}
	if !dates["2025-06-01"] || !dates["2025-06-03"] {
		t.Fatalf("unexpected date set: %v", dates)
	}
}

func TestCompletionRate(t *testing.T) {
	view := &ViewState{SelectedDate: "2025-06-01"}
	habits := []models.Habit{{ID: "h1"}, {ID: "h2"}, {ID: "h3"}}
	completions := []models.Completion{
		{ID: "c1", HabitID: "h1", Date: "2025-06-01"},
		{ID: "c2", HabitID: "h2", Date: "2025-06-01"},
	}

	if rate := view.CompletionRate(habits, completions); rate != 67 {
		t.Fatalf("expected 67, got %d", rate)
	}
}

func TestCompletionRateNoHabits(t *testing.T) {
	view := &ViewState{SelectedDate: "2025-06-01"}
	if rate := view.CompletionRate(nil, nil); rate != 0 {
		t.Fatalf("expected 0, got %d", rate)
	}
}

func TestCompletionRateIgnoresOtherDates(t *testing.T) {
	view := &ViewState{SelectedDate: "2025-06-01"}
	habits := []models.Habit{{ID: "h1"}, {ID: "h2"}}
	completions := []models.Completion{
		{ID: "c1", HabitID: "h1", Date: "2025-05-31"},
		{ID: "c2", HabitID: "h2", Date: "2025-06-01"},
	}

	if rate := view.CompletionRate(habits, completions); rate != 50 {
		t.Fatalf("expected 50, got %d", rate)
	}
}
