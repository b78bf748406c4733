package client

import (
	"math"
	"time"

	"github.com/habittrack/habittrack/internal/models"
)

// ViewState holds the client's temporal focus. All metrics are derived
// fresh from fetched collections on every call, never cached.
type ViewState struct {
	SelectedDate string
}

// NewViewState starts focused on today (UTC).
func NewViewState() *ViewState {
	return &ViewState{SelectedDate: time.Now().UTC().Format(models.DateLayout)}
}

// SelectDate moves the focus to another calendar day.
func (v *ViewState) SelectDate(date string) {
	v.SelectedDate = date
}

// CompletedHabitIDs returns the set of habit ids completed on the selected
// date.
func (v *ViewState) CompletedHabitIDs(completions []models.Completion) map[string]bool {
	completed := make(map[string]bool)
	for _, completion := range completions {
		if completion.Date == v.SelectedDate {
			completed[completion.HabitID] = true
		}
	}
	return completed
}

// ActiveDates returns the set of calendar days with at least one
// completion, for calendar highlighting.
func ActiveDates(completions []models.Completion) map[string]bool {
	dates := make(map[string]bool)
	for _, completion := range completions {
		dates[completion.Date] = true
	}
	return dates
}

// CompletionRate returns the percentage of habits completed on the selected
// date, rounded to the nearest integer. Zero habits yields zero.
func (v *ViewState) CompletionRate(habits []models.Habit, completions []models.Completion) int {
	if len(habits) == 0 {
		return 0
	}
	completed := v.CompletedHabitIDs(completions)
	count := 0
	for _, habit := range habits {
		if completed[habit.ID] {
			count++
		}
	}
	return int(math.Round(float64(count) / float64(len(habits)) * 100))
}
