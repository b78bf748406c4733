package models

import "time"

// DateLayout is the calendar-day format used by completion dates.
const DateLayout = "2006-01-02"

// Completion records that a habit was performed on a given calendar day.
// Date is a day string, not a timestamp, so completions compare by calendar
// day regardless of timezone. Deleting a habit does not cascade here.
type Completion struct {
	ID string `gorm:"primaryKey" json:"id"` // Opaque UUID string.

	HabitID string `gorm:"type:text;not null;index" json:"habitId"` // Completed habit ID.
	Value   int    `gorm:"not null;default:1" json:"value"`         // Completed amount, >= 1.
	Date    string `gorm:"type:text;not null;index" json:"date"`    // Calendar day, YYYY-MM-DD.

	CompletedAt time.Time `gorm:"not null" json:"completedAt"` // Creation instant.
}
