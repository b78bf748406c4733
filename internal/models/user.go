package models

// User represents a tracked account. Streak and habit counters are
// system-managed: the API never accepts them from clients.
type User struct {
	ID string `gorm:"primaryKey" json:"id"` // Opaque UUID string.

	Username string  `gorm:"type:text;not null;uniqueIndex" json:"username"` // Unique login name.
	Name     string  `gorm:"type:text;not null" json:"name"`                 // Display name.
	Avatar   *string `gorm:"type:text" json:"avatar"`                        // Optional avatar URL.

	TotalHabits   int `gorm:"not null;default:0" json:"totalHabits"`   // Count of owned habits.
	CurrentStreak int `gorm:"not null;default:0" json:"currentStreak"` // Stored streak value, seed-only.
	LongestStreak int `gorm:"not null;default:0" json:"longestStreak"` // Stored streak value, seed-only.
}
