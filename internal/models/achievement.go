package models

import "time"

// Achievement is a seeded badge for a user. Nothing unlocks achievements
// programmatically; unlocked state only changes through seed data.
type Achievement struct {
	ID string `gorm:"primaryKey" json:"id"` // Opaque UUID string.

	UserID      string `gorm:"type:text;not null;index" json:"userId"` // Owning user ID.
	Name        string `gorm:"type:text;not null" json:"name"`         // Badge name.
	Description string `gorm:"type:text;not null" json:"description"`  // Badge description.
	Icon        string `gorm:"type:text;not null" json:"icon"`         // Icon identifier.

	IsUnlocked bool       `gorm:"not null;default:false" json:"isUnlocked"` // Unlocked flag.
	UnlockedAt *time.Time `json:"unlockedAt"`                               // Unlock instant, when unlocked.
}
