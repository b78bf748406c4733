package models

import "time"

// GroupMember associates a collaborator with a collaborative habit. The
// (habitId, userId) pair is not unique-constrained.
type GroupMember struct {
	ID string `gorm:"primaryKey" json:"id"` // Opaque UUID string.

	HabitID string `gorm:"type:text;not null;index" json:"habitId"` // Collaborative habit ID.
	UserID  string `gorm:"type:text;not null;index" json:"userId"`  // Member user ID.

	CreatedAt time.Time `gorm:"not null" json:"createdAt"` // Creation timestamp.
}
