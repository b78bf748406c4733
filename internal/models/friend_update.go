package models

import "time"

// FriendUpdate is a seeded activity-feed entry shown to a user. Entries are
// denormalized (friend name and avatar copied in) and not generated from
// real friend actions.
type FriendUpdate struct {
	ID string `gorm:"primaryKey" json:"id"` // Opaque UUID string.

	UserID       string  `gorm:"type:text;not null;index" json:"userId"` // Feed owner user ID.
	FriendName   string  `gorm:"type:text;not null" json:"friendName"`   // Display name of the friend.
	FriendAvatar *string `gorm:"type:text" json:"friendAvatar"`          // Optional friend avatar URL.
	Activity     string  `gorm:"type:text;not null" json:"activity"`     // Free-text activity line.

	Timestamp time.Time `gorm:"not null;index" json:"timestamp"` // Activity instant, feed sort key.
}
