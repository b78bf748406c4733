package models

import "time"

// Friendship is a directed follow edge from UserID to FriendID. Friend
// listings only follow outbound edges, so the relation is not symmetric.
type Friendship struct {
	ID string `gorm:"primaryKey" json:"id"` // Opaque UUID string.

	UserID   string `gorm:"type:text;not null;index" json:"userId"`   // Following user ID.
	FriendID string `gorm:"type:text;not null;index" json:"friendId"` // Followed user ID.

	CreatedAt time.Time `gorm:"not null" json:"createdAt"` // Creation timestamp.
}
