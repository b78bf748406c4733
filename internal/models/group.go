package models

// Group is a per-user label namespace for organizing habits.
type Group struct {
	ID string `gorm:"primaryKey" json:"id"` // Opaque UUID string.

	Name   string `gorm:"type:text;not null" json:"name"`         // Group label.
	Color  string `gorm:"type:text;not null" json:"color"`        // Display color.
	UserID string `gorm:"type:text;not null;index" json:"userId"` // Owning user ID.
}
