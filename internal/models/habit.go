package models

import "time"

// Habit frequency values accepted by the API.
const (
	FrequencyDaily   = "daily"
	FrequencyWeekly  = "weekly"
	FrequencyMonthly = "monthly"
)

// Habit represents a tracked habit owned by a single user. GroupID is a free
// reference: it is not validated against the groups table.
type Habit struct {
	ID string `gorm:"primaryKey" json:"id"` // Opaque UUID string.

	UserID      string  `gorm:"type:text;not null;index" json:"userId"` // Owning user ID.
	Name        string  `gorm:"type:text;not null" json:"name"`         // Habit name.
	Description *string `gorm:"type:text" json:"description"`           // Optional description.
	GroupID     *string `gorm:"type:text" json:"groupId"`               // Optional group label reference.

	Frequency       string `gorm:"type:text;not null;default:daily" json:"frequency"` // daily, weekly or monthly.
	TargetValue     int    `gorm:"not null;default:1" json:"targetValue"`             // Target per period, 1-10.
	Color           string `gorm:"type:text;not null" json:"color"`                   // Display color.
	IsCollaborative bool   `gorm:"not null;default:false" json:"isCollaborative"`     // Shared-progress flag.

	CreatedAt time.Time `gorm:"not null" json:"createdAt"` // Creation timestamp.
}
