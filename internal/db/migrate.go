package db

import (
	"errors"
	"fmt"
	"time"

	"github.com/habittrack/habittrack/internal/models"
	"gorm.io/gorm"
)

// Migrate creates or updates the schema for all tracked entities.
func Migrate(conn *gorm.DB) error {
	if conn == nil {
		return fmt.Errorf("db: nil connection")
	}
	if errAutoMigrate := conn.AutoMigrate(
		&models.User{},
		&models.Habit{},
		&models.Completion{},
		&models.Group{},
		&models.GroupMember{},
		&models.Friendship{},
		&models.Achievement{},
		&models.FriendUpdate{},
	); errAutoMigrate != nil {
		return fmt.Errorf("db: migrate: %w", errAutoMigrate)
	}
	return nil
}

// EnsureDemoData seeds the demo account and its surrounding fixtures. Every
// helper is idempotent so restarting against a durable database is safe.
func EnsureDemoData(conn *gorm.DB, demoUserID string) error {
	if conn == nil {
		return fmt.Errorf("db: nil connection")
	}
	if errUsers := ensureSeedUsers(conn, demoUserID); errUsers != nil {
		return errUsers
	}
	if errGroups := ensureSeedGroups(conn, demoUserID); errGroups != nil {
		return errGroups
	}
	if errAchievements := ensureSeedAchievements(conn, demoUserID); errAchievements != nil {
		return errAchievements
	}
	if errFriendships := ensureSeedFriendships(conn, demoUserID); errFriendships != nil {
		return errFriendships
	}
	if errUpdates := ensureSeedFriendUpdates(conn, demoUserID); errUpdates != nil {
		return errUpdates
	}
	return nil
}

// ensureSeedUsers seeds the demo user and two sample friends.
func ensureSeedUsers(conn *gorm.DB, demoUserID string) error {
	users := []models.User{
		{
			ID:            demoUserID,
			Username:      "demo",
			Name:          "Demo User",
			CurrentStreak: 3,
			LongestStreak: 7,
		},
		{
			ID:            "friend-1",
			Username:      "sarah",
			Name:          "Sarah Johnson",
			TotalHabits:   5,
			CurrentStreak: 10,
			LongestStreak: 15,
		},
		{
			ID:            "friend-2",
			Username:      "mike",
			Name:          "Mike Chen",
			TotalHabits:   8,
			CurrentStreak: 7,
			LongestStreak: 21,
		},
	}
	for _, user := range users {
		var existing models.User
		errFind := conn.Where("id = ?", user.ID).First(&existing).Error
		if errFind == nil {
			continue
		}
		if !errors.Is(errFind, gorm.ErrRecordNotFound) {
			return fmt.Errorf("db: query seed user %s: %w", user.ID, errFind)
		}
		if errCreate := conn.Create(&user).Error; errCreate != nil {
			return fmt.Errorf("db: create seed user %s: %w", user.ID, errCreate)
		}
	}
	return nil
}

// ensureSeedGroups seeds the default habit groups for the demo user.
func ensureSeedGroups(conn *gorm.DB, demoUserID string) error {
	groups := []models.Group{
		{ID: "group-1", Name: "Health", Color: "#10B981", UserID: demoUserID},
		{ID: "group-2", Name: "Productivity", Color: "#3B82F6", UserID: demoUserID},
		{ID: "group-3", Name: "Personal", Color: "#8B5CF6", UserID: demoUserID},
	}
	for _, group := range groups {
		var existing models.Group
		errFind := conn.Where("id = ?", group.ID).First(&existing).Error
		if errFind == nil {
			continue
		}
		if !errors.Is(errFind, gorm.ErrRecordNotFound) {
			return fmt.Errorf("db: query seed group %s: %w", group.ID, errFind)
		}
		if errCreate := conn.Create(&group).Error; errCreate != nil {
			return fmt.Errorf("db: create seed group %s: %w", group.ID, errCreate)
		}
	}
	return nil
}

// ensureSeedAchievements seeds the badge catalog for the demo user.
func ensureSeedAchievements(conn *gorm.DB, demoUserID string) error {
	now := time.Now().UTC()
	achievements := []models.Achievement{
		{
			ID:          "ach-1",
			UserID:      demoUserID,
			Name:        "First Step",
			Description: "Complete your first habit",
			Icon:        "trophy",
			IsUnlocked:  true,
			UnlockedAt:  &now,
		},
		{
			ID:          "ach-2",
			UserID:      demoUserID,
			Name:        "Week Warrior",
			Description: "Maintain a 7-day streak",
			Icon:        "flame",
		},
		{
			ID:          "ach-3",
			UserID:      demoUserID,
			Name:        "Habit Master",
			Description: "Complete 10 different habits",
			Icon:        "star",
		},
		{
			ID:          "ach-4",
			UserID:      demoUserID,
			Name:        "Consistent Champion",
			Description: "Complete habits 30 days in a row",
			Icon:        "crown",
		},
	}
	for _, achievement := range achievements {
		var existing models.Achievement
		errFind := conn.Where("id = ?", achievement.ID).First(&existing).Error
		if errFind == nil {
			continue
		}
		if !errors.Is(errFind, gorm.ErrRecordNotFound) {
			return fmt.Errorf("db: query seed achievement %s: %w", achievement.ID, errFind)
		}
		if errCreate := conn.Create(&achievement).Error; errCreate != nil {
			return fmt.Errorf("db: create seed achievement %s: %w", achievement.ID, errCreate)
		}
	}
	return nil
}

// ensureSeedFriendships links the demo user to the sample friends.
func ensureSeedFriendships(conn *gorm.DB, demoUserID string) error {
	now := time.Now().UTC()
	friendships := []models.Friendship{
		{ID: "fs-1", UserID: demoUserID, FriendID: "friend-1", CreatedAt: now},
		{ID: "fs-2", UserID: demoUserID, FriendID: "friend-2", CreatedAt: now},
	}
	for _, friendship := range friendships {
		var existing models.Friendship
		errFind := conn.Where("id = ?", friendship.ID).First(&existing).Error
		if errFind == nil {
			continue
		}
		if !errors.Is(errFind, gorm.ErrRecordNotFound) {
			return fmt.Errorf("db: query seed friendship %s: %w", friendship.ID, errFind)
		}
		if errCreate := conn.Create(&friendship).Error; errCreate != nil {
			return fmt.Errorf("db: create seed friendship %s: %w", friendship.ID, errCreate)
		}
	}
	return nil
}

// ensureSeedFriendUpdates seeds the sample activity feed for the demo user.
func ensureSeedFriendUpdates(conn *gorm.DB, demoUserID string) error {
	now := time.Now().UTC()
	updates := []models.FriendUpdate{
		{
			ID:         "fu-1",
			UserID:     demoUserID,
			FriendName: "Sarah Johnson",
			Activity:   "completed Morning Exercise habit",
			Timestamp:  now.Add(-2 * time.Hour),
		},
		{
			ID:         "fu-2",
			UserID:     demoUserID,
			FriendName: "Mike Chen",
			Activity:   "achieved a 10-day streak",
			Timestamp:  now.Add(-5 * time.Hour),
		},
	}
	for _, update := range updates {
		var existing models.FriendUpdate
		errFind := conn.Where("id = ?", update.ID).First(&existing).Error
		if errFind == nil {
			continue
		}
		if !errors.Is(errFind, gorm.ErrRecordNotFound) {
			return fmt.Errorf("db: query seed friend update %s: %w", update.ID, errFind)
		}
		if errCreate := conn.Create(&update).Error; errCreate != nil {
			return fmt.Errorf("db: create seed friend update %s: %w", update.ID, errCreate)
		}
	}
	return nil
}
