// Package store defines the persistence contract for habit tracking data.
package store

import (
	"context"

	"github.com/habittrack/habittrack/internal/models"
)

// CreateUserParams carries the caller-supplied fields for a new user.
// Counters always start at zero.
type CreateUserParams struct {
	Username string
	Name     string
	Avatar   *string
}

// UserUpdate carries a partial profile update. Nil fields are left unchanged.
// Counter fields are deliberately absent.
type UserUpdate struct {
	Username *string
	Name     *string
	Avatar   *string
}

// CreateHabitParams carries the validated fields for a new habit.
type CreateHabitParams struct {
	UserID          string
	Name            string
	Description     *string
	GroupID         *string
	Frequency       string
	TargetValue     int
	Color           string
	IsCollaborative bool
}

// CreateCompletionParams carries the validated fields for a new completion.
type CreateCompletionParams struct {
	HabitID string
	Value   int
	Date    string
}

// CreateGroupParams carries the validated fields for a new group.
type CreateGroupParams struct {
	Name   string
	Color  string
	UserID string
}

// Store is the persistence surface the HTTP layer talks to. Lookups report
// absence as a nil record (or false) with a nil error; errors are reserved
// for storage failures.
type Store interface {
	// Users.
	GetUser(ctx context.Context, id string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	CreateUser(ctx context.Context, params CreateUserParams) (*models.User, error)
	UpdateUser(ctx context.Context, id string, update UserUpdate) (*models.User, error)
	ListUsers(ctx context.Context, search string) ([]models.User, error)

	// Habits. CreateHabit and DeleteHabit adjust the owner's totalHabits
	// counter in the same transaction. DeleteHabit leaves the habit's
	// completions behind.
	GetHabit(ctx context.Context, id string) (*models.Habit, error)
	ListHabits(ctx context.Context, userID string) ([]models.Habit, error)
	CreateHabit(ctx context.Context, params CreateHabitParams) (*models.Habit, error)
	DeleteHabit(ctx context.Context, id string) (bool, error)

	// Completions. ListCompletions spans all habits owned by the user,
	// optionally narrowed to one calendar day.
	ListCompletions(ctx context.Context, userID string, date string) ([]models.Completion, error)
	ListHabitCompletions(ctx context.Context, habitID string) ([]models.Completion, error)
	CreateCompletion(ctx context.Context, params CreateCompletionParams) (*models.Completion, error)
	DeleteCompletion(ctx context.Context, id string) (bool, error)

	// Groups.
	ListGroups(ctx context.Context, userID string) ([]models.Group, error)
	CreateGroup(ctx context.Context, params CreateGroupParams) (*models.Group, error)

	// Group membership for collaborative habits. ListHabitMembers resolves
	// membership rows to user records, skipping rows whose user is gone.
	ListHabitMembers(ctx context.Context, habitID string) ([]models.User, error)
	AddGroupMember(ctx context.Context, habitID, userID string) (*models.GroupMember, error)
	RemoveGroupMember(ctx context.Context, habitID, userID string) (bool, error)

	// Friendships. ListFriends resolves outbound edges to user records and
	// skips edges whose target no longer exists.
	ListFriends(ctx context.Context, userID string) ([]models.User, error)
	HasFriendship(ctx context.Context, userID, friendID string) (bool, error)
	AddFriend(ctx context.Context, userID, friendID string) (*models.Friendship, error)
	RemoveFriend(ctx context.Context, userID, friendID string) (bool, error)

	// Seeded read-only feeds.
	ListAchievements(ctx context.Context, userID string) ([]models.Achievement, error)
	ListFriendUpdates(ctx context.Context, userID string) ([]models.FriendUpdate, error)

	// Ping reports whether the backing database is reachable.
	Ping(ctx context.Context) error
}
