package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/habittrack/habittrack/internal/db"
	"github.com/habittrack/habittrack/internal/models"
)

// GormStore implements Store on top of a GORM connection. It works against
// both SQLite and PostgreSQL.
type GormStore struct {
	conn *gorm.DB
}

// NewGormStore wraps an open connection.
func NewGormStore(conn *gorm.DB) *GormStore {
	return &GormStore{conn: conn}
}

// GetUser fetches a user by ID, returning nil when absent.
func (s *GormStore) GetUser(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	errFind := s.conn.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if errors.Is(errFind, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if errFind != nil {
		return nil, fmt.Errorf("store: get user: %w", errFind)
	}
	return &user, nil
}

// GetUserByUsername fetches a user by username, returning nil when absent.
func (s *GormStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	errFind := s.conn.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if errors.Is(errFind, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if errFind != nil {
		return nil, fmt.Errorf("store: get user by username: %w", errFind)
	}
	return &user, nil
}

// CreateUser inserts a new user with zeroed counters.
func (s *GormStore) CreateUser(ctx context.Context, params CreateUserParams) (*models.User, error) {
	user := models.User{
		ID:       uuid.NewString(),
		Username: params.Username,
		Name:     params.Name,
		Avatar:   params.Avatar,
	}
	if errCreate := s.conn.WithContext(ctx).Create(&user).Error; errCreate != nil {
		return nil, fmt.Errorf("store: create user: %w", errCreate)
	}
	return &user, nil
}

// UpdateUser applies the non-nil fields of update and returns the fresh
// record, or nil when the user does not exist.
func (s *GormStore) UpdateUser(ctx context.Context, id string, update UserUpdate) (*models.User, error) {
	changes := map[string]any{}
	if update.Username != nil {
		changes["username"] = *update.Username
	}
	if update.Name != nil {
		changes["name"] = *update.Name
	}
	if update.Avatar != nil {
		changes["avatar"] = *update.Avatar
	}

	var user models.User
	errTx := s.conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		errFind := tx.Where("id = ?", id).First(&user).Error
		if errFind != nil {
			return errFind
		}
		if len(changes) == 0 {
			return nil
		}
		if errUpdate := tx.Model(&models.User{}).Where("id = ?", id).Updates(changes).Error; errUpdate != nil {
			return errUpdate
		}
		return tx.Where("id = ?", id).First(&user).Error
	})
	if errors.Is(errTx, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if errTx != nil {
		return nil, fmt.Errorf("store: update user: %w", errTx)
	}
	return &user, nil
}

// ListUsers returns all users, optionally filtered by a case-insensitive
// match on username or name.
func (s *GormStore) ListUsers(ctx context.Context, search string) ([]models.User, error) {
	query := s.conn.WithContext(ctx).Model(&models.User{})
	if search != "" {
		pattern := db.NormalizeLikePattern(s.conn, "%"+search+"%")
		query = query.Where(
			s.conn.Where(db.CaseInsensitiveLikeExpr(s.conn, "username"), pattern).
				Or(db.CaseInsensitiveLikeExpr(s.conn, "name"), pattern),
		)
	}
	var users []models.User
	if errList := query.Order("username ASC").Find(&users).Error; errList != nil {
		return nil, fmt.Errorf("store: list users: %w", errList)
	}
	return users, nil
}

// GetHabit fetches a habit by ID, returning nil when absent.
func (s *GormStore) GetHabit(ctx context.Context, id string) (*models.Habit, error) {
	var habit models.Habit
	errFind := s.conn.WithContext(ctx).Where("id = ?", id).First(&habit).Error
	if errors.Is(errFind, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if errFind != nil {
		return nil, fmt.Errorf("store: get habit: %w", errFind)
	}
	return &habit, nil
}

// ListHabits returns the habits owned by a user, oldest first.
func (s *GormStore) ListHabits(ctx context.Context, userID string) ([]models.Habit, error) {
	var habits []models.Habit
	errList := s.conn.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&habits).Error
	if errList != nil {
		return nil, fmt.Errorf("store: list habits: %w", errList)
	}
	return habits, nil
}

// CreateHabit inserts a habit and bumps the owner's habit counter in the
// same transaction. A missing owner is tolerated, matching delete behavior.
func (s *GormStore) CreateHabit(ctx context.Context, params CreateHabitParams) (*models.Habit, error) {
	habit := models.Habit{
		ID:              uuid.NewString(),
		UserID:          params.UserID,
		Name:            params.Name,
		Description:     params.Description,
		GroupID:         params.GroupID,
		Frequency:       params.Frequency,
		TargetValue:     params.TargetValue,
		Color:           params.Color,
		IsCollaborative: params.IsCollaborative,
		CreatedAt:       time.Now().UTC(),
	}
	errTx := s.conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if errCreate := tx.Create(&habit).Error; errCreate != nil {
			return errCreate
		}
		return tx.Model(&models.User{}).
			Where("id = ?", params.UserID).
			Update("total_habits", gorm.Expr("total_habits + 1")).Error
	})
	if errTx != nil {
		return nil, fmt.Errorf("store: create habit: %w", errTx)
	}
	return &habit, nil
}

// DeleteHabit removes a habit and decrements the owner's habit counter,
// flooring at zero. Completions of the habit are left in place. The bool
// reports whether a habit was deleted.
func (s *GormStore) DeleteHabit(ctx context.Context, id string) (bool, error) {
	deleted := false
	errTx := s.conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var habit models.Habit
		errFind := tx.Where("id = ?", id).First(&habit).Error
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			return nil
		}
		if errFind != nil {
			return errFind
		}
		if errDelete := tx.Where("id = ?", id).Delete(&models.Habit{}).Error; errDelete != nil {
			return errDelete
		}
		if errCount := tx.Model(&models.User{}).
			Where("id = ?", habit.UserID).
			Update("total_habits", gorm.Expr("CASE WHEN total_habits > 0 THEN total_habits - 1 ELSE 0 END")).Error; errCount != nil {
			return errCount
		}
		deleted = true
		return nil
	})
	if errTx != nil {
		return false, fmt.Errorf("store: delete habit: %w", errTx)
	}
	return deleted, nil
}

// ListCompletions returns completions across every habit the user owns,
// optionally limited to one calendar day. Orphaned completions of deleted
// habits are excluded because the habit join no longer matches.
func (s *GormStore) ListCompletions(ctx context.Context, userID string, date string) ([]models.Completion, error) {
	var habitIDs []string
	errIDs := s.conn.WithContext(ctx).Model(&models.Habit{}).
		Where("user_id = ?", userID).
		Pluck("id", &habitIDs).Error
	if errIDs != nil {
		return nil, fmt.Errorf("store: list completions: %w", errIDs)
	}
	if len(habitIDs) == 0 {
		return []models.Completion{}, nil
	}

	query := s.conn.WithContext(ctx).Where("habit_id IN ?", habitIDs)
	if date != "" {
		query = query.Where("date = ?", date)
	}
	var completions []models.Completion
	if errList := query.Order("completed_at ASC").Find(&completions).Error; errList != nil {
		return nil, fmt.Errorf("store: list completions: %w", errList)
	}
	return completions, nil
}

// ListHabitCompletions returns every completion recorded for one habit.
func (s *GormStore) ListHabitCompletions(ctx context.Context, habitID string) ([]models.Completion, error) {
	var completions []models.Completion
	errList := s.conn.WithContext(ctx).
		Where("habit_id = ?", habitID).
		Order("completed_at ASC").
		Find(&completions).Error
	if errList != nil {
		return nil, fmt.Errorf("store: list habit completions: %w", errList)
	}
	return completions, nil
}

// CreateCompletion inserts a completion. The habit is not re-validated and
// repeated completions on the same day are allowed.
func (s *GormStore) CreateCompletion(ctx context.Context, params CreateCompletionParams) (*models.Completion, error) {
	completion := models.Completion{
		ID:          uuid.NewString(),
		HabitID:     params.HabitID,
		Value:       params.Value,
		Date:        params.Date,
		CompletedAt: time.Now().UTC(),
	}
	if errCreate := s.conn.WithContext(ctx).Create(&completion).Error; errCreate != nil {
		return nil, fmt.Errorf("store: create completion: %w", errCreate)
	}
	return &completion, nil
}

// DeleteCompletion removes a completion by ID. The bool reports whether a
// row was deleted.
func (s *GormStore) DeleteCompletion(ctx context.Context, id string) (bool, error) {
	result := s.conn.WithContext(ctx).Where("id = ?", id).Delete(&models.Completion{})
	if result.Error != nil {
		return false, fmt.Errorf("store: delete completion: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// ListGroups returns the groups owned by a user.
func (s *GormStore) ListGroups(ctx context.Context, userID string) ([]models.Group, error) {
	var groups []models.Group
	errList := s.conn.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&groups).Error
	if errList != nil {
		return nil, fmt.Errorf("store: list groups: %w", errList)
	}
	return groups, nil
}

// CreateGroup inserts a group.
func (s *GormStore) CreateGroup(ctx context.Context, params CreateGroupParams) (*models.Group, error) {
	group := models.Group{
		ID:     uuid.NewString(),
		Name:   params.Name,
		Color:  params.Color,
		UserID: params.UserID,
	}
	if errCreate := s.conn.WithContext(ctx).Create(&group).Error; errCreate != nil {
		return nil, fmt.Errorf("store: create group: %w", errCreate)
	}
	return &group, nil
}

// ListHabitMembers resolves a habit's membership rows to user records.
// Rows whose user no longer exists are skipped.
func (s *GormStore) ListHabitMembers(ctx context.Context, habitID string) ([]models.User, error) {
	var memberIDs []string
	errIDs := s.conn.WithContext(ctx).Model(&models.GroupMember{}).
		Where("habit_id = ?", habitID).
		Order("created_at ASC").
		Pluck("user_id", &memberIDs).Error
	if errIDs != nil {
		return nil, fmt.Errorf("store: list habit members: %w", errIDs)
	}
	if len(memberIDs) == 0 {
		return []models.User{}, nil
	}

	var users []models.User
	errList := s.conn.WithContext(ctx).Where("id IN ?", memberIDs).Find(&users).Error
	if errList != nil {
		return nil, fmt.Errorf("store: list habit members: %w", errList)
	}

	byID := make(map[string]models.User, len(users))
	for _, user := range users {
		byID[user.ID] = user
	}
	members := make([]models.User, 0, len(memberIDs))
	for _, memberID := range memberIDs {
		if user, ok := byID[memberID]; ok {
			members = append(members, user)
		}
	}
	return members, nil
}

// AddGroupMember records a user as member of a collaborative habit.
func (s *GormStore) AddGroupMember(ctx context.Context, habitID, userID string) (*models.GroupMember, error) {
	member := models.GroupMember{
		ID:        uuid.NewString(),
		HabitID:   habitID,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}
	if errCreate := s.conn.WithContext(ctx).Create(&member).Error; errCreate != nil {
		return nil, fmt.Errorf("store: add group member: %w", errCreate)
	}
	return &member, nil
}

// RemoveGroupMember deletes a user's membership rows for a habit. The bool
// reports whether any row was deleted.
func (s *GormStore) RemoveGroupMember(ctx context.Context, habitID, userID string) (bool, error) {
	result := s.conn.WithContext(ctx).
		Where("habit_id = ? AND user_id = ?", habitID, userID).
		Delete(&models.GroupMember{})
	if result.Error != nil {
		return false, fmt.Errorf("store: remove group member: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// ListFriends resolves a user's outbound friendship edges to user records.
// Edges whose target user is gone are skipped.
func (s *GormStore) ListFriends(ctx context.Context, userID string) ([]models.User, error) {
	var friendIDs []string
	errIDs := s.conn.WithContext(ctx).Model(&models.Friendship{}).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Pluck("friend_id", &friendIDs).Error
	if errIDs != nil {
		return nil, fmt.Errorf("store: list friends: %w", errIDs)
	}
	if len(friendIDs) == 0 {
		return []models.User{}, nil
	}

	var users []models.User
	errList := s.conn.WithContext(ctx).Where("id IN ?", friendIDs).Find(&users).Error
	if errList != nil {
		return nil, fmt.Errorf("store: list friends: %w", errList)
	}

	byID := make(map[string]models.User, len(users))
	for _, user := range users {
		byID[user.ID] = user
	}
	friends := make([]models.User, 0, len(friendIDs))
	for _, friendID := range friendIDs {
		if user, ok := byID[friendID]; ok {
			friends = append(friends, user)
		}
	}
	return friends, nil
}

// HasFriendship reports whether a directed edge already exists.
func (s *GormStore) HasFriendship(ctx context.Context, userID, friendID string) (bool, error) {
	var count int64
	errCount := s.conn.WithContext(ctx).Model(&models.Friendship{}).
		Where("user_id = ? AND friend_id = ?", userID, friendID).
		Count(&count).Error
	if errCount != nil {
		return false, fmt.Errorf("store: check friendship: %w", errCount)
	}
	return count > 0, nil
}

// AddFriend inserts a directed friendship edge.
func (s *GormStore) AddFriend(ctx context.Context, userID, friendID string) (*models.Friendship, error) {
	friendship := models.Friendship{
		ID:        uuid.NewString(),
		UserID:    userID,
		FriendID:  friendID,
		CreatedAt: time.Now().UTC(),
	}
	if errCreate := s.conn.WithContext(ctx).Create(&friendship).Error; errCreate != nil {
		return nil, fmt.Errorf("store: add friend: %w", errCreate)
	}
	return &friendship, nil
}

// RemoveFriend deletes the directed edge from userID to friendID. The bool
// reports whether an edge existed.
func (s *GormStore) RemoveFriend(ctx context.Context, userID, friendID string) (bool, error) {
	result := s.conn.WithContext(ctx).
		Where("user_id = ? AND friend_id = ?", userID, friendID).
		Delete(&models.Friendship{})
	if result.Error != nil {
		return false, fmt.Errorf("store: remove friend: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// ListAchievements returns a user's achievements, seeded order.
func (s *GormStore) ListAchievements(ctx context.Context, userID string) ([]models.Achievement, error) {
	var achievements []models.Achievement
	errList := s.conn.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&achievements).Error
	if errList != nil {
		return nil, fmt.Errorf("store: list achievements: %w", errList)
	}
	return achievements, nil
}

// ListFriendUpdates returns a user's activity feed, newest first.
func (s *GormStore) ListFriendUpdates(ctx context.Context, userID string) ([]models.FriendUpdate, error) {
	var updates []models.FriendUpdate
	errList := s.conn.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Find(&updates).Error
	if errList != nil {
		return nil, fmt.Errorf("store: list friend updates: %w", errList)
	}
	return updates, nil
}

// Ping checks database connectivity.
func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, errDB := s.conn.DB()
	if errDB != nil {
		return fmt.Errorf("store: ping: %w", errDB)
	}
	if errPing := sqlDB.PingContext(ctx); errPing != nil {
		return fmt.Errorf("store: ping: %w", errPing)
	}
	return nil
}
