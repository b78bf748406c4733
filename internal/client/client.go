// Package client is a REST client for the habit tracking API plus the view
// state derived from fetched collections.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/habittrack/habittrack/internal/models"
)

// HeaderUserID carries the acting user on every request.
const HeaderUserID = "X-User-Id"

// Client talks to a habit tracking server. A non-empty userID is sent as the
// X-User-Id header; an empty userID lets the server fall back to its demo
// identity.
type Client struct {
	baseURL string
	userID  string
	http    *http.Client
}

// New builds a client for the given server base URL.
func New(baseURL, userID string) *Client {
	return &Client{
		baseURL: baseURL,
		userID:  userID,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// apiError is the error body returned by every failing endpoint.
type apiError struct {
	Error string `json:"error"`
}

// do issues a request and decodes the JSON response into out when non-nil.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, errMarshal := json.Marshal(body)
		if errMarshal != nil {
			return fmt.Errorf("client: marshal request: %w", errMarshal)
		}
		reader = bytes.NewReader(payload)
	}

	req, errReq := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if errReq != nil {
		return fmt.Errorf("client: build request: %w", errReq)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userID != "" {
		req.Header.Set(HeaderUserID, c.userID)
	}

	resp, errDo := c.http.Do(req)
	if errDo != nil {
		return fmt.Errorf("client: %s %s: %w", method, path, errDo)
	}
	defer resp.Body.Close()

	data, errRead := io.ReadAll(resp.Body)
	if errRead != nil {
		return fmt.Errorf("client: read response: %w", errRead)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		if errDecode := json.Unmarshal(data, &apiErr); errDecode == nil && apiErr.Error != "" {
			return fmt.Errorf("client: %s %s: %s (status %d)", method, path, apiErr.Error, resp.StatusCode)
		}
		return fmt.Errorf("client: %s %s: status %d", method, path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if errDecode := json.Unmarshal(data, out); errDecode != nil {
		return fmt.Errorf("client: decode response: %w", errDecode)
	}
	return nil
}

// User fetches the acting user's profile.
func (c *Client) User(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/api/user", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUserParams carries editable profile fields for UpdateUser.
type UpdateUserParams struct {
	Username *string `json:"username,omitempty"`
	Name     *string `json:"name,omitempty"`
	Avatar   *string `json:"avatar,omitempty"`
}

// UpdateUser applies a partial profile update.
func (c *Client) UpdateUser(ctx context.Context, params UpdateUserParams) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodPatch, "/api/user", params, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// AllUsers lists every user, optionally filtered by search.
func (c *Client) AllUsers(ctx context.Context, search string) ([]models.User, error) {
	path := "/api/all-users"
	if search != "" {
		path += "?search=" + url.QueryEscape(search)
	}
	var users []models.User
	if err := c.do(ctx, http.MethodGet, path, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Habits lists the acting user's habits.
func (c *Client) Habits(ctx context.Context) ([]models.Habit, error) {
	var habits []models.Habit
	if err := c.do(ctx, http.MethodGet, "/api/habits", nil, &habits); err != nil {
		return nil, err
	}
	return habits, nil
}

// CreateHabitParams carries the fields for CreateHabit.
type CreateHabitParams struct {
	Name            string  `json:"name"`
	Description     *string `json:"description,omitempty"`
	GroupID         *string `json:"groupId,omitempty"`
	Frequency       string  `json:"frequency,omitempty"`
	TargetValue     int     `json:"targetValue,omitempty"`
	Color           string  `json:"color,omitempty"`
	IsCollaborative bool    `json:"isCollaborative,omitempty"`
}

// CreateHabit creates a habit.
func (c *Client) CreateHabit(ctx context.Context, params CreateHabitParams) (*models.Habit, error) {
	var habit models.Habit
	if err := c.do(ctx, http.MethodPost, "/api/habits", params, &habit); err != nil {
		return nil, err
	}
	return &habit, nil
}

// DeleteHabit removes a habit by ID.
func (c *Client) DeleteHabit(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/habits/"+id, nil, nil)
}

// Completions lists completions across the acting user's habits.
func (c *Client) Completions(ctx context.Context) ([]models.Completion, error) {
	var completions []models.Completion
	if err := c.do(ctx, http.MethodGet, "/api/completions", nil, &completions); err != nil {
		return nil, err
	}
	return completions, nil
}

// CreateCompletion records a completion for a habit on a calendar day.
func (c *Client) CreateCompletion(ctx context.Context, habitID string, value int, date string) (*models.Completion, error) {
	body := map[string]any{"habitId": habitID, "value": value, "date": date}
	var completion models.Completion
	if err := c.do(ctx, http.MethodPost, "/api/completions", body, &completion); err != nil {
		return nil, err
	}
	return &completion, nil
}

// DeleteCompletion removes a completion by ID.
func (c *Client) DeleteCompletion(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/completions/"+id, nil, nil)
}

// ToggleCompletion flips a habit's completion for a calendar day: an
// existing completion is deleted, otherwise one is created with value 1.
// The read and write are separate requests, not atomic. The bool reports
// whether the habit ended up completed.
func (c *Client) ToggleCompletion(ctx context.Context, habitID, date string) (bool, error) {
	completions, errList := c.Completions(ctx)
	if errList != nil {
		return false, errList
	}
	for _, completion := range completions {
		if completion.HabitID == habitID && completion.Date == date {
			if errDelete := c.DeleteCompletion(ctx, completion.ID); errDelete != nil {
				return false, errDelete
			}
			return false, nil
		}
	}
	if _, errCreate := c.CreateCompletion(ctx, habitID, 1, date); errCreate != nil {
		return false, errCreate
	}
	return true, nil
}

// Groups lists the acting user's groups.
func (c *Client) Groups(ctx context.Context) ([]models.Group, error) {
	var groups []models.Group
	if err := c.do(ctx, http.MethodGet, "/api/groups", nil, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// CreateGroup creates a habit group.
func (c *Client) CreateGroup(ctx context.Context, name, color string) (*models.Group, error) {
	body := map[string]string{"name": name, "color": color}
	var group models.Group
	if err := c.do(ctx, http.MethodPost, "/api/groups", body, &group); err != nil {
		return nil, err
	}
	return &group, nil
}

// Achievements lists the acting user's achievements.
func (c *Client) Achievements(ctx context.Context) ([]models.Achievement, error) {
	var achievements []models.Achievement
	if err := c.do(ctx, http.MethodGet, "/api/achievements", nil, &achievements); err != nil {
		return nil, err
	}
	return achievements, nil
}

// FriendUpdates lists the acting user's activity feed.
func (c *Client) FriendUpdates(ctx context.Context) ([]models.FriendUpdate, error) {
	var updates []models.FriendUpdate
	if err := c.do(ctx, http.MethodGet, "/api/friend-updates", nil, &updates); err != nil {
		return nil, err
	}
	return updates, nil
}

// Friends lists the users the acting user follows.
func (c *Client) Friends(ctx context.Context) ([]models.User, error) {
	var friends []models.User
	if err := c.do(ctx, http.MethodGet, "/api/friends", nil, &friends); err != nil {
		return nil, err
	}
	return friends, nil
}

// AddFriend follows another user.
func (c *Client) AddFriend(ctx context.Context, friendID string) (*models.Friendship, error) {
	body := map[string]string{"friendId": friendID}
	var friendship models.Friendship
	if err := c.do(ctx, http.MethodPost, "/api/friends", body, &friendship); err != nil {
		return nil, err
	}
	return &friendship, nil
}

// RemoveFriend unfollows a user.
func (c *Client) RemoveFriend(ctx context.Context, friendID string) error {
	return c.do(ctx, http.MethodDelete, "/api/friends/"+friendID, nil, nil)
}

// HabitMembers lists the collaborators on a habit.
func (c *Client) HabitMembers(ctx context.Context, habitID string) ([]models.User, error) {
	var members []models.User
	if err := c.do(ctx, http.MethodGet, "/api/habits/"+habitID+"/members", nil, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// AddHabitMember records a collaborator on a habit.
func (c *Client) AddHabitMember(ctx context.Context, habitID, userID string) (*models.GroupMember, error) {
	body := map[string]string{"userId": userID}
	var member models.GroupMember
	if err := c.do(ctx, http.MethodPost, "/api/habits/"+habitID+"/members", body, &member); err != nil {
		return nil, err
	}
	return &member, nil
}

// RemoveHabitMember removes a collaborator from a habit.
func (c *Client) RemoveHabitMember(ctx context.Context, habitID, userID string) error {
	return c.do(ctx, http.MethodDelete, "/api/habits/"+habitID+"/members/"+userID, nil, nil)
}

// CollaborationStatus is one member's completion state for a habit and day.
type CollaborationStatus struct {
	MemberID     string  `json:"memberId"`
	MemberName   string  `json:"memberName"`
	MemberAvatar *string `json:"memberAvatar"`
	Completed    bool    `json:"completed"`
}

// Collaborations reports per-member completion status for a habit on a day.
func (c *Client) Collaborations(ctx context.Context, habitID, date string) ([]CollaborationStatus, error) {
	var statuses []CollaborationStatus
	if err := c.do(ctx, http.MethodGet, "/api/habits/"+habitID+"/collaborations/"+date, nil, &statuses); err != nil {
		return nil, err
	}
	return statuses, nil
}
