package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/habittrack/habittrack/internal/store"
)

// UserHandler manages profile and user discovery endpoints.
type UserHandler struct {
	store store.Store
}

// NewUserHandler constructs a UserHandler.
func NewUserHandler(st store.Store) *UserHandler {
	return &UserHandler{store: st}
}

// Get returns the acting user's profile.
func (h *UserHandler) Get(c *gin.Context) {
	user, errGet := h.store.GetUser(c.Request.Context(), requestUserID(c))
	if errGet != nil {
		log.WithError(errGet).Error("get user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "get user failed"})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// updateUserRequest defines the editable profile fields. Counter and streak
// fields are absent on purpose so they pass through the bind unread.
type updateUserRequest struct {
	Username *string `json:"username"`
	Name     *string `json:"name"`
	Avatar   *string `json:"avatar"`
}

// Update applies a partial profile update for the acting user.
func (h *UserHandler) Update(c *gin.Context) {
	var body updateUserRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	user, errUpdate := h.store.UpdateUser(c.Request.Context(), requestUserID(c), store.UserUpdate{
		Username: body.Username,
		Name:     body.Name,
		Avatar:   body.Avatar,
	})
	if errUpdate != nil {
		log.WithError(errUpdate).Error("update user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update user failed"})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// ListAll returns every user, for friend discovery. An optional search query
// filters by username or name, case-insensitive.
func (h *UserHandler) ListAll(c *gin.Context) {
	search := strings.TrimSpace(c.Query("search"))
	users, errList := h.store.ListUsers(c.Request.Context(), search)
	if errList != nil {
		log.WithError(errList).Error("list users")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list users failed"})
		return
	}
	c.JSON(http.StatusOK, users)
}
