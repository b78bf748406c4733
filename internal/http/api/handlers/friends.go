package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/habittrack/habittrack/internal/store"
)

// FriendHandler manages friendship endpoints.
type FriendHandler struct {
	store store.Store
}

// NewFriendHandler constructs a FriendHandler.
func NewFriendHandler(st store.Store) *FriendHandler {
	return &FriendHandler{store: st}
}

// List returns the users the acting user follows.
func (h *FriendHandler) List(c *gin.Context) {
	friends, errList := h.store.ListFriends(c.Request.Context(), requestUserID(c))
	if errList != nil {
		log.WithError(errList).Error("list friends")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list friends failed"})
		return
	}
	c.JSON(http.StatusOK, friends)
}

// addFriendRequest defines the request body for adding a friend.
type addFriendRequest struct {
	FriendID string `json:"friendId"`
}

// Add creates an outbound friendship edge for the acting user.
func (h *FriendHandler) Add(c *gin.Context) {
	var body addFriendRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	friendID := strings.TrimSpace(body.FriendID)
	if friendID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing friendId"})
		return
	}

	userID := requestUserID(c)
	if userID == friendID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot add yourself as a friend"})
		return
	}

	exists, errHas := h.store.HasFriendship(c.Request.Context(), userID, friendID)
	if errHas != nil {
		log.WithError(errHas).Error("check friendship")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "add friend failed"})
		return
	}
	if exists {
		c.JSON(http.StatusBadRequest, gin.H{"error": "already friends with this user"})
		return
	}

	friendship, errAdd := h.store.AddFriend(c.Request.Context(), userID, friendID)
	if errAdd != nil {
		log.WithError(errAdd).Error("add friend")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "add friend failed"})
		return
	}
	c.JSON(http.StatusOK, friendship)
}

// Remove deletes the acting user's friendship with the given friend.
func (h *FriendHandler) Remove(c *gin.Context) {
	friendID := strings.TrimSpace(c.Param("friendId"))
	removed, errRemove := h.store.RemoveFriend(c.Request.Context(), requestUserID(c), friendID)
	if errRemove != nil {
		log.WithError(errRemove).Error("remove friend")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "remove friend failed"})
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "friendship not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
