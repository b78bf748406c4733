package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/habittrack/habittrack/internal/store"
)

// FriendUpdateHandler serves the acting user's activity feed.
type FriendUpdateHandler struct {
	store store.Store
}

// NewFriendUpdateHandler constructs a FriendUpdateHandler.
func NewFriendUpdateHandler(st store.Store) *FriendUpdateHandler {
	return &FriendUpdateHandler{store: st}
}

// List returns the acting user's friend updates, newest first.
func (h *FriendUpdateHandler) List(c *gin.Context) {
	updates, errList := h.store.ListFriendUpdates(c.Request.Context(), requestUserID(c))
	if errList != nil {
		log.WithError(errList).Error("list friend updates")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list friend updates failed"})
		return
	}
	c.JSON(http.StatusOK, updates)
}
