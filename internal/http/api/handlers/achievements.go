package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/habittrack/habittrack/internal/store"
)

// AchievementHandler serves the acting user's badge list.
type AchievementHandler struct {
	store store.Store
}

// NewAchievementHandler constructs an AchievementHandler.
func NewAchievementHandler(st store.Store) *AchievementHandler {
	return &AchievementHandler{store: st}
}

// List returns the acting user's achievements.
func (h *AchievementHandler) List(c *gin.Context) {
	achievements, errList := h.store.ListAchievements(c.Request.Context(), requestUserID(c))
	if errList != nil {
		log.WithError(errList).Error("list achievements")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list achievements failed"})
		return
	}
	c.JSON(http.StatusOK, achievements)
}
