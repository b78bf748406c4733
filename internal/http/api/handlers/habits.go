package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/habittrack/habittrack/internal/models"
	"github.com/habittrack/habittrack/internal/store"
)

// HabitHandler manages habit endpoints.
type HabitHandler struct {
	store store.Store
}

// NewHabitHandler constructs a HabitHandler.
func NewHabitHandler(st store.Store) *HabitHandler {
	return &HabitHandler{store: st}
}

// List returns the acting user's habits.
func (h *HabitHandler) List(c *gin.Context) {
	habits, errList := h.store.ListHabits(c.Request.Context(), requestUserID(c))
	if errList != nil {
		log.WithError(errList).Error("list habits")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list habits failed"})
		return
	}
	c.JSON(http.StatusOK, habits)
}

// createHabitRequest defines the request body for habit creation.
type createHabitRequest struct {
	Name            string  `json:"name"`
	Description     *string `json:"description"`
	GroupID         *string `json:"groupId"`
	Frequency       string  `json:"frequency"`
	TargetValue     *int    `json:"targetValue"`
	Color           string  `json:"color"`
	IsCollaborative bool    `json:"isCollaborative"`
}

const defaultHabitColor = "#3B82F6"

// Create creates a habit for the acting user.
func (h *HabitHandler) Create(c *gin.Context) {
	var body createHabitRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	name := strings.TrimSpace(body.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing name"})
		return
	}

	frequency := strings.TrimSpace(body.Frequency)
	if frequency == "" {
		frequency = models.FrequencyDaily
	}
	switch frequency {
	case models.FrequencyDaily, models.FrequencyWeekly, models.FrequencyMonthly:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid frequency"})
		return
	}

	targetValue := 1
	if body.TargetValue != nil {
		targetValue = *body.TargetValue
	}
	if targetValue < 1 || targetValue > 10 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "targetValue must be between 1 and 10"})
		return
	}

	color := strings.TrimSpace(body.Color)
	if color == "" {
		color = defaultHabitColor
	}

	habit, errCreate := h.store.CreateHabit(c.Request.Context(), store.CreateHabitParams{
		UserID:          requestUserID(c),
		Name:            name,
		Description:     body.Description,
		GroupID:         body.GroupID,
		Frequency:       frequency,
		TargetValue:     targetValue,
		Color:           color,
		IsCollaborative: body.IsCollaborative,
	})
	if errCreate != nil {
		log.WithError(errCreate).Error("create habit")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create habit failed"})
		return
	}
	c.JSON(http.StatusOK, habit)
}

// Delete removes a habit by ID.
func (h *HabitHandler) Delete(c *gin.Context) {
	id := strings.TrimSpace(c.Param("habitId"))
	deleted, errDelete := h.store.DeleteHabit(c.Request.Context(), id)
	if errDelete != nil {
		log.WithError(errDelete).Error("delete habit")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete habit failed"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "habit not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
