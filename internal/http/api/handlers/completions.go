package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/habittrack/habittrack/internal/store"
)

// CompletionHandler manages completion endpoints.
type CompletionHandler struct {
	store store.Store
}

// NewCompletionHandler constructs a CompletionHandler.
func NewCompletionHandler(st store.Store) *CompletionHandler {
	return &CompletionHandler{store: st}
}

// List returns completions across the acting user's habits, optionally
// narrowed to one calendar day via the date query.
func (h *CompletionHandler) List(c *gin.Context) {
	date := strings.TrimSpace(c.Query("date"))
	completions, errList := h.store.ListCompletions(c.Request.Context(), requestUserID(c), date)
	if errList != nil {
		log.WithError(errList).Error("list completions")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list completions failed"})
		return
	}
	c.JSON(http.StatusOK, completions)
}

// createCompletionRequest defines the request body for recording a completion.
type createCompletionRequest struct {
	HabitID string `json:"habitId"`
	Value   *int   `json:"value"`
	Date    string `json:"date"`
}

// Create records a completion.
func (h *CompletionHandler) Create(c *gin.Context) {
	var body createCompletionRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	habitID := strings.TrimSpace(body.HabitID)
	if habitID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing habitId"})
		return
	}
	date := strings.TrimSpace(body.Date)
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing date"})
		return
	}

	value := 1
	if body.Value != nil {
		value = *body.Value
	}
	if value < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "value must be at least 1"})
		return
	}

	completion, errCreate := h.store.CreateCompletion(c.Request.Context(), store.CreateCompletionParams{
		HabitID: habitID,
		Value:   value,
		Date:    date,
	})
	if errCreate != nil {
		log.WithError(errCreate).Error("create completion")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create completion failed"})
		return
	}
	c.JSON(http.StatusOK, completion)
}

// Delete removes a completion by ID.
func (h *CompletionHandler) Delete(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	deleted, errDelete := h.store.DeleteCompletion(c.Request.Context(), id)
	if errDelete != nil {
		log.WithError(errDelete).Error("delete completion")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete completion failed"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "completion not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
