package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/habittrack/habittrack/internal/store"
)

// GroupHandler manages habit group endpoints.
type GroupHandler struct {
	store store.Store
}

// NewGroupHandler constructs a GroupHandler.
func NewGroupHandler(st store.Store) *GroupHandler {
	return &GroupHandler{store: st}
}

// List returns the acting user's groups.
func (h *GroupHandler) List(c *gin.Context) {
	groups, errList := h.store.ListGroups(c.Request.Context(), requestUserID(c))
	if errList != nil {
		log.WithError(errList).Error("list groups")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list groups failed"})
		return
	}
	c.JSON(http.StatusOK, groups)
}

// createGroupRequest defines the request body for group creation.
type createGroupRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Create creates a group for the acting user.
func (h *GroupHandler) Create(c *gin.Context) {
	var body createGroupRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	name := strings.TrimSpace(body.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing name"})
		return
	}
	color := strings.TrimSpace(body.Color)
	if color == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing color"})
		return
	}

	group, errCreate := h.store.CreateGroup(c.Request.Context(), store.CreateGroupParams{
		Name:   name,
		Color:  color,
		UserID: requestUserID(c),
	})
	if errCreate != nil {
		log.WithError(errCreate).Error("create group")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create group failed"})
		return
	}
	c.JSON(http.StatusOK, group)
}
