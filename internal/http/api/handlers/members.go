package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/habittrack/habittrack/internal/store"
)

// MemberHandler manages collaborator endpoints for collaborative habits.
type MemberHandler struct {
	store store.Store
}

// NewMemberHandler constructs a MemberHandler.
func NewMemberHandler(st store.Store) *MemberHandler {
	return &MemberHandler{store: st}
}

// List returns the users collaborating on a habit.
func (h *MemberHandler) List(c *gin.Context) {
	habitID := strings.TrimSpace(c.Param("habitId"))
	members, errList := h.store.ListHabitMembers(c.Request.Context(), habitID)
	if errList != nil {
		log.WithError(errList).Error("list habit members")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list members failed"})
		return
	}
	c.JSON(http.StatusOK, members)
}

// addMemberRequest defines the request body for adding a collaborator.
type addMemberRequest struct {
	UserID string `json:"userId"`
}

// Add records a user as collaborator on a habit.
func (h *MemberHandler) Add(c *gin.Context) {
	habitID := strings.TrimSpace(c.Param("habitId"))
	var body addMemberRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	userID := strings.TrimSpace(body.UserID)
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing userId"})
		return
	}

	member, errAdd := h.store.AddGroupMember(c.Request.Context(), habitID, userID)
	if errAdd != nil {
		log.WithError(errAdd).Error("add habit member")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "add member failed"})
		return
	}
	c.JSON(http.StatusOK, member)
}

// Remove deletes a user's membership on a habit.
func (h *MemberHandler) Remove(c *gin.Context) {
	habitID := strings.TrimSpace(c.Param("habitId"))
	userID := strings.TrimSpace(c.Param("userId"))
	removed, errRemove := h.store.RemoveGroupMember(c.Request.Context(), habitID, userID)
	if errRemove != nil {
		log.WithError(errRemove).Error("remove habit member")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "remove member failed"})
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "member not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Collaborations reports per-member completion status for a habit on a day.
// The completed flag only reflects the requesting user's own completions, so
// every member carries the same value.
func (h *MemberHandler) Collaborations(c *gin.Context) {
	habitID := strings.TrimSpace(c.Param("habitId"))
	date := strings.TrimSpace(c.Param("date"))

	members, errMembers := h.store.ListHabitMembers(c.Request.Context(), habitID)
	if errMembers != nil {
		log.WithError(errMembers).Error("list habit members")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list collaborations failed"})
		return
	}

	completions, errCompletions := h.store.ListCompletions(c.Request.Context(), requestUserID(c), "")
	if errCompletions != nil {
		log.WithError(errCompletions).Error("list completions")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list collaborations failed"})
		return
	}

	completed := false
	for _, completion := range completions {
		if completion.HabitID == habitID && completion.Date == date {
			completed = true
			break
		}
	}

	out := make([]gin.H, 0, len(members))
	for _, member := range members {
		out = append(out, gin.H{
			"memberId":     member.ID,
			"memberName":   member.Name,
			"memberAvatar": member.Avatar,
			"completed":    completed,
		})
	}
	c.JSON(http.StatusOK, out)
}
