// Package api wires the REST surface onto a gin engine.
package api

import (
	"github.com/gin-gonic/gin"

	"github.com/habittrack/habittrack/internal/http/api/handlers"
	"github.com/habittrack/habittrack/internal/store"
)

// RegisterRoutes registers the health endpoint and the /api surface.
// Requests resolve their acting user from the X-User-Id header, falling
// back to demoUserID.
func RegisterRoutes(r *gin.Engine, st store.Store, demoUserID string) {
	if r == nil || st == nil {
		return
	}

	healthHandler := handlers.NewHealthHandler(st)
	r.GET("/healthz", healthHandler.Healthz)

	apiGroup := r.Group("/api")
	apiGroup.Use(handlers.Identity(demoUserID))

	habitHandler := handlers.NewHabitHandler(st)
	apiGroup.GET("/habits", habitHandler.List)
	apiGroup.POST("/habits", habitHandler.Create)
	apiGroup.DELETE("/habits/:habitId", habitHandler.Delete)

	completionHandler := handlers.NewCompletionHandler(st)
	apiGroup.GET("/completions", completionHandler.List)
	apiGroup.POST("/completions", completionHandler.Create)
	apiGroup.DELETE("/completions/:id", completionHandler.Delete)

	groupHandler := handlers.NewGroupHandler(st)
	apiGroup.GET("/groups", groupHandler.List)
	apiGroup.POST("/groups", groupHandler.Create)

	achievementHandler := handlers.NewAchievementHandler(st)
	apiGroup.GET("/achievements", achievementHandler.List)

	friendUpdateHandler := handlers.NewFriendUpdateHandler(st)
	apiGroup.GET("/friend-updates", friendUpdateHandler.List)

	userHandler := handlers.NewUserHandler(st)
	apiGroup.GET("/user", userHandler.Get)
	apiGroup.PATCH("/user", userHandler.Update)
	apiGroup.GET("/all-users", userHandler.ListAll)

	friendHandler := handlers.NewFriendHandler(st)
	apiGroup.GET("/friends", friendHandler.List)
	apiGroup.POST("/friends", friendHandler.Add)
	apiGroup.DELETE("/friends/:friendId", friendHandler.Remove)

	memberHandler := handlers.NewMemberHandler(st)
	apiGroup.GET("/habits/:habitId/members", memberHandler.List)
	apiGroup.POST("/habits/:habitId/members", memberHandler.Add)
	apiGroup.DELETE("/habits/:habitId/members/:userId", memberHandler.Remove)
	apiGroup.GET("/habits/:habitId/collaborations/:date", memberHandler.Collaborations)
}
