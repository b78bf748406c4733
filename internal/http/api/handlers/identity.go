package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// HeaderUserID carries the acting user for a request.
const HeaderUserID = "X-User-Id"

const contextUserIDKey = "userID"

// Identity resolves the acting user from the X-User-Id header, falling back
// to the configured demo user when the header is absent.
func Identity(demoUserID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(HeaderUserID))
		if userID == "" {
			userID = demoUserID
		}
		c.Set(contextUserIDKey, userID)
		c.Next()
	}
}

// requestUserID returns the acting user set by the Identity middleware.
func requestUserID(c *gin.Context) string {
	return c.GetString(contextUserIDKey)
}
