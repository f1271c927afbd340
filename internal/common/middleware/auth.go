package middleware

import (
	"github.com/architect/city-events/internal/common/errors"
	"github.com/gin-gonic/gin"
)

// TokenResolver maps a session token to a user id. Returns false when the
// token is unknown or expired.
type TokenResolver func(token string) (string, bool)

// AuthRequired middleware checks for a valid session cookie or bearer token
// and stores the resolved user id in the request context.
func AuthRequired(resolve TokenResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := sessionToken(c)
		if token != "" {
			if userID, ok := resolve(token); ok {
				c.Set("user_id", userID)
				c.Next()
				return
			}
		}

		appErr := errors.Unauthorized("missing or invalid authentication")
		c.JSON(appErr.Status, appErr)
		c.Abort()
	}
}

// OptionalAuth resolves the user if a token is present but never fails the
// request. Handlers see an absent user_id as the signed-out state.
func OptionalAuth(resolve TokenResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := sessionToken(c)
		if token != "" {
			if userID, ok := resolve(token); ok {
				c.Set("user_id", userID)
			}
		}
		c.Next()
	}
}

func sessionToken(c *gin.Context) string {
	// Check for session cookie first
	if session, err := c.Cookie("session_id"); err == nil && session != "" {
		return session
	}

	// Fall back to the Authorization header
	return c.GetHeader("Authorization")
}
