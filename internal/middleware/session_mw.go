package middleware

import (
	"net/http"
	"strings"

	"petnutricare/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	AuthUserKey = "authUser"
	AuthRoleKey = "authRole"
)

// BearerToken extracts the bearer token from the request's Authorization
// header.
func BearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	return parts[1], true
}

// SessionAuthMiddleware creates a middleware that resolves the bearer token
// to a user via the auth service and stores the user on the context.
func SessionAuthMiddleware(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := BearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "No token provided"})
			return
		}

		user, err := auth.Profile(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid or expired token"})
			return
		}

		c.Set(AuthUserKey, user)
		c.Set(AuthRoleKey, user.Role)

		c.Next()
	}
}
