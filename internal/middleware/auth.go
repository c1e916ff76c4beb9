package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/shopstack/inventory-api/internal/auth"
)

// UsernameKey is the gin context key holding the authenticated username.
const UsernameKey = "username"

// RequireAuth validates the bearer token on protected routes and stores
// the username claim in the request context.
func RequireAuth(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Access denied. Please provide a valid token."})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token format (must be Bearer)"})
			c.Abort()
			return
		}

		username, err := tokens.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication failed. Invalid or expired token."})
			c.Abort()
			return
		}

		c.Set(UsernameKey, username)
		c.Next()
	}
}
