package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// APIKeyAuthMiddleware enforces the mock's auth contract: any non-empty
// bearer token or hapikey query parameter is accepted. Only the presence and
// shape of credentials is checked, never their content.
func APIKeyAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if key := c.Query("hapikey"); key != "" {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "Missing authorization header")
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			abortUnauthorized(c, "Invalid authorization header format. Expected Bearer {token}")
			return
		}

		if tokenParts[1] == "" {
			abortUnauthorized(c, "Empty token")
			return
		}

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"status":        "error",
		"message":       message,
		"correlationId": uuid.NewString(),
		"category":      "INVALID_AUTHENTICATION",
	})
}
