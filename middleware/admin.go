package middleware

import (
	"net/http"

	"tourism-backend/config"

	"github.com/gin-gonic/gin"
)

// AdminOnly lets a request through when the X-Admin-Token header, or the token query
// parameter when the header is absent, equals secret. The comparison is a plain string
// equality, not constant-time.
func AdminOnly(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(config.AdminTokenHeader)
		if token == "" {
			token = c.Query(config.AdminTokenQuery)
		}

		if token == "" || token != secret {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Next()
	}
}
