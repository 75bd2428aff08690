package utils

import "github.com/gin-gonic/gin"

func JSONData(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"data": data})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

// JSONErrorDetails carries driver-reported text alongside the message.
func JSONErrorDetails(c *gin.Context, code int, message, details string) {
	c.JSON(code, gin.H{"error": message, "details": details})
}
