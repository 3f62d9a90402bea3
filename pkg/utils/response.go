package utils

import "github.com/gin-gonic/gin"

// MessageResponse sends a JSON body carrying a human-readable message
func MessageResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"message": message,
	})
}

// ErrorResponse sends an error JSON response. The body shape matches
// MessageResponse: clients only ever see {"message": ...}.
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"message": message,
	})
}
