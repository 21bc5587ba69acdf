package response

import "github.com/gin-gonic/gin"

// FieldError is one field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func OK(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"message": message,
	})
}

func Data(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

// Error writes a failure body. The message must stay short and
// non-technical; internals belong in logs, never in the response.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}

func ValidationFailed(c *gin.Context, statusCode int, errs []FieldError) {
	c.JSON(statusCode, gin.H{
		"error":   "Validation failed",
		"details": errs,
	})
}
