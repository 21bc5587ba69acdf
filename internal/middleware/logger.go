package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"nilinki/internal/pkg/logger"
	"nilinki/internal/pkg/response"
)

// ErrorLogger logs detailed error information and recovers from panics.
// Diagnostic detail stays in the log; the response body never carries it.
func ErrorLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		defer func() {
			if recovered := recover(); recovered != nil {
				err := fmt.Errorf("%v", recovered)
				logRequestError(c, start, "panic", err.Error(), debug.Stack())

				response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
				c.Abort()
				return
			}

			if len(c.Errors) == 0 {
				if c.Writer.Status() >= http.StatusInternalServerError {
					logRequestError(c, start, "http_error", fmt.Sprintf("status=%d", c.Writer.Status()), nil)
				}
				return
			}

			for _, err := range c.Errors {
				logRequestError(c, start, fmt.Sprintf("%v", err.Type), err.Error(), nil)
			}
		}()

		c.Next()
	}
}

func logRequestError(c *gin.Context, start time.Time, errType, message string, stack []byte) {
	fields := []zap.Field{
		zap.String("type", errType),
		zap.Int("status", c.Writer.Status()),
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.String("client_ip", c.ClientIP()),
		zap.String("user_id", c.GetString("user_id")),
		zap.Duration("latency", time.Since(start)),
		zap.String("error", message),
	}
	if stack != nil {
		fields = append(fields, zap.ByteString("stack", stack))
	}
	logger.Get().Error("request error", fields...)
}
