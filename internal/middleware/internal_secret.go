package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"nilinki/internal/pkg/logger"
	"nilinki/internal/pkg/response"
)

// InternalSecret protects the notification endpoints with a shared static
// secret carried in the x-internal-secret header. This is service-to-service
// gating, independent of end-user authentication. A shared static secret is
// a placeholder for signed internal tokens, not a full trust system.
func InternalSecret(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			logInternalAuthFailure(c, "secret_not_configured")
			response.Error(c, http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}

		got := c.GetHeader("x-internal-secret")
		if subtle.ConstantTimeCompare([]byte(got), []byte(secret)) != 1 {
			logInternalAuthFailure(c, "invalid_secret")
			response.Error(c, http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}

		c.Next()
	}
}

func logInternalAuthFailure(c *gin.Context, reason string) {
	logger.Get().Warn("internal endpoint auth failure",
		zap.String("path", c.Request.URL.Path),
		zap.String("client_ip", c.ClientIP()),
		zap.String("reason", reason),
	)
}
