package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	jwtsvc "nilinki/internal/pkg/jwt"
	"nilinki/internal/pkg/response"
)

// Auth resolves the bearer token into a caller identity and aborts with 401
// when none is present or valid.
func Auth(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := ResolveBearer(c, jwt)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, err.Error())
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)

		c.Next()
	}
}

// OptionalAuth sets the caller identity when a valid bearer token is present
// and otherwise continues anonymously. Used by read endpoints whose result
// depends on who is asking but which never reject.
func OptionalAuth(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, err := ResolveBearer(c, jwt); err == nil {
			c.Set("user_id", claims.UserID)
			c.Set("role", claims.Role)
		}
		c.Next()
	}
}

// ResolveBearer parses and validates the Authorization header. Handlers that
// must run validation before the auth check (the quote orchestrator) call
// this directly instead of sitting behind Auth.
func ResolveBearer(c *gin.Context, jwt *jwtsvc.Service) (*jwtsvc.Claims, error) {
	h := c.GetHeader("Authorization")
	if h == "" {
		return nil, errAuthRequired
	}
	if !strings.HasPrefix(h, "Bearer ") {
		return nil, errAuthInvalid
	}

	tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	if tokenStr == "" {
		return nil, errAuthInvalid
	}

	claims, err := jwt.ValidateToken(tokenStr)
	if err != nil {
		return nil, errAuthInvalid
	}
	return claims, nil
}
