package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nilinki/internal/pkg/response"
)

// RequireRole ensures that the authenticated user has the specified role.
func RequireRole(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Error(c, http.StatusUnauthorized, "Authentication required")
			c.Abort()
			return
		}

		if role.(string) != requiredRole {
			response.Error(c, http.StatusForbidden, "Access denied: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

// BandOnly requires the band role; used by the owner dashboard routes.
func BandOnly() gin.HandlerFunc {
	return RequireRole("band")
}
