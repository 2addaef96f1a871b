package middleware

import (
	"net/http"
	"strings"

	"schedly/utils"

	"github.com/gin-gonic/gin"
)

// TenantAuthMiddleware resolves the calling tenant from the bearer token and
// stores "tenantID" and "role" in the request context. Tenant and user
// management itself lives in the identity service; this middleware only
// trusts its signed tokens.
func TenantAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		tenantID, role, err := utils.ExtractTenantFromToken(tokenString)
		if err != nil || tenantID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		c.Set("tenantID", tenantID)
		c.Set("role", role)
		c.Next()
	}
}

// AdminOnlyMiddleware gates configuration writes behind the admin role claim.
func AdminOnlyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("role") != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin role required"})
			return
		}
		c.Next()
	}
}
