package middleware

import (
	"net/http"
	"strings"

	"hostiva/utils"

	"github.com/gin-gonic/gin"
)

// AdminAuthMiddleware gates back-office routes. The bearer token must be a
// valid admin JWT and its session must still be live in Redis, so a signed
// token can be revoked server-side.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		adminID, err := utils.ExtractAdminFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
			return
		}

		session, err := utils.GetAdminSession(utils.GetAuthCacheClient(), utils.HashToken(tokenString))
		if err != nil || session == nil || session.AdminID != adminID {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
			return
		}

		c.Set("adminID", adminID)
		c.Set("adminToken", tokenString)
		c.Set("isAdmin", true)
		c.Next()
	}
}
