package middleware

import (
	"net/http"
	"time"

	"artcatalog/database"
	authapi "artcatalog/internal/api/auth"
	"artcatalog/internal/domain/admins"
	"artcatalog/internal/logger"

	"github.com/gin-gonic/gin"
)

// RequireRoles resolves the session cookie on every request and rejects with
// 401 when there is no valid session, 403 when the role is not allowed.
func RequireRoles(allowed ...admins.AdminRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := admins.ResolveSession(database.DB, authapi.SessionIDFromRequest(c), time.Now())
		if err != nil {
			logger.L.Errorw("session resolution failed", "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			return
		}
		if identity == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthenticated"})
			return
		}

		permitted := false
		for _, role := range allowed {
			if identity.Role == role {
				permitted = true
				break
			}
		}
		if !permitted {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden"})
			return
		}

		c.Set("admin_id", identity.ID)
		c.Set("admin_email", identity.Email)
		c.Set("admin_role", string(identity.Role))
		c.Next()
	}
}
