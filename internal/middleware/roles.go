package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sahilparmar-7/ams/internal/common"
)

// RequireRoles rejects requests whose authenticated role is not in the
// allowed set. Must run after AuthMiddleware.
func RequireRoles(allowed ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := common.GetRoleFromContext(c)
		for _, a := range allowed {
			if role == a {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient role for this operation"})
	}
}

// RequireManagement allows only owner, admin and coordinator.
func RequireManagement() gin.HandlerFunc {
	return RequireRoles(common.RoleOwner, common.RoleAdmin, common.RoleCoordinator)
}
