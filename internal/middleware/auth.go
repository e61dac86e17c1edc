package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/sahilparmar-7/ams/internal/common"
	"github.com/sahilparmar-7/ams/internal/store"
	"github.com/sahilparmar-7/ams/pkg/token"
)

// AuthMiddleware validates the bearer token and confirms the user still
// exists and is active before letting the request through. Claims are
// trusted for role/academy scoping; existence is re-checked against the
// users collection.
func AuthMiddleware(jwtSecret string, st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		bearerToken := strings.Split(authHeader, " ")
		if len(bearerToken) != 2 || strings.ToLower(bearerToken[0]) != "bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid Authorization header format. Expected: Bearer <token>"})
			return
		}

		claims, err := token.Validate(bearerToken[1], jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token: " + err.Error()})
			return
		}

		user, err := st.FetchOne(c.Request.Context(), store.Users, bson.M{"id": claims.UserID})
		if err != nil || user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			return
		}
		if user.Str("status") == common.StatusInactive {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User is inactive"})
			return
		}

		c.Set(common.ContextUserIDKey, claims.UserID)
		c.Set(common.ContextRoleKey, user.Str("role"))
		c.Set(common.ContextAcademyIDKey, user.Str("academyId"))
		c.Next()
	}
}
