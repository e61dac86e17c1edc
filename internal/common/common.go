package common

import (
	"errors"

	"github.com/gin-gonic/gin"
)

// Academy roles. Every user carries exactly one.
const (
	RoleOwner       = "owner"
	RoleAdmin       = "admin"
	RoleCoordinator = "coordinator"
	RoleCoach       = "coach"
	RolePlayer      = "player"
)

// User statuses.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Context keys set by the auth middleware.
const (
	ContextUserIDKey    = "auth_user_id"
	ContextRoleKey      = "auth_role"
	ContextAcademyIDKey = "auth_academy_id"
)

// GetUserIDFromContext retrieves the authenticated user's id.
func GetUserIDFromContext(c *gin.Context) (string, error) {
	v, exists := c.Get(ContextUserIDKey)
	if !exists {
		return "", errors.New("user ID not found in context")
	}
	id, ok := v.(string)
	if !ok || id == "" {
		return "", errors.New("user ID in context is not a string")
	}
	return id, nil
}

// GetRoleFromContext retrieves the authenticated user's role.
func GetRoleFromContext(c *gin.Context) string {
	v, _ := c.Get(ContextRoleKey)
	role, _ := v.(string)
	return role
}

// GetAcademyIDFromContext retrieves the authenticated user's academy scope.
func GetAcademyIDFromContext(c *gin.Context) string {
	v, _ := c.Get(ContextAcademyIDKey)
	academyID, _ := v.(string)
	return academyID
}

// IsManagementRole reports whether the role may administer academy-wide
// resources (everything except coach- and player-scoped data).
func IsManagementRole(role string) bool {
	return role == RoleOwner || role == RoleAdmin || role == RoleCoordinator
}
