package session

import (
	"github.com/gin-gonic/gin"

	"github.com/sahilparmar-7/ams/internal/common"
	mw "github.com/sahilparmar-7/ams/internal/middleware"
	"github.com/sahilparmar-7/ams/internal/store"
)

// SessionRoutes mounts session routes. Cancellation and deletion are
// additionally guarded per-session inside the controller (coach or
// management only).
func SessionRoutes(router *gin.RouterGroup, st *store.Store, jwtSecret string) {
	repo := NewSessionRepository(st)
	controller := NewSessionController(repo)

	authed := router.Group("/")
	authed.Use(mw.AuthMiddleware(jwtSecret, st))
	{
		authed.GET("/sessions", controller.ListSessions)
		authed.GET("/sessions/:session_id", controller.GetSession)

		writers := authed.Group("/")
		writers.Use(mw.RequireRoles(common.RoleCoach, common.RoleOwner, common.RoleAdmin, common.RoleCoordinator))
		{
			writers.POST("/sessions", controller.CreateSession)
			writers.POST("/sessions/:session_id/cancel", controller.CancelSession)
			writers.DELETE("/sessions/:session_id", controller.DeleteSession)
		}
	}
}
