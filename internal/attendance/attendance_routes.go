package attendance

import (
	"github.com/gin-gonic/gin"

	"github.com/sahilparmar-7/ams/internal/common"
	mw "github.com/sahilparmar-7/ams/internal/middleware"
	"github.com/sahilparmar-7/ams/internal/store"
)

// AttendanceRoutes mounts attendance routes. Marking requires coach or a
// management role; reads are open to any authenticated user of the academy.
func AttendanceRoutes(router *gin.RouterGroup, st *store.Store, jwtSecret string) {
	repo := NewAttendanceRepository(st)
	controller := NewAttendanceController(repo)

	authed := router.Group("/")
	authed.Use(mw.AuthMiddleware(jwtSecret, st))
	{
		authed.GET("/attendance", controller.List)
		authed.GET("/attendance/:user_id/stats", controller.GetStats)

		markers := authed.Group("/")
		markers.Use(mw.RequireRoles(common.RoleCoach, common.RoleOwner, common.RoleAdmin, common.RoleCoordinator))
		{
			markers.POST("/attendance", controller.Mark)
		}
	}
}
