package player

import (
	"github.com/gin-gonic/gin"

	"github.com/sahilparmar-7/ams/internal/common"
	mw "github.com/sahilparmar-7/ams/internal/middleware"
	"github.com/sahilparmar-7/ams/internal/store"
)

// PlayerRoutes mounts player-data routes. Reads are open to any
// authenticated role; writes require coach or a management role.
func PlayerRoutes(router *gin.RouterGroup, st *store.Store, jwtSecret string) {
	repo := NewPlayerRepository(st)
	controller := NewPlayerController(repo)

	authed := router.Group("/")
	authed.Use(mw.AuthMiddleware(jwtSecret, st))
	{
		authed.GET("/players", controller.ListPlayers)
		authed.GET("/players/:player_id", controller.GetPlayer)

		writers := authed.Group("/")
		writers.Use(mw.RequireRoles(common.RoleCoach, common.RoleOwner, common.RoleAdmin, common.RoleCoordinator))
		{
			writers.POST("/players", controller.CreatePlayer)
			writers.PUT("/players/:player_id/attributes", controller.UpdateAttributes)
			writers.POST("/players/:player_id/performance", controller.RecordPerformance)
			writers.DELETE("/players/:player_id", controller.DeletePlayer)
		}
	}
}
