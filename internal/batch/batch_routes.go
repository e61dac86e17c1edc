package batch

import (
	"github.com/gin-gonic/gin"

	"github.com/sahilparmar-7/ams/internal/common"
	mw "github.com/sahilparmar-7/ams/internal/middleware"
	"github.com/sahilparmar-7/ams/internal/store"
)

// BatchRoutes mounts batch routes. Creation is limited to coaches and
// management; update/delete are additionally guarded per-batch inside the
// controller (creator or management only).
func BatchRoutes(router *gin.RouterGroup, st *store.Store, jwtSecret string) {
	repo := NewBatchRepository(st)
	controller := NewBatchController(repo, st)

	authed := router.Group("/")
	authed.Use(mw.AuthMiddleware(jwtSecret, st))
	{
		authed.GET("/batches", controller.ListBatches)
		authed.GET("/batches/:batch_id", controller.GetBatch)

		writers := authed.Group("/")
		writers.Use(mw.RequireRoles(common.RoleCoach, common.RoleOwner, common.RoleAdmin, common.RoleCoordinator))
		{
			writers.POST("/batches", controller.CreateBatch)
			writers.PUT("/batches/:batch_id", controller.UpdateBatch)
			writers.DELETE("/batches/:batch_id", controller.DeleteBatch)
		}
	}
}
