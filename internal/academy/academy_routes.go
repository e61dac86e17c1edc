package academy

import (
	"github.com/gin-gonic/gin"

	"github.com/sahilparmar-7/ams/config"
	mw "github.com/sahilparmar-7/ams/internal/middleware"
	"github.com/sahilparmar-7/ams/internal/store"
)

// AcademyRoutes mounts the academy profile surface. Reads are open to any
// authenticated member; writes and uploads are management-only.
func AcademyRoutes(router *gin.RouterGroup, st *store.Store, appConfig *config.Config) {
	repo := NewAcademyRepository(st)

	storage, err := NewStorage(appConfig)
	if err != nil {
		// Boot continues; upload endpoints answer 503 until storage is set.
		config.Logger.Warn("object storage unavailable: " + err.Error())
	}
	controller := NewAcademyController(repo, storage)

	authed := router.Group("/")
	authed.Use(mw.AuthMiddleware(appConfig.JWT.AccessTokenSecret, st))
	{
		authed.GET("/academy", controller.GetProfile)
		authed.GET("/academy/about", controller.GetAbout)
		authed.GET("/academy/achievements", controller.ListAchievements)

		managed := authed.Group("/")
		managed.Use(mw.RequireManagement())
		{
			managed.PUT("/academy", controller.UpdateProfile)
			managed.PUT("/academy/about", controller.UpdateAbout)
			managed.POST("/academy/achievements", controller.CreateAchievement)
			managed.DELETE("/academy/achievements/:achievement_id", controller.DeleteAchievement)
			managed.POST("/academy/collaterals", controller.UploadCollateral)
		}
	}
}
