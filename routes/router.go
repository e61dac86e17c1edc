package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/sahilparmar-7/ams/config"
	"github.com/sahilparmar-7/ams/internal/academy"
	"github.com/sahilparmar-7/ams/internal/attendance"
	"github.com/sahilparmar-7/ams/internal/auth"
	"github.com/sahilparmar-7/ams/internal/batch"
	"github.com/sahilparmar-7/ams/internal/export"
	"github.com/sahilparmar-7/ams/internal/finance"
	"github.com/sahilparmar-7/ams/internal/player"
	"github.com/sahilparmar-7/ams/internal/session"
	"github.com/sahilparmar-7/ams/internal/store"
	"github.com/sahilparmar-7/ams/internal/user"
)

// SetupRoutes builds the gin engine and mounts every feature surface under
// /api.
func SetupRoutes(st *store.Store, appConfig *config.Config) *gin.Engine {
	if appConfig.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{appConfig.App.FrontendURL}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", "X-Requested-With")
	r.Use(cors.New(corsConfig))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"service": "academy-management-system", "status": "ok"})
	})

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	jwtSecret := appConfig.JWT.AccessTokenSecret

	auth.AuthRoutes(api.Group("/auth"), st, appConfig)
	user.UserRoutes(api, st, jwtSecret)
	player.PlayerRoutes(api, st, jwtSecret)
	batch.BatchRoutes(api, st, jwtSecret)
	session.SessionRoutes(api, st, jwtSecret)
	attendance.AttendanceRoutes(api, st, jwtSecret)
	finance.FinanceRoutes(api, st, appConfig)
	academy.AcademyRoutes(api, st, appConfig)
	export.ExportRoutes(api, st, jwtSecret)

	return r
}
