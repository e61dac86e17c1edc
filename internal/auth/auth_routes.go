package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/sahilparmar-7/ams/config"
	mw "github.com/sahilparmar-7/ams/internal/middleware"
	"github.com/sahilparmar-7/ams/internal/store"
	"github.com/sahilparmar-7/ams/internal/user"
)

// AuthRoutes mounts signup/login/refresh/logout under the given group.
func AuthRoutes(router *gin.RouterGroup, st *store.Store, appConfig *config.Config) {
	repo := NewAuthRepository(st)
	userRepo := user.NewUserRepository(st)
	controller := NewAuthController(repo, userRepo, appConfig)

	router.POST("/signup", controller.Signup)
	router.POST("/login", controller.Login)
	router.POST("/refresh", controller.Refresh)

	authed := router.Group("/")
	authed.Use(mw.AuthMiddleware(appConfig.JWT.AccessTokenSecret, st))
	{
		authed.POST("/logout", controller.Logout)
	}
}
