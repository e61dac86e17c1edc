package user

import (
	"github.com/gin-gonic/gin"

	mw "github.com/sahilparmar-7/ams/internal/middleware"
	"github.com/sahilparmar-7/ams/internal/store"
)

// UserRoutes mounts the user management surface. Everything here requires
// authentication; status toggles and deletes additionally require a
// management role.
func UserRoutes(router *gin.RouterGroup, st *store.Store, jwtSecret string) {
	repo := NewUserRepository(st)
	controller := NewUserController(repo)

	authed := router.Group("/")
	authed.Use(mw.AuthMiddleware(jwtSecret, st))
	{
		authed.GET("/users", controller.ListUsers)
		authed.GET("/users/:user_id", controller.GetUser)

		managed := authed.Group("/")
		managed.Use(mw.RequireManagement())
		{
			managed.PATCH("/users/:user_id/status", controller.UpdateStatus)
			managed.DELETE("/users/:user_id", controller.DeleteUser)
		}
	}
}
