package export

import (
	"github.com/gin-gonic/gin"

	"github.com/sahilparmar-7/ams/config"
	mw "github.com/sahilparmar-7/ams/internal/middleware"
	"github.com/sahilparmar-7/ams/internal/store"
)

// ExportRoutes mounts the database export surface under /db/export. Every
// endpoint requires authentication; the academy scope check lives in the
// controller.
func ExportRoutes(router *gin.RouterGroup, st *store.Store, jwtSecret string) {
	controller := NewExportController(st, config.Logger)

	exports := router.Group("/db/export")
	exports.Use(mw.AuthMiddleware(jwtSecret, st))
	{
		exports.GET("", controller.Export)
		exports.GET("/sessions-csv", controller.SessionsCSV)
		exports.GET("/csv", controller.CollectionCSV)
		exports.GET("/xlsx", controller.Workbook)
	}
}
