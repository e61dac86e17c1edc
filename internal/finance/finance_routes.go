package finance

import (
	"github.com/gin-gonic/gin"

	"github.com/sahilparmar-7/ams/config"
	mw "github.com/sahilparmar-7/ams/internal/middleware"
	"github.com/sahilparmar-7/ams/internal/store"
)

// FinanceRoutes mounts the ledger surface. All of it is management-only.
func FinanceRoutes(router *gin.RouterGroup, st *store.Store, appConfig *config.Config) {
	repo := NewFinanceRepository(st)
	rates := NewRateProvider(appConfig.Rates.BaseURL, config.Logger)
	controller := NewFinanceController(repo, rates)

	managed := router.Group("/")
	managed.Use(mw.AuthMiddleware(appConfig.JWT.AccessTokenSecret, st))
	managed.Use(mw.RequireManagement())
	{
		managed.POST("/finances", controller.CreateRecord)
		managed.GET("/finances", controller.ListRecords)
		managed.GET("/finances/summary", controller.GetSummary)
		managed.DELETE("/finances/:transaction_id", controller.DeleteRecord)
	}
}
