package main

import (
	"context"
	"log"
	"time"

	"github.com/sahilparmar-7/ams/config"
	_ "github.com/sahilparmar-7/ams/docs"
	"github.com/sahilparmar-7/ams/internal/session"
	"github.com/sahilparmar-7/ams/internal/store"
	"github.com/sahilparmar-7/ams/routes"
)

// @title Academy Management System API
// @version 1.0
// @description REST backend for sports-academy management.
// @host localhost:8080
// @BasePath /api
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()
	logger := config.Logger
	defer logger.Sync()

	st := store.New(config.DB, logger)

	indexCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	st.EnsureIndexes(indexCtx)
	cancel()

	materializer := session.NewMaterializer(session.NewSessionRepository(st), logger)
	sched, err := materializer.Start()
	if err != nil {
		log.Fatalf("Failed to start session materializer: %v", err)
	}
	defer sched.Shutdown()

	r := routes.SetupRoutes(st, cfg)

	log.Printf("Starting server on port %s in %s mode\n", cfg.App.Port, cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
