package main

import (
	"context"
	"log"

	"github.com/emmanuelronoh/backend/internal/bootstrap"
	"github.com/emmanuelronoh/backend/internal/config"
	"github.com/emmanuelronoh/backend/internal/server"
	"github.com/emmanuelronoh/backend/internal/tracer"
	"github.com/emmanuelronoh/backend/pkg/database"
)

func main() {
	// 1. Initialize tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 2. Load configuration
	cfg := config.Load()

	// 3. Initialize database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 4. Bootstrap dependencies
	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.Logger.Sync()

	// 5. Start the editor-content history consumer
	go func() {
		log.Println("Background: starting history consumer...")
		if err := container.HistoryService.Run(context.Background()); err != nil {
			log.Printf("Background history consumer error: %v", err)
		}
	}()

	// 6. Run server
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
