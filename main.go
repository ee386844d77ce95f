package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"quickdeliver/config"
	"quickdeliver/core"
	"quickdeliver/db"
	"quickdeliver/deliveries"
	"quickdeliver/deliveries/models"
	"quickdeliver/workers/tracking"
)

func main() {
	cfg := config.LoadConfig()

	logger, err := core.NewLogger(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	gdb, err := db.Open(cfg.Database)
	if err != nil {
		log.Fatal(err)
	}

	if err := models.EnsureSchema(gdb); err != nil {
		log.Fatal(err)
	}

	orchestrator := core.NewOrchestrator([]core.Worker{
		tracking.NewWorker(logger, gdb),
	})

	c, err := orchestrator.Start(context.Background())
	if err != nil {
		log.Fatal(err)
	}
	defer c.Stop()

	app := gin.Default()
	deliveries.SetupRoutes(app, gdb, logger, cfg)

	if err := app.Run(cfg.Addr()); err != nil {
		log.Fatal(err)
	}
}
