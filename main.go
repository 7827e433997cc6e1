package main

import (
	"fmt"

	"github.com/Nomet5/cake-app-sub001/configs"
	"github.com/Nomet5/cake-app-sub001/middlewares"
	"github.com/Nomet5/cake-app-sub001/pkg/logger"
	"github.com/Nomet5/cake-app-sub001/routes"
	"github.com/Nomet5/cake-app-sub001/ws"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	// DB
	db, err := configs.ConnectDB(cfg.DBSource)
	if err != nil {
		log.Fatalf("connect database failed: %v", err)
	}

	// migrate
	if err := configs.Migrate(db); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}

	if err := configs.SeedAdmin(db, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedLookups(db); err != nil {
		log.Fatalf("seed lookups failed: %v", err)
	}

	// live notification feed
	hub := ws.NewNotificationHub()
	go hub.Run()

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg, log, hub)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Infof("server running at %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
