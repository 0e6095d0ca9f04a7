package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/softpro2020/foodland/configs"
	"github.com/softpro2020/foodland/middlewares"
	"github.com/softpro2020/foodland/routes"
)

func main() {
	log.SetFormatter(&log.JSONFormatter{})

	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate
	if err := configs.SetupDatabase(); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	if err := configs.SeedAdmin(cfg); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedGeography(); err != nil {
		log.Fatalf("seed geography failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.WithField("addr", addr).Info("server running")
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
