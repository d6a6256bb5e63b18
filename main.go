package main

import (
	"log"
	"time"

	"nectar-house-api/config"
	routes "nectar-house-api/internal/app/http"
	"nectar-house-api/internal/app/http/middleware"
	"nectar-house-api/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()
	store.Init()

	r := gin.New()
	r.Use(gin.Logger(), middleware.Recovery())

	// CORS middleware must run before any route handler
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r)

	log.Printf("Nectar House API listening on port %s", config.PORT)
	r.Run(":" + config.PORT)
}
