package main

import (
	"log"
	"time"

	"artcatalog/config"
	"artcatalog/database"
	routes "artcatalog/internal/app/http"
	"artcatalog/internal/domain/admins"
	"artcatalog/internal/logger"
	"artcatalog/internal/media"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadEnv()
	logger.Init()
	database.InitDB()

	if err := admins.EnsureAdmin(database.DB, config.ADMIN_EMAIL, config.ADMIN_PASSWORD); err != nil {
		log.Fatal("Failed to provision admin user:", err)
	}
	if err := media.Init(); err != nil {
		log.Fatal("Failed to init media client:", err)
	}

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r)

	logger.L.Infow("server starting", "port", config.PORT, "env", config.ENV)
	r.Run(":" + config.PORT)
}
