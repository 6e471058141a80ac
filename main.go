package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/social-network/api-go/config"
	"github.com/social-network/api-go/middleware"
	"github.com/social-network/api-go/routes"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	if err := godotenv.Load(); err != nil {
		logger.Info(".env not found, using environment variables")
	}

	// Initialize database and redis
	db := config.InitDB()
	rdb := config.InitRedis()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))

	// Initialize routes
	routes.SetupRoutes(r, db, rdb)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logger.Sugar().Infof("Starting server on port %s", port)
	if err := r.Run(":" + port); err != nil {
		logger.Sugar().Fatalf("server run error: %v", err)
	}
}
