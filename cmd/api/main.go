package main

import (
	"log"
	"os"
	"strings"

	"evscheduled/internal/api/handlers"
	"evscheduled/internal/api/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	var allowedOrigins []string
	if raw := os.Getenv("CORS_ALLOWED_ORIGINS"); raw != "" {
		allowedOrigins = strings.Split(raw, ",")
	}

	router := gin.Default()
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS(allowedOrigins))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/healthz", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	solveHandler := handlers.NewSolveHandler()
	configHandler := handlers.NewConfigHandler()

	v1 := router.Group("/api/v1")
	{
		v1.POST("/solve", solveHandler.RunSolve)
		v1.POST("/solve/rank", solveHandler.RunRank)
		v1.POST("/solve/multi-day", solveHandler.RunMultiDay)
		v1.POST("/params/validate", configHandler.ValidateParams)
	}

	log.Printf("evscheduled API listening on :%s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
