package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/code-forcer/reitsbackend/db"
	"github.com/code-forcer/reitsbackend/internal/handler"
	"github.com/code-forcer/reitsbackend/internal/repository"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	err := db.Connect()
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	reitRepo := repository.NewREITRepository(db.DB)
	reitHandler := handler.NewREITHandler(reitRepo)

	newsRepo := repository.NewNewsRepository(db.DB)
	newsHandler := handler.NewNewsHandler(newsRepo)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/api/reits", reitHandler.GetREITs)
	r.GET("/api/reits/highest-yield", reitHandler.GetHighestYield)
	r.GET("/api/reits/largest", reitHandler.GetLargest)
	r.GET("/api/reits/:ticker", reitHandler.GetREIT)
	r.GET("/api/news", newsHandler.GetNews)
	r.GET("/api/health", reitHandler.GetHealth)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5001"
	}

	err = r.Run(":" + port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
