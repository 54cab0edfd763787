package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/jobfolio/jobhub/internal/config"
	"github.com/jobfolio/jobhub/internal/database"
	"github.com/jobfolio/jobhub/internal/handlers"
	"github.com/jobfolio/jobhub/internal/services"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	// 2. Database Connection
	db, err := database.Connect(cfg.DBPath)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	// 3. Initialize Core Services
	llmService := services.NewLLMService(cfg.GeminiAPIKey, cfg.GeminiModel)
	jobService := services.NewJobService(db)
	profileService := services.NewProfileService(db)

	// 4. Initialize Ingest Watcher
	// Imports any listings file dropped into WATCH_DIR (disabled if unset).
	watcher := services.NewIngestWatcher(db, jobService, cfg.WatchDir, cfg.WatchInterval)
	watcher.StartWatcher()

	// 5. Initialize Handlers
	jobHandler := handlers.NewJobHandler(jobService)
	profileHandler := handlers.NewProfileHandler(profileService)
	resumeHandler := handlers.NewResumeHandler(llmService, jobService, profileService)

	// 6. Setup Router & CORS
	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true // For development only
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// 7. Define Routes
	api := r.Group("/api/v1")
	{
		api.GET("/health", handlers.HealthCheck)

		// Job Routes
		api.POST("/jobs/import", jobHandler.ImportJobs)
		api.GET("/jobs", jobHandler.ListJobs)
		api.GET("/jobs/:id", jobHandler.GetJob)

		// Profile Routes
		api.PUT("/profiles", profileHandler.SaveProfile)
		api.GET("/profiles", profileHandler.ListProfiles)
		api.GET("/profiles/:name", profileHandler.GetProfile)

		// AI Generation Routes
		api.POST("/resumes", resumeHandler.CreateResume)
		api.POST("/cover-letters", resumeHandler.CreateCoverLetter)
	}

	log.Println("🚀 Server starting on port " + cfg.Port + "...")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed to start: ", err)
	}
}
