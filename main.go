// main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"jobboard/config"
	"jobboard/internal/app"
	"jobboard/internal/cache"
	"jobboard/internal/database"
	"jobboard/internal/server"
	"jobboard/internal/services"
	"jobboard/internal/storage/postgres"
	"jobboard/internal/transport/dto"

	_ "jobboard/docs" // Import generated docs (created by swag init)

	"github.com/joho/godotenv"
)

// @title           Job Board API
// @version         1.0
// @description     Role-gated job board: applicants apply to jobs, recruiters post and manage them, a superadmin approves recruiter accounts.

// @contact.name   API Support
// @contact.email  support@example.com

// @host      localhost:8080
// @BasePath  /api
// @schemes   http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// --- Initialize Redis Client ---
	// The job-list cache degrades to direct reads when Redis is unavailable.
	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		log.Printf("WARN: Redis unavailable, job listings will not be cached: %v", err)
		redisClient = nil
	} else {
		defer redisClient.Close()
	}

	dbPool, err := database.NewConnectionPool(cfg.DB)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	if err := database.EnsureSchema(context.Background(), dbPool); err != nil {
		log.Fatalf("Failed to ensure database schema: %v", err)
	}

	// --- Wire storage, cache and services ---
	userRepo := postgres.NewUserRepo(dbPool)
	jobRepo := postgres.NewJobRepo(dbPool)
	applicationRepo := postgres.NewApplicationRepo(dbPool)
	statsRepo := postgres.NewStatsRepo(dbPool)

	jobListCache := cache.NewJobListCache(redisClient, cfg.Redis.JobListTTLDuration())

	application := &app.Application{
		Config:      cfg,
		DBPool:      dbPool,
		RedisClient: redisClient,
		Validator:   dto.NewValidator(),

		UserService:        services.NewUserService(userRepo),
		JobService:         services.NewJobService(jobRepo, applicationRepo, jobListCache),
		ApplicationService: services.NewApplicationService(applicationRepo, jobRepo, userRepo),
		StatsService:       services.NewStatsService(statsRepo),
	}

	srv := server.NewServer(application)

	// --- Graceful Shutdown Handling ---
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit // Block until a signal is received

	log.Println("Shutting down...")

	//Gin shutdowns on its own

	log.Println("Application gracefully stopped.")
}
