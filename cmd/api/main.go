package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"kitji-studios-backend/config"
	_ "kitji-studios-backend/docs" // Important for Swagger
	v1 "kitji-studios-backend/internal/delivery/http/v1"
	"kitji-studios-backend/internal/domain"
	"kitji-studios-backend/internal/repository/memory"
	"kitji-studios-backend/internal/repository/postgres"
	"kitji-studios-backend/internal/usecase"
	"kitji-studios-backend/pkg/database"
	"kitji-studios-backend/pkg/email"
	"kitji-studios-backend/pkg/logger"
	"kitji-studios-backend/pkg/redis"
	"kitji-studios-backend/pkg/validation"
)

// @title           Kitji Studios Contact API
// @version         1.0
// @description     Contact submission backend for the Kitji Studios website.
// @host            localhost:8080
// @BasePath        /api
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting contact submission backend", "port", cfg.Port)

	// 3. Setup Submission Store
	var contactRepo domain.ContactRepository
	if cfg.DBUrl != "" {
		dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
		if err != nil {
			logger.Log.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer dbPool.Close()
		contactRepo = postgres.NewContactRepository(dbPool)
	} else {
		logger.Log.Warn("DATABASE_URL not set - submissions are stored in memory and will not survive restarts")
		contactRepo = memory.NewContactRepository()
	}

	// 4. Setup Redis (rate-limit backend, optional)
	if err := redis.Initialize(redis.Config{URL: cfg.UpstashRedisURL, Password: cfg.UpstashRedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable - rate limiting falls back to in-memory", "error", err)
	}
	defer redis.Close()

	// 5. Setup Email Service
	emailService := email.NewService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not configured - submissions will be stored without notifications")
	}

	// 6. Setup UseCase
	validate := validator.New()
	validation.RegisterValidators(validate)
	contactUC := usecase.NewContactUsecase(contactRepo, emailService, validate)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		Config:    cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
