package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "jobboard-backend/internal/api/http"
	"jobboard-backend/internal/config"
	"jobboard-backend/internal/event"
	"jobboard-backend/internal/jobs"
	"jobboard-backend/internal/logger"
	"jobboard-backend/internal/notify"
	"jobboard-backend/internal/realtime"
	"jobboard-backend/internal/repository/postgres"
	"jobboard-backend/internal/scheduler"
	"jobboard-backend/internal/security"
	"jobboard-backend/internal/service"

	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Job Board Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Initialize realtime hub and event bus
	hub := realtime.NewHub()
	bus := event.NewBus()
	bus.Subscribe(notify.NewHandler(store.NotificationRepository, hub))

	// Initialize Services
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	jobSvc := service.NewJobService(store.JobRepository, store.CompanyRepository)
	appSvc := service.NewApplicationService(
		store.ApplicationRepository,
		store.JobRepository,
		store.UserRepository,
		bus,
	)
	noteSvc := service.NewNotificationService(store.NotificationRepository)

	// Initialize HTTP handlers
	handlers := httpapi.Handlers{
		Auth:          httpapi.NewAuthHandler(authSvc),
		Jobs:          httpapi.NewJobHandler(jobSvc),
		Applications:  httpapi.NewApplicationHandler(appSvc),
		Notifications: httpapi.NewNotificationHandler(noteSvc),
		WS:            httpapi.NewWSHandler(hub, cfg.Realtime),
	}
	router := httpapi.NewRouter(handlers, tokenManager)

	// Initialize and start the scheduler
	jobRunner := jobs.NewJobRunner(store, cfg)
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  90 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}
	logger.Info("Server exited")
}
