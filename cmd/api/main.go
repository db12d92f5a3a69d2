package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/inkwell/inkwell-backend/internal/api"
	"github.com/inkwell/inkwell-backend/internal/auth"
	"github.com/inkwell/inkwell-backend/internal/config"
	"github.com/inkwell/inkwell-backend/internal/log"
	"github.com/inkwell/inkwell-backend/internal/media"
	"github.com/inkwell/inkwell-backend/internal/metrics"
	"github.com/inkwell/inkwell-backend/internal/repository"
	"github.com/inkwell/inkwell-backend/internal/service"
	"github.com/inkwell/inkwell-backend/internal/store"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Setup logger
	logger, err := log.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Infow("Starting Inkwell API server",
		"env", cfg.Env,
		"addr", cfg.HTTPAddr,
	)

	// Setup metrics
	metricsObj, metricsHandler, err := metrics.Setup("inkwell-api")
	if err != nil {
		logger.Fatalw("Failed to setup metrics", "error", err)
	}

	// Connect to Postgres
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	db, err := repository.Open(ctx, cfg.Database.PostgresDSN)
	if err != nil {
		logger.Fatalw("Failed to connect to database", "error", err)
	}
	defer db.Close()
	logger.Infow("Database connection established")

	// Refresh-token session store (Redis with in-memory fallback)
	sessions := store.NewSessions(cfg.Cache.RedisAddr, logger, metricsObj)
	defer sessions.Close()

	// Media storage for uploaded images
	mediaStore, err := media.NewFileStore(cfg.Media.RootDir)
	if err != nil {
		logger.Fatalw("Failed to setup media store", "error", err)
	}

	// Repositories
	userRepo := repository.NewUserRepo(db, logger)
	postRepo := repository.NewPostRepo(db, logger)
	promotionRepo := repository.NewPromotionRepo(db, logger)
	interactionRepo := repository.NewInteractionRepo(db, logger)
	notificationRepo := repository.NewNotificationRepo(db, logger)

	// Services
	tokens := auth.NewTokens(cfg.Auth.JWTSecret, cfg.Auth.AccessTTL, cfg.Auth.RefreshTTL)
	accountSvc := service.NewAccountService(userRepo, tokens, sessions, logger)
	contentSvc := service.NewContentService(postRepo, promotionRepo, logger)
	notificationSvc := service.NewNotificationService(notificationRepo, logger, metricsObj)
	interactionSvc := service.NewInteractionService(postRepo, interactionRepo, notificationSvc, logger)

	// Setup API handler and middleware
	handler := api.NewHandler(accountSvc, contentSvc, interactionSvc, notificationSvc, mediaStore, db, sessions, cfg, logger, metricsObj)
	middleware := api.NewMiddleware(logger, metricsObj, tokens, accountSvc)

	router := handler.Routes(middleware, cfg.Security.CORSAllowedOrigins, metricsHandler)
	logger.Infow("CORS configured", "allowed_origins", cfg.Security.CORSAllowedOrigins)

	// Setup HTTP server
	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in background
	serverErrors := make(chan error, 1)
	go func() {
		logger.Infow("API server starting", "addr", server.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	// Wait for interrupt signal
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		logger.Fatalw("Server startup failed", "error", err)
	case sig := <-shutdown:
		logger.Infow("Shutdown signal received", "signal", sig.String())

		// Give outstanding requests 30 seconds to complete
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Errorw("Graceful shutdown failed", "error", err)
			server.Close()
		}

		logger.Infow("Server stopped")
	}
}
