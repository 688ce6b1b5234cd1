package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"petnutricare/internal/config"
	"petnutricare/internal/handler"
	"petnutricare/internal/middleware"
	"petnutricare/internal/repository"
	"petnutricare/internal/service"
	"petnutricare/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// Load .env file
	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found, relying on environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	jwtSecret := cfg.JWTSecretKey
	if jwtSecret == "" {
		// Sessions only live for the process lifetime, so an ephemeral
		// secret is workable; set JWT_SECRET_KEY in real deployments.
		buf := make([]byte, 32)
		if _, err := rand.Read(buf); err != nil {
			logger.Error("failed to generate session secret", "error", err)
			os.Exit(1)
		}
		jwtSecret = hex.EncodeToString(buf)
		logger.Warn("JWT_SECRET_KEY not set, using an ephemeral secret")
	}

	// --- Credential stores ---
	// The database is optional: when it is unconfigured or unreachable the
	// server starts degraded and serves everything from the in-memory store.
	var primary repository.UserRepository
	if cfg.DatabaseURL != "" {
		pool, err := config.ConnectDB(context.Background(), cfg.DatabaseURL)
		if err != nil {
			logger.Warn("database unreachable, starting with in-memory store only", "error", err)
		} else if err := config.AutoMigrate(context.Background(), pool); err != nil {
			logger.Warn("migration failed, starting with in-memory store only", "error", err)
			pool.Close()
		} else {
			defer pool.Close()
			primary = repository.NewPostgresUserRepository(pool)
			logger.Info("connected to PostgreSQL")
		}
	} else {
		logger.Info("DATABASE_URL not set, using in-memory store only")
	}

	userRepo := repository.NewFallbackUserRepository(primary, repository.NewMemoryUserRepository(), logger)

	// --- Sessions and services ---
	sessions := session.NewRegistry(jwtSecret, cfg.JWTExpirationHours)
	authService := service.NewAuthService(userRepo, sessions, cfg.InitialAdminEmail, logger)
	animalService := service.NewAnimalService()
	notificationService := service.NewNotificationService()

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService, logger)
	animalHandler := handler.NewAnimalHandler(animalService)
	notificationHandler := handler.NewNotificationHandler(notificationService)
	healthHandler := handler.NewHealthHandler(cfg.Env)

	// --- Setup Gin Router ---
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	// CORS restricted to the frontend origin
	router.Use(middleware.CORSMiddleware(cfg.FrontendURL))

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Route not found"})
	})

	// --- Initialize Middlewares ---
	sessionMW := middleware.SessionAuthMiddleware(authService)
	adminMW := middleware.AdminMiddleware()

	// --- Register Routes ---
	apiGroup := router.Group("/api")
	authHandler.RegisterAuthRoutes(apiGroup, sessionMW, adminMW)
	animalHandler.RegisterAnimalRoutes(apiGroup)
	notificationHandler.RegisterNotificationRoutes(apiGroup, sessionMW)

	router.GET("/health", healthHandler.Health)
	apiGroup.GET("/health", healthHandler.Health)

	// --- Start Server ---
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info("server starting", "port", cfg.Port, "environment", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server exiting")
}
