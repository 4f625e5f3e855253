package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/cors"

	"github.com/amirhossein-jamali/bank-account-service/internal/domain/port/core"
	accountUseCase "github.com/amirhossein-jamali/bank-account-service/internal/domain/usecase/account"
	"github.com/amirhossein-jamali/bank-account-service/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/bank-account-service/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/bank-account-service/internal/infrastructure/adapter/auth"
	"github.com/amirhossein-jamali/bank-account-service/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/bank-account-service/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/bank-account-service/internal/infrastructure/adapter/ratelimit"
	timeProvider "github.com/amirhossein-jamali/bank-account-service/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/bank-account-service/internal/infrastructure/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}
	warnProductionSettings(cfg)

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger, err := logger.NewZapLogger(logger.Options{
		Format:     cfg.Logger.Format,
		Output:     cfg.Logger.Output,
		Level:      core.ParseLogLevel(cfg.Logger.Level),
		CallerInfo: cfg.Logger.CallerInfo,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = appLogger.Flush() }()

	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database and create the accounts table
	dbManager := database.NewManager(database.FromAppConfig(cfg), appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer dbManager.Close()

	migrateCtx, cancelMigrate := context.WithTimeout(context.Background(), time.Minute)
	err = dbManager.Migrate(migrateCtx)
	cancelMigrate()
	if err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	limiter, closeLimiter := newAttemptLimiter(cfg, appLogger)
	defer closeLimiter()

	// Initialize use cases
	accounts := accountUseCase.NewAccountUseCase(
		dbManager.CreateUnitOfWork(),
		limiter,
		tp,
		appLogger,
		accountUseCase.Config{
			PINHashCost:       cfg.Security.PINHashCost,
			AccountNoAttempts: cfg.Account.AccountNoAttempts,
		},
	)

	tokens := auth.NewTokenManager(cfg.Admin.JWTSecret, cfg.Admin.Issuer, cfg.Admin.TokenTTL, tp)
	authenticator := auth.NewAdminAuthenticator(cfg.Admin.Username, cfg.Admin.PasswordHash, tokens, appLogger)

	// Initialize Gin router
	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, tp)
	routes.SetupRoutes(router, routes.Handlers{
		Account: handler.NewAccountHandler(accounts, appLogger),
		Admin:   handler.NewAdminHandler(authenticator, accounts, appLogger),
		Health:  handler.NewHealthHandler(dbManager, appLogger),
	}, authenticator)

	corsHandler := cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID", "Content-Disposition"},
		MaxAge:         300,
	})

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           corsHandler(router),
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":   server.Addr,
			"env":    cfg.Environment,
			"driver": cfg.Database.Driver,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
	case err := <-serverErr:
		appLogger.Error("Failed to start server", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// newAttemptLimiter connects the redis-backed PIN lockout, or disables it when no URL is configured
func newAttemptLimiter(cfg *config.Config, appLogger core.Logger) (core.AttemptLimiter, func()) {
	if cfg.Redis.URL == "" || cfg.Security.MaxPINAttempts <= 0 {
		appLogger.Warn("PIN attempt limiting disabled", map[string]any{
			"redis_configured": cfg.Redis.URL != "",
		})
		return ratelimit.NoopLimiter{}, func() {}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := ratelimit.NewRedisClient(ctx, cfg.Redis.URL)
	if err != nil {
		appLogger.Error("Failed to connect to redis", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	appLogger.Info("PIN attempt limiting enabled", map[string]any{
		"max_attempts":   cfg.Security.MaxPINAttempts,
		"window_minutes": cfg.Security.LockoutWindow.Minutes(),
	})

	limiter := ratelimit.NewRedisAttemptLimiter(client, cfg.Redis.KeyPrefix, cfg.Security.MaxPINAttempts, cfg.Security.LockoutWindow)
	return limiter, func() { _ = client.Close() }
}

// warnProductionSettings logs settings that are accepted but unsafe in production
func warnProductionSettings(cfg *config.Config) {
	if cfg.Environment != config.Production {
		return
	}

	var warnings []string

	sslMode := strings.ToLower(cfg.Database.SSLMode)
	if strings.EqualFold(cfg.Database.Driver, database.DriverPostgres) &&
		sslMode != "require" && sslMode != "verify-ca" && sslMode != "verify-full" {
		warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
	}
	if cfg.Redis.URL == "" {
		warnings = append(warnings, "redis.url is empty, so PIN attempts are not limited")
	}
	for _, origin := range cfg.CORS.AllowedOrigins {
		if origin == "*" {
			warnings = append(warnings, "cors.allowedOrigins allows every origin")
			break
		}
	}
	if cfg.Server.ReadTimeout < 5*time.Second {
		warnings = append(warnings, "server.readTimeout is too low for production")
	}

	if len(warnings) > 0 {
		log.Printf("Warning: potential security issues in production configuration: %v", warnings)
	}
}
