package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/fincontrol/fincontrol_backend/internal/adapters/memory"
	"github.com/fincontrol/fincontrol_backend/internal/core/services"
	"github.com/fincontrol/fincontrol_backend/internal/handlers"
	"github.com/fincontrol/fincontrol_backend/internal/metrics"
	"github.com/fincontrol/fincontrol_backend/internal/middleware"
	"github.com/fincontrol/fincontrol_backend/internal/platform/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title FinControl Backend API
// @version 1.0
// @description Session and ledger store for the FinControl bookkeeping dashboard.

// @host localhost:8080
// @BasePath /
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// In-memory state: repositories plus seed accounts and sample data
	repos := memory.NewRepositoryProvider()
	verifier := services.NewCredentialVerifier(cfg.PasswordMode)
	if err := memory.Seed(context.Background(), repos, verifier, cfg.SeedSampleData); err != nil {
		logger.Error("Failed to seed initial data", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Seed data loaded", slog.Bool("sample_transactions", cfg.SeedSampleData))

	serviceContainer := services.NewServiceContainer(repos, verifier)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, metrics, CORS)
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		metrics.Middleware(),
		cors.New(cors.Config{
			AllowOrigins:     cfg.CORSAllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			AllowCredentials: true,
		}),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
