// Package main is the entry point for the award pricing engine service.
//
//	@title						Award Pricing Engine API
//	@version					1.0.0
//	@description				A frequent flyer award pricing service that resolves airline partnerships, selects award charts, and prices itineraries across loyalty programs.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/ffp-planner/award-pricing-engine/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
//
//	@externalDocs.description	Technical Documentation
//	@externalDocs.url			https://github.com/ffp-planner/award-pricing-engine/blob/main/docs/architecture.md
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/ffp-planner/award-pricing-engine/docs"

	// Application layers
	awardhttp "github.com/ffp-planner/award-pricing-engine/internal/adapter/http"
	"github.com/ffp-planner/award-pricing-engine/internal/adapter/http/middleware"
	"github.com/ffp-planner/award-pricing-engine/internal/config"
	"github.com/ffp-planner/award-pricing-engine/internal/infrastructure/logger"
	"github.com/ffp-planner/award-pricing-engine/internal/infrastructure/retry"
	"github.com/ffp-planner/award-pricing-engine/internal/refdata"
	"github.com/ffp-planner/award-pricing-engine/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger with config
	appLog := setupLogger(cfg)

	appLog.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("data_dir", cfg.Data.Dir).
		Msg("Configuration loaded")

	// Load the reference data corpus, retrying briefly in case the data
	// directory is still being mounted. A failed initial load is not fatal:
	// the service starts and answers 503 until a reload succeeds.
	store := refdata.NewStore(cfg.Data.Dir, appLog.Logger)
	if err := retry.Do(context.Background(), store.Reload, retry.DefaultConfig); err != nil {
		appLog.Warn().Err(err).Msg("Initial reference data load failed, starting without data")
	}

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Setup middleware (request ID, request logging, panic recovery)
	middleware.Setup(e, appLog.Logger)

	// Setup routes
	setupRoutes(e, cfg, store, appLog)

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		appLog.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLog.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e, appLog)
}

// setupLogger builds the application logger from config and installs it as
// the global logger.
func setupLogger(cfg *config.Config) *logger.Logger {
	logCfg := logger.DefaultConfig()
	logCfg.Level = cfg.Logging.Level
	logCfg.Format = cfg.Logging.Format

	appLog := logger.New(logCfg)
	logger.SetGlobal(appLog)
	return appLog
}

// setupRoutes wires the use case and registers the HTTP routes.
func setupRoutes(e *echo.Echo, cfg *config.Config, store *refdata.Store, appLog *logger.Logger) {
	// The store serves both as the bundle provider and the reload target.
	awardUseCase := usecase.NewAwardSearchUseCase(store, store, nil, appLog.Logger)

	handler := awardhttp.NewAwardHandler(awardUseCase)

	// Bound every award computation by the search timeout. Sub-range
	// evaluation on long itineraries is the only potentially slow path.
	awardhttp.RegisterRoutesWithMiddleware(e, handler,
		echomw.ContextTimeout(cfg.Timeouts.Search))

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, appLog *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	appLog.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		appLog.Error().Err(err).Msg("Error during server shutdown")
	}

	appLog.Info().Msg("Server stopped")
}
