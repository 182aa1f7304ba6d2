package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"espana-clima/internal/config"
	"espana-clima/internal/events"
	"espana-clima/internal/geography"
	"espana-clima/internal/weather"

	_ "espana-clima/docs" // Ensure docs are imported
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 15 * time.Second
)

// App encapsulates application dependencies
type App struct {
	router           *gin.Engine
	logger           *slog.Logger
	geographyService geography.Service
	weatherService   weather.Service
	publisher        *events.Publisher
	cfg              *config.Config
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	publisher, err := events.NewPublisher(cfg.Events, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create events publisher: %w", err)
	}

	weatherSvc, err := weather.NewWeatherService(cfg, publisher, logger)
	if err != nil {
		publisher.Close()
		return nil, err
	}

	return NewAppWithServices(cfg, logger, geography.NewGeographyService(cfg, logger), weatherSvc, publisher)
}

// NewAppWithServices builds the router around existing services.
// publisher may be nil.
func NewAppWithServices(
	cfg *config.Config,
	logger *slog.Logger,
	geographyService geography.Service,
	weatherService weather.Service,
	publisher *events.Publisher,
) (*App, error) {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	router := gin.New()
	router.Use(gin.Recovery())

	app := &App{
		router:           router,
		logger:           logger,
		geographyService: geographyService,
		weatherService:   weatherService,
		publisher:        publisher,
		cfg:              cfg,
	}

	if err := app.registerRoutes(); err != nil {
		return nil, err
	}

	return app, nil
}

// Run serves HTTP on addr until ctx is done, then shuts down gracefully
func (app *App) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           app.router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		app.logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// Close releases the broker connection, if any
func (app *App) Close() {
	if app.publisher != nil {
		app.publisher.Close()
	}
}
