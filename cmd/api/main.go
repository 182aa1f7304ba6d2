package main

//go:generate go run github.com/swaggo/swag/cmd/swag@latest init -g main.go -o ../../docs --parseDependency --parseInternal

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"espana-clima/internal/config"
)

var configFile string

// @title España Clima API
// @version 1.0
// @description Geography and weather lookups for Spanish municipalities
// @BasePath /
func main() {
	rootCmd := &cobra.Command{
		Use:          "espana-clima",
		Short:        "Weather lookup for Spanish municipalities",
		Long:         "Serve the España Clima web app, or run its lookups from the command line",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file path")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(communitiesCmd())
	rootCmd.AddCommand(provincesCmd())
	rootCmd.AddCommand(municipalitiesCmd())
	rootCmd.AddCommand(weatherCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads configuration and builds the app the way every command needs it
func setup() (*App, *config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	logger := cfg.NewLogger()
	slog.SetDefault(logger) // Set as default logger for the application

	if cfg.Weather.APIKey == "" {
		logger.Warn("weather.apiKey is empty, weather lookups will be rejected upstream")
	}

	app, err := NewApp(cfg, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create app: %w", err)
	}
	return app, cfg, nil
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the web server",
		Long:  "Serve the browser frontend, the lookup endpoints and the Swagger UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, cfg, err := setup()
			if err != nil {
				return err
			}
			defer app.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			app.logger.Info("starting server", "addr", cfg.GetServerAddr())
			if err := app.Run(ctx, cfg.GetServerAddr()); err != nil {
				app.logger.Error("server failed", "error", err)
				return err
			}
			return nil
		},
	}
}

func communitiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "communities",
		Short: "List autonomous communities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(cmd, func(ctx context.Context, app *App) (int, any) {
				return app.lookupCommunities(ctx)
			})
		},
	}
}

func provincesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "provinces <community-code>",
		Short: "List the provinces of an autonomous community",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(cmd, func(ctx context.Context, app *App) (int, any) {
				return app.lookupProvinces(ctx, args[0])
			})
		},
	}
}

func municipalitiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "municipalities <province-code>",
		Short: "List the municipalities of a province",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(cmd, func(ctx context.Context, app *App) (int, any) {
				return app.lookupMunicipalities(ctx, args[0])
			})
		},
	}
}

func weatherCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "weather <lat,lon>",
		Short: "Get current conditions and forecast for a coordinate pair",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(cmd, func(ctx context.Context, app *App) (int, any) {
				return app.lookupWeather(ctx, args[0])
			})
		},
	}
}

// runLookup prints the same envelope the HTTP endpoint would return and
// fails the command when the lookup did.
func runLookup(cmd *cobra.Command, lookup func(ctx context.Context, app *App) (int, any)) error {
	app, _, err := setup()
	if err != nil {
		return err
	}
	defer app.Close()

	status, body := lookup(cmd.Context(), app)
	if err := writeEnvelope(cmd, body); err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("lookup failed with status %d", status)
	}
	return nil
}

func writeEnvelope(cmd *cobra.Command, body any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(body); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}
