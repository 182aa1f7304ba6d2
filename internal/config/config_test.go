package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() unexpected error = %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.GetServerAddr() != ":8080" {
		t.Errorf("GetServerAddr() = %q, want %q", cfg.GetServerAddr(), ":8080")
	}
	if cfg.Geography.MunicipalitiesDataset != "georef-spain-municipio" {
		t.Errorf("Geography.MunicipalitiesDataset = %q", cfg.Geography.MunicipalitiesDataset)
	}
	if cfg.Weather.Days != 3 {
		t.Errorf("Weather.Days = %d, want 3", cfg.Weather.Days)
	}
	if cfg.Weather.Lang != "es" {
		t.Errorf("Weather.Lang = %q, want %q", cfg.Weather.Lang, "es")
	}
	if cfg.Upstream.Timeout != 30*time.Second {
		t.Errorf("Upstream.Timeout = %v, want 30s", cfg.Upstream.Timeout)
	}
	if cfg.Events.Enabled {
		t.Error("Events.Enabled = true, want false")
	}
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	content := []byte(`
server:
  port: 9090
weather:
  apiKey: from-file
  days: 2
upstream:
  timeout: 5s
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	t.Setenv("ESPANA_CLIMA_WEATHER_APIKEY", "from-env")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() unexpected error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Weather.APIKey != "from-env" {
		t.Errorf("Weather.APIKey = %q, want env override", cfg.Weather.APIKey)
	}
	if cfg.Weather.Days != 2 {
		t.Errorf("Weather.Days = %d, want 2", cfg.Weather.Days)
	}
	if cfg.Upstream.Timeout != 5*time.Second {
		t.Errorf("Upstream.Timeout = %v, want 5s", cfg.Upstream.Timeout)
	}
}

func TestNewLogger_Level(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			cfg := &Config{Log: LogConfig{Level: tt.level, Format: "json"}}
			logger := cfg.NewLogger()
			if !logger.Enabled(t.Context(), tt.want) {
				t.Errorf("logger not enabled at %v", tt.want)
			}
			if tt.want > slog.LevelDebug && logger.Enabled(t.Context(), tt.want-4) {
				t.Errorf("logger enabled below %v", tt.want)
			}
		})
	}
}
