//go:build integration

package weatherapi

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"
	"time"
)

func TestClient_GetForecast_Integration(t *testing.T) {
	apiKey := os.Getenv("ESPANA_CLIMA_WEATHER_APIKEY")
	if apiKey == "" {
		t.Skip("ESPANA_CLIMA_WEATHER_APIKEY not set")
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	client := NewClient(Options{APIKey: apiKey, Timeout: 30 * time.Second}, logger)

	// Puerta del Sol, Madrid
	q := "40.4168,-3.7038"
	t.Logf("Making API call to WeatherAPI.com for %s...", q)

	resp, err := client.GetForecast(context.Background(), q)
	if err != nil {
		t.Fatalf("Failed to get forecast: %v", err)
	}

	rawJSON, err := json.MarshalIndent(resp.Location, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal response: %v", err)
	}
	t.Logf("Location:\n%s", string(rawJSON))

	if resp.Current == nil {
		t.Fatal("Current block is missing")
	}
	if resp.Forecast == nil || len(resp.Forecast.Forecastday) != 3 {
		t.Fatalf("Expected 3 forecast days, got %+v", resp.Forecast)
	}
	for _, day := range resp.Forecast.Forecastday {
		t.Logf("  %s: %d hours, %s", day.Date, len(day.Hour), day.Day.Condition.Text)
		if len(day.Hour) != 24 {
			t.Errorf("Expected 24 hours for %s, got %d", day.Date, len(day.Hour))
		}
	}

	t.Log("✓ API call successful, response structure valid")
}
