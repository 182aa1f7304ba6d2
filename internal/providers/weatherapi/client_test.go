package weatherapi

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"espana-clima/internal/types"
)

const sampleForecast = `{
	"location": {"name": "Madrid", "region": "Madrid", "country": "España", "lat": 40.4, "lon": -3.68, "tz_id": "Europe/Madrid", "localtime": "2025-03-01 12:45"},
	"current": {"last_updated": "2025-03-01 12:30", "temp_c": 17.2, "condition": {"text": "Soleado", "icon": "//cdn.weatherapi.com/weather/64x64/day/113.png", "code": 1000}, "wind_kph": 11.2, "precip_mm": 0, "humidity": 52},
	"forecast": {"forecastday": [
		{"date": "2025-03-01", "day": {"maxtemp_c": 19, "mintemp_c": 6}, "hour": [{"time": "2025-03-01 00:00", "temp_c": 8.1, "chance_of_rain": 0}]}
	]}
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(Options{
		BaseURL: server.URL,
		Host:    "weatherapi-com.p.rapidapi.com",
		APIKey:  "test-key",
		Timeout: 5 * time.Second,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestClient_GetForecast(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/forecast.json" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		if got := q.Get("q"); got != "40.4168,-3.7038" {
			t.Errorf("q = %q", got)
		}
		if got := q.Get("days"); got != "3" {
			t.Errorf("days = %q", got)
		}
		if got := q.Get("lang"); got != "es" {
			t.Errorf("lang = %q", got)
		}
		if got := r.Header.Get("X-RapidAPI-Key"); got != "test-key" {
			t.Errorf("X-RapidAPI-Key = %q", got)
		}
		if got := r.Header.Get("X-RapidAPI-Host"); got != "weatherapi-com.p.rapidapi.com" {
			t.Errorf("X-RapidAPI-Host = %q", got)
		}
		_, _ = io.WriteString(w, sampleForecast)
	})

	resp, err := client.GetForecast(context.Background(), "40.4168,-3.7038")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Current == nil || resp.Current.TempC != 17.2 {
		t.Errorf("unexpected current block %+v", resp.Current)
	}
	if resp.Forecast == nil || len(resp.Forecast.Forecastday) != 1 {
		t.Fatalf("unexpected forecast block %+v", resp.Forecast)
	}
	if got := resp.Forecast.Forecastday[0].Hour[0].Time; got != "2025-03-01 00:00" {
		t.Errorf("hour time = %q", got)
	}
	if resp.Location.TzID != "Europe/Madrid" {
		t.Errorf("tz_id = %q", resp.Location.TzID)
	}
}

func TestClient_GetForecast_MissingBlocks(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"location": {"name": "Madrid"}, "current": {"temp_c": 10}}`)
	})

	resp, err := client.GetForecast(context.Background(), "40.4,-3.7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Current == nil {
		t.Error("expected current block")
	}
	if resp.Forecast != nil {
		t.Errorf("expected nil forecast, got %+v", resp.Forecast)
	}
}

func TestClient_GetForecast_Errors(t *testing.T) {
	tests := []struct {
		name        string
		handler     http.HandlerFunc
		target      error
		errContains string
	}{
		{
			name: "forbidden",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusForbidden)
				_, _ = io.WriteString(w, strings.Repeat("x", 1000))
			},
			target:      types.ErrUpstreamStatus,
			errContains: "status 403",
		},
		{
			name: "not json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, "<html>rate limited</html>")
			},
			target:      types.ErrDecode,
			errContains: "failed to decode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, tt.handler)
			_, err := client.GetForecast(context.Background(), "40.4,-3.7")
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, tt.target) {
				t.Errorf("expected %v in chain, got %v", tt.target, err)
			}
			if !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("expected error containing %q, got %q", tt.errContains, err.Error())
			}
		})
	}
}

func TestClient_GetForecast_StatusCodeIsExposed(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := client.GetForecast(context.Background(), "40.4,-3.7")
	var upstreamErr *types.UpstreamError
	if !errors.As(err, &upstreamErr) {
		t.Fatalf("expected *types.UpstreamError, got %v", err)
	}
	if upstreamErr.StatusCode != http.StatusTooManyRequests {
		t.Errorf("status code = %d", upstreamErr.StatusCode)
	}
}

func TestClient_GetForecast_ContextCanceled(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, sampleForecast)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.GetForecast(ctx, "40.4,-3.7")
	if !errors.Is(err, types.ErrTransport) {
		t.Fatalf("expected transport error, got %v", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled in chain, got %v", err)
	}
}
