package weather

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"espana-clima/internal/config"
	"espana-clima/internal/events"
	"espana-clima/internal/providers/weatherapi"
	"espana-clima/internal/timezone"
	"espana-clima/internal/types"
)

// ParamCoords is the query parameter carrying "lat,lon"
const ParamCoords = "coords"

type ForecastProvider interface {
	// GetForecast fetches current conditions and forecast days for q
	GetForecast(ctx context.Context, q string) (*weatherapi.ForecastAPIResponse, error)
}

// LookupPublisher receives a summary of every successful lookup
type LookupPublisher interface {
	PublishLookup(lookup events.WeatherLookup)
}

type Service interface {
	GetWeather(ctx context.Context, coords string) (*Report, error)
}

type weatherService struct {
	forecastProvider ForecastProvider
	timezoneService  timezone.Service
	publisher        LookupPublisher
	now              func() time.Time
	logger           *slog.Logger
}

func NewWeatherService(cfg *config.Config, publisher LookupPublisher, logger *slog.Logger) (Service, error) {
	tzSvc, err := timezone.NewService()
	if err != nil {
		return nil, fmt.Errorf("failed to create timezone service: %w", err)
	}
	client := weatherapi.NewClient(weatherapi.Options{
		BaseURL: cfg.Weather.BaseURL,
		Host:    cfg.Weather.Host,
		APIKey:  cfg.Weather.APIKey,
		Days:    cfg.Weather.Days,
		Lang:    cfg.Weather.Lang,
		Timeout: cfg.Upstream.Timeout,
	}, logger)
	return NewWeatherServiceWithProvider(client, tzSvc, publisher, logger), nil
}

// NewWeatherServiceWithProvider wires custom collaborators, mainly for tests.
// timezoneService and publisher may be nil.
func NewWeatherServiceWithProvider(
	forecastProvider ForecastProvider,
	timezoneService timezone.Service,
	publisher LookupPublisher,
	logger *slog.Logger,
) Service {
	return &weatherService{
		forecastProvider: forecastProvider,
		timezoneService:  timezoneService,
		publisher:        publisher,
		now:              time.Now,
		logger:           logger.With("component", "weather-service"),
	}
}

// GetWeather looks up the weather at coords, a "lat,lon" string. Whitespace
// is stripped before the upstream call; no other validation happens here.
func (s *weatherService) GetWeather(ctx context.Context, coords string) (*Report, error) {
	coords = types.NormalizeCoords(coords)
	if coords == "" {
		return nil, &types.MissingParameterError{Param: ParamCoords}
	}

	resp, err := s.forecastProvider.GetForecast(ctx, coords)
	if err != nil {
		return nil, fmt.Errorf("failed to get forecast for %s: %w", coords, err)
	}

	if resp.Current == nil || resp.Forecast == nil || len(resp.Forecast.Forecastday) == 0 {
		s.logger.Error("weather response is incomplete",
			"coords", coords,
			"has_current", resp.Current != nil,
			"has_forecast", resp.Forecast != nil && len(resp.Forecast.Forecastday) > 0,
		)
		return nil, fmt.Errorf("weather response for %s lacks current or forecast data: %w", coords, types.ErrEmptyResult)
	}

	report := &Report{
		Current:  toSnapshot(resp.Current),
		Forecast: toForecastDays(resp.Forecast),
		Location: toLocation(resp.Location),
		Timezone: s.resolveTimezone(coords, resp.Location.TzID),
	}

	s.logger.Debug("weather lookup complete",
		"coords", coords,
		"location", report.Location.Name,
		"timezone", report.Timezone,
		"forecast_days", len(report.Forecast),
	)

	if s.publisher != nil {
		s.publisher.PublishLookup(events.WeatherLookup{
			Coords:    coords,
			Location:  report.Location.Name,
			Region:    report.Location.Region,
			Timezone:  report.Timezone,
			TempC:     report.Current.TemperatureC,
			Condition: report.Current.Condition.Text,
			Timestamp: s.now().UTC(),
		})
	}

	return report, nil
}

// resolveTimezone prefers the upstream zone and falls back to a point lookup.
// An unresolvable zone is logged and left empty.
func (s *weatherService) resolveTimezone(coords, upstreamTZ string) string {
	if upstreamTZ != "" || s.timezoneService == nil {
		return upstreamTZ
	}

	point, err := types.ParseCoords(coords)
	if err != nil {
		s.logger.Warn("cannot parse coordinates for timezone lookup", "coords", coords, "error", err)
		return ""
	}

	tz, err := s.timezoneService.GetTimezone(point)
	if err != nil {
		s.logger.Warn("failed to determine timezone", "coords", coords, "error", err)
		return ""
	}

	s.logger.Debug("determined timezone from coordinates", "coords", coords, "timezone", tz)
	return tz
}
