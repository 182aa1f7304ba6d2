package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Log       LogConfig
	App       AppConfig
	Geography GeographyConfig
	Weather   WeatherConfig
	Upstream  UpstreamConfig
	Events    EventsConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port    int
	GinMode string // debug, release, test
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// AppConfig holds values shown by the web frontend
type AppConfig struct {
	Name    string
	Version string
}

// GeographyConfig points at the open-data catalog that lists communities,
// provinces and municipalities
type GeographyConfig struct {
	BaseURL               string
	CommunitiesDataset    string
	ProvincesDataset      string
	MunicipalitiesDataset string
}

// WeatherConfig holds the weather API settings
type WeatherConfig struct {
	BaseURL string
	Host    string // sent as X-RapidAPI-Host
	APIKey  string // sent as X-RapidAPI-Key
	Days    int
	Lang    string
}

// UpstreamConfig applies to every outbound HTTP call
type UpstreamConfig struct {
	Timeout time.Duration
}

// EventsConfig controls publishing of weather lookups to an MQTT broker
type EventsConfig struct {
	Enabled     bool
	Broker      string
	ClientID    string
	Username    string
	Password    string
	TopicPrefix string
}

// Load reads configuration from file and environment variables.
// An empty path searches the default locations for config.yaml.
func Load(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/.espana-clima")
	}

	setDefaults(v)

	// ESPANA_CLIMA_WEATHER_APIKEY overrides weather.apiKey
	v.SetEnvPrefix("ESPANA_CLIMA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.ginMode", "release")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("app.name", "España Clima")
	v.SetDefault("app.version", "1.0.0")

	v.SetDefault("geography.baseURL", "https://public.opendatasoft.com/api/explore/v2.1")
	v.SetDefault("geography.communitiesDataset", "georef-spain-comunidad-autonoma")
	v.SetDefault("geography.provincesDataset", "georef-spain-provincia")
	v.SetDefault("geography.municipalitiesDataset", "georef-spain-municipio")

	v.SetDefault("weather.baseURL", "https://weatherapi-com.p.rapidapi.com")
	v.SetDefault("weather.host", "weatherapi-com.p.rapidapi.com")
	v.SetDefault("weather.apiKey", "")
	v.SetDefault("weather.days", 3)
	v.SetDefault("weather.lang", "es")

	v.SetDefault("upstream.timeout", "30s")

	v.SetDefault("events.enabled", false)
	v.SetDefault("events.broker", "tcp://localhost:1883")
	v.SetDefault("events.clientID", "espana-clima")
	v.SetDefault("events.username", "")
	v.SetDefault("events.password", "")
	v.SetDefault("events.topicPrefix", "espana-clima")
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Logs go to stderr so CLI lookups can pipe their JSON from stdout
	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	return slog.New(handler)
}
