package weatherapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"espana-clima/internal/types"
)

// API Docs: https://www.weatherapi.com/docs/
// Sample request: https://weatherapi-com.p.rapidapi.com/forecast.json?q=40.4168,-3.7038&days=3&lang=es
const (
	DefaultBaseURL = "https://weatherapi-com.p.rapidapi.com"
	DefaultHost    = "weatherapi-com.p.rapidapi.com"

	// bodySnippetLimit bounds how much of a failed response is logged
	bodySnippetLimit = 300
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	host       string
	apiKey     string
	days       int
	lang       string
	logger     *slog.Logger
}

type Options struct {
	BaseURL string
	Host    string
	APIKey  string
	Days    int
	Lang    string
	Timeout time.Duration
}

func NewClient(opts Options, logger *slog.Logger) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Host == "" {
		opts.Host = DefaultHost
	}
	if opts.Days <= 0 {
		opts.Days = 3
	}
	if opts.Lang == "" {
		opts.Lang = "es"
	}
	return &Client{
		httpClient: &http.Client{Timeout: opts.Timeout},
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		host:       opts.Host,
		apiKey:     opts.APIKey,
		days:       opts.Days,
		lang:       opts.Lang,
		logger:     logger.With("component", "weatherapi-client"),
	}
}

// GetForecast fetches current conditions and the daily/hourly forecast for
// q, a "lat,lon" pair or anything else the upstream accepts as a location.
func (c *Client) GetForecast(ctx context.Context, q string) (*ForecastAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	u = u.JoinPath("forecast.json")
	params := u.Query()
	params.Set("q", q)
	params.Set("days", strconv.Itoa(c.days))
	params.Set("lang", c.lang)
	u.RawQuery = params.Encode()

	c.logger.Debug("fetching forecast",
		"q", q,
		"days", c.days,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("X-RapidAPI-Key", c.apiKey)
	req.Header.Set("X-RapidAPI-Host", c.host)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("failed to fetch forecast",
			"q", q,
			"error", err,
		)
		return nil, fmt.Errorf("failed to fetch forecast: %w", &types.TransportError{Err: err})
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, bodySnippetLimit))
		c.logger.Error("weather API returned error",
			"q", q,
			"status_code", resp.StatusCode,
			"response_body", string(snippet),
		)
		return nil, fmt.Errorf("fetch forecast: %w", &types.UpstreamError{StatusCode: resp.StatusCode})
	}

	var apiResp ForecastAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		c.logger.Error("failed to decode forecast response",
			"q", q,
			"error", err,
		)
		return nil, fmt.Errorf("failed to decode forecast response: %w: %w", types.ErrDecode, err)
	}

	c.logger.Debug("successfully fetched forecast",
		"q", q,
		"location", apiResp.Location.Name,
		"has_current", apiResp.Current != nil,
		"has_forecast", apiResp.Forecast != nil,
	)

	return &apiResp, nil
}
