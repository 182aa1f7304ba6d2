package types

// Condition describes the sky as reported by the weather API
type Condition struct {
	Text string `json:"text" example:"Soleado"`
	Icon string `json:"icon" example:"//cdn.weatherapi.com/weather/64x64/day/113.png"`
	Code int    `json:"code" example:"1000"`
}

// WeatherSnapshot is a current-conditions reading. Units are whatever the
// weather API returns.
type WeatherSnapshot struct {
	LastUpdated     string    `json:"last_updated,omitempty" example:"2025-03-01 12:30"`
	TemperatureC    float64   `json:"temp_c" example:"17.2"`
	FeelsLikeC      float64   `json:"feelslike_c"`
	IsDay           int       `json:"is_day"`
	Condition       Condition `json:"condition"`
	WindKph         float64   `json:"wind_kph" example:"11.2"`
	WindDir         string    `json:"wind_dir,omitempty"`
	PrecipitationMm float64   `json:"precip_mm" example:"0"`
	HumidityPct     int       `json:"humidity" example:"52"`
	UV              float64   `json:"uv"`
}

// HourlyReading is one hour inside a ForecastDay
type HourlyReading struct {
	Time            string    `json:"time" example:"2025-03-01 14:00"`
	TemperatureC    float64   `json:"temp_c"`
	FeelsLikeC      float64   `json:"feelslike_c"`
	IsDay           int       `json:"is_day"`
	Condition       Condition `json:"condition"`
	WindKph         float64   `json:"wind_kph"`
	WindDir         string    `json:"wind_dir,omitempty"`
	PrecipitationMm float64   `json:"precip_mm"`
	HumidityPct     int       `json:"humidity"`
	ChanceOfRainPct int       `json:"chance_of_rain"`
}

// DaySummary aggregates a forecast day
type DaySummary struct {
	MaxTempC          float64   `json:"maxtemp_c"`
	MinTempC          float64   `json:"mintemp_c"`
	AvgTempC          float64   `json:"avgtemp_c"`
	MaxWindKph        float64   `json:"maxwind_kph"`
	TotalPrecipMm     float64   `json:"totalprecip_mm"`
	AvgHumidityPct    float64   `json:"avghumidity"`
	DailyChanceOfRain int       `json:"daily_chance_of_rain"`
	Condition         Condition `json:"condition"`
}

type Astro struct {
	Sunrise string `json:"sunrise"`
	Sunset  string `json:"sunset"`
}

// ForecastDay is one calendar day with its hourly readings in order
type ForecastDay struct {
	Date  string          `json:"date" example:"2025-03-01"`
	Day   DaySummary      `json:"day"`
	Astro Astro           `json:"astro"`
	Hours []HourlyReading `json:"hour"`
}

// WeatherLocation is the place the weather API resolved the query to
type WeatherLocation struct {
	Name      string  `json:"name"`
	Region    string  `json:"region"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
	TZID      string  `json:"tz_id"`
	LocalTime string  `json:"localtime"`
}
