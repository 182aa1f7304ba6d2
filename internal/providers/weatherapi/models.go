package weatherapi

// ForecastAPIResponse is the body of /forecast.json. Current and Forecast
// are pointers so an absent block can be told apart from a zero one.
type ForecastAPIResponse struct {
	Location Location  `json:"location"`
	Current  *Current  `json:"current"`
	Forecast *Forecast `json:"forecast"`
}

type Location struct {
	Name           string  `json:"name"`
	Region         string  `json:"region"`
	Country        string  `json:"country"`
	Lat            float64 `json:"lat"`
	Lon            float64 `json:"lon"`
	TzID           string  `json:"tz_id"`
	LocaltimeEpoch int64   `json:"localtime_epoch"`
	Localtime      string  `json:"localtime"`
}

type Condition struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
	Code int    `json:"code"`
}

type Current struct {
	LastUpdated string    `json:"last_updated"`
	TempC       float64   `json:"temp_c"`
	FeelslikeC  float64   `json:"feelslike_c"`
	IsDay       int       `json:"is_day"`
	Condition   Condition `json:"condition"`
	WindKph     float64   `json:"wind_kph"`
	WindDir     string    `json:"wind_dir"`
	PrecipMm    float64   `json:"precip_mm"`
	Humidity    int       `json:"humidity"`
	UV          float64   `json:"uv"`
}

type Forecast struct {
	Forecastday []ForecastDay `json:"forecastday"`
}

type ForecastDay struct {
	Date  string `json:"date"`
	Day   Day    `json:"day"`
	Astro Astro  `json:"astro"`
	Hour  []Hour `json:"hour"`
}

type Day struct {
	MaxtempC          float64   `json:"maxtemp_c"`
	MintempC          float64   `json:"mintemp_c"`
	AvgtempC          float64   `json:"avgtemp_c"`
	MaxwindKph        float64   `json:"maxwind_kph"`
	TotalprecipMm     float64   `json:"totalprecip_mm"`
	Avghumidity       float64   `json:"avghumidity"`
	DailyChanceOfRain int       `json:"daily_chance_of_rain"`
	Condition         Condition `json:"condition"`
}

type Astro struct {
	Sunrise string `json:"sunrise"`
	Sunset  string `json:"sunset"`
}

type Hour struct {
	Time         string    `json:"time"`
	TempC        float64   `json:"temp_c"`
	FeelslikeC   float64   `json:"feelslike_c"`
	IsDay        int       `json:"is_day"`
	Condition    Condition `json:"condition"`
	WindKph      float64   `json:"wind_kph"`
	WindDir      string    `json:"wind_dir"`
	PrecipMm     float64   `json:"precip_mm"`
	Humidity     int       `json:"humidity"`
	ChanceOfRain int       `json:"chance_of_rain"`
}
