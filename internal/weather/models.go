package weather

import "espana-clima/internal/types"

// Report is what a weather lookup returns: current conditions, the daily
// forecast in upstream order and the zone the dates are local to.
type Report struct {
	Current  types.WeatherSnapshot `json:"current"`
	Forecast []types.ForecastDay   `json:"forecast"`
	Location types.WeatherLocation `json:"location"`
	Timezone string                `json:"timezone,omitempty" example:"Europe/Madrid"`
}
