package weather

import (
	"espana-clima/internal/providers/weatherapi"
	"espana-clima/internal/types"
)

func toCondition(c weatherapi.Condition) types.Condition {
	return types.Condition{
		Text: c.Text,
		Icon: c.Icon,
		Code: c.Code,
	}
}

func toSnapshot(c *weatherapi.Current) types.WeatherSnapshot {
	return types.WeatherSnapshot{
		LastUpdated:     c.LastUpdated,
		TemperatureC:    c.TempC,
		FeelsLikeC:      c.FeelslikeC,
		IsDay:           c.IsDay,
		Condition:       toCondition(c.Condition),
		WindKph:         c.WindKph,
		WindDir:         c.WindDir,
		PrecipitationMm: c.PrecipMm,
		HumidityPct:     c.Humidity,
		UV:              c.UV,
	}
}

func toForecastDays(f *weatherapi.Forecast) []types.ForecastDay {
	days := make([]types.ForecastDay, 0, len(f.Forecastday))
	for _, d := range f.Forecastday {
		hours := make([]types.HourlyReading, 0, len(d.Hour))
		for _, h := range d.Hour {
			hours = append(hours, types.HourlyReading{
				Time:            h.Time,
				TemperatureC:    h.TempC,
				FeelsLikeC:      h.FeelslikeC,
				IsDay:           h.IsDay,
				Condition:       toCondition(h.Condition),
				WindKph:         h.WindKph,
				WindDir:         h.WindDir,
				PrecipitationMm: h.PrecipMm,
				HumidityPct:     h.Humidity,
				ChanceOfRainPct: h.ChanceOfRain,
			})
		}

		days = append(days, types.ForecastDay{
			Date: d.Date,
			Day: types.DaySummary{
				MaxTempC:          d.Day.MaxtempC,
				MinTempC:          d.Day.MintempC,
				AvgTempC:          d.Day.AvgtempC,
				MaxWindKph:        d.Day.MaxwindKph,
				TotalPrecipMm:     d.Day.TotalprecipMm,
				AvgHumidityPct:    d.Day.Avghumidity,
				DailyChanceOfRain: d.Day.DailyChanceOfRain,
				Condition:         toCondition(d.Day.Condition),
			},
			Astro: types.Astro{
				Sunrise: d.Astro.Sunrise,
				Sunset:  d.Astro.Sunset,
			},
			Hours: hours,
		})
	}
	return days
}

func toLocation(l weatherapi.Location) types.WeatherLocation {
	return types.WeatherLocation{
		Name:      l.Name,
		Region:    l.Region,
		Country:   l.Country,
		Latitude:  l.Lat,
		Longitude: l.Lon,
		TZID:      l.TzID,
		LocalTime: l.Localtime,
	}
}
