package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"espana-clima/internal/weather"
)

const incompleteWeatherMessage = "La respuesta de la API no tiene los datos esperados"

func (app *App) lookupWeather(ctx context.Context, coords string) (int, any) {
	report, err := app.weatherService.GetWeather(ctx, coords)
	if err != nil {
		return app.failure("get weather", err, incompleteWeatherMessage, "coords", coords)
	}
	return http.StatusOK, WeatherResponse{Success: true, Report: *report}
}

// handleGetWeather godoc
// @Summary Get weather for a municipality
// @Description Current conditions and a 3-day hourly forecast for a "lat,lon" pair
// @Tags weather
// @Produce json
// @Param coords query string true "Coordinates as lat,lon" example(40.4168,-3.7038)
// @Success 200 {object} WeatherResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /get_weather [get]
func (app *App) handleGetWeather(c *gin.Context) {
	c.JSON(app.lookupWeather(c.Request.Context(), c.Query(weather.ParamCoords)))
}
