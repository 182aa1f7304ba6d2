package main

import (
	"errors"
	"fmt"
	"net/http"

	"espana-clima/internal/geography"
	"espana-clima/internal/types"
	"espana-clima/internal/weather"
)

var missingParameterMessages = map[string]string{
	geography.ParamCommunityCode: "Es necesario especificar el código de la comunidad autónoma",
	geography.ParamProvinceCode:  "Es necesario especificar el código de la provincia",
	weather.ParamCoords:          "Es necesario especificar las coordenadas del municipio",
}

// classifyError maps a lookup failure to an HTTP status and the message
// shown to the user. emptyMessage describes an empty result for the
// calling endpoint.
func classifyError(err error, emptyMessage string) (int, string) {
	var missing *types.MissingParameterError
	var upstream *types.UpstreamError
	var transport *types.TransportError

	switch {
	case errors.As(err, &missing):
		if msg, ok := missingParameterMessages[missing.Param]; ok {
			return http.StatusBadRequest, msg
		}
		return http.StatusBadRequest, fmt.Sprintf("Falta el parámetro %s", missing.Param)
	case errors.Is(err, types.ErrEmptyResult):
		return http.StatusNotFound, emptyMessage
	case errors.As(err, &upstream):
		if upstream.Message != "" {
			return http.StatusBadGateway, "Error en la API: " + upstream.Message
		}
		return http.StatusBadGateway, fmt.Sprintf("Error en la API: Código HTTP %d", upstream.StatusCode)
	case errors.Is(err, types.ErrDecode):
		return http.StatusBadGateway, "Error al decodificar la respuesta JSON"
	case errors.As(err, &transport):
		return http.StatusBadGateway, "Error de conexión: " + transport.Err.Error()
	case errors.Is(err, types.ErrTransport):
		return http.StatusBadGateway, "Error de conexión con el servicio externo"
	default:
		return http.StatusInternalServerError, "Error interno del servidor"
	}
}

// failure logs err and builds the envelope for it
func (app *App) failure(op string, err error, emptyMessage string, attrs ...any) (int, ErrorResponse) {
	status, message := classifyError(err, emptyMessage)

	attrs = append(attrs, "status", status, "error", err)
	if status >= http.StatusInternalServerError {
		app.logger.Error("failed to "+op, attrs...)
	} else {
		app.logger.Warn("failed to "+op, attrs...)
	}

	return status, ErrorResponse{Success: false, Message: message}
}
