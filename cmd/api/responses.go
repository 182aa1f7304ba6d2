package main

import (
	"espana-clima/internal/types"
	"espana-clima/internal/weather"
)

// Every endpoint answers with {success, message?, ...payload}

// ErrorResponse is the body of every failed lookup
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message" example:"Es necesario especificar el código de la provincia"`
}

type CommunitiesResponse struct {
	Success     bool           `json:"success" example:"true"`
	Comunidades []types.Region `json:"comunidades"`
}

type ProvincesResponse struct {
	Success    bool           `json:"success" example:"true"`
	Provincias []types.Region `json:"provincias"`
}

// MunicipalityItem is a municipality as the frontend consumes it
type MunicipalityItem struct {
	Name     string `json:"name" example:"Alcalá de Henares"`
	GeoPoint string `json:"geo_point" example:"40.4893,-3.3667"` // "lat,lon"
}

type MunicipalitiesResponse struct {
	Success    bool               `json:"success" example:"true"`
	Municipios []MunicipalityItem `json:"municipios"`
}

type WeatherResponse struct {
	Success bool `json:"success" example:"true"`
	weather.Report
}

func newMunicipalitiesResponse(municipalities []types.Municipality) MunicipalitiesResponse {
	items := make([]MunicipalityItem, 0, len(municipalities))
	for _, m := range municipalities {
		items = append(items, MunicipalityItem{
			Name:     m.Name,
			GeoPoint: m.Coordinates.String(),
		})
	}
	return MunicipalitiesResponse{Success: true, Municipios: items}
}
