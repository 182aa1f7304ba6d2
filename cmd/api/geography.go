package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"espana-clima/internal/geography"
)

const (
	emptyCommunitiesMessage    = "No se encontraron comunidades autónomas"
	emptyProvincesMessage      = "No se encontraron provincias para esta comunidad autónoma"
	emptyMunicipalitiesMessage = "No se encontraron municipios para esta provincia"
)

func (app *App) lookupCommunities(ctx context.Context) (int, any) {
	communities, err := app.geographyService.ListCommunities(ctx)
	if err != nil {
		return app.failure("list communities", err, emptyCommunitiesMessage)
	}
	return http.StatusOK, CommunitiesResponse{Success: true, Comunidades: communities}
}

func (app *App) lookupProvinces(ctx context.Context, communityCode string) (int, any) {
	provinces, err := app.geographyService.ListProvinces(ctx, communityCode)
	if err != nil {
		return app.failure("list provinces", err, emptyProvincesMessage, "community_code", communityCode)
	}
	return http.StatusOK, ProvincesResponse{Success: true, Provincias: provinces}
}

func (app *App) lookupMunicipalities(ctx context.Context, provinceCode string) (int, any) {
	municipalities, err := app.geographyService.ListMunicipalities(ctx, provinceCode)
	if err != nil {
		return app.failure("list municipalities", err, emptyMunicipalitiesMessage, "province_code", provinceCode)
	}
	return http.StatusOK, newMunicipalitiesResponse(municipalities)
}

// handleGetCommunities godoc
// @Summary List autonomous communities
// @Description List every autonomous community of Spain ordered by name
// @Tags geography
// @Produce json
// @Success 200 {object} CommunitiesResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /get_comunidades [get]
func (app *App) handleGetCommunities(c *gin.Context) {
	c.JSON(app.lookupCommunities(c.Request.Context()))
}

// handleGetProvinces godoc
// @Summary List provinces
// @Description List the provinces of an autonomous community ordered by name
// @Tags geography
// @Produce json
// @Param comunidad_code query string true "Autonomous community code" example(13)
// @Success 200 {object} ProvincesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /get_provincias [get]
func (app *App) handleGetProvinces(c *gin.Context) {
	c.JSON(app.lookupProvinces(c.Request.Context(), c.Query(geography.ParamCommunityCode)))
}

// handleGetMunicipalities godoc
// @Summary List municipalities
// @Description List every municipality of a province with the coordinates used for weather lookups
// @Tags geography
// @Produce json
// @Param provincia_code query string true "Province code" example(28)
// @Success 200 {object} MunicipalitiesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /get_municipios [get]
func (app *App) handleGetMunicipalities(c *gin.Context) {
	c.JSON(app.lookupMunicipalities(c.Request.Context(), c.Query(geography.ParamProvinceCode)))
}
