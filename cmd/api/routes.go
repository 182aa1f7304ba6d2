package main

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"espana-clima/internal/web"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() error {
	// Health check endpoint
	app.router.GET("/ping", app.handlePing)

	// Geography endpoints
	app.router.GET("/get_comunidades", app.handleGetCommunities)
	app.router.GET("/get_provincias", app.handleGetProvinces)
	app.router.GET("/get_municipios", app.handleGetMunicipalities)

	// Weather endpoint
	app.router.GET("/get_weather", app.handleGetWeather)

	// Swagger documentation
	app.router.GET("/swagger/*any", func(c *gin.Context) {
		path := c.Param("any")
		if path == "/" {
			c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})

	// Browser frontend
	if err := web.Register(app.router, app.cfg.App); err != nil {
		return fmt.Errorf("failed to register web frontend: %w", err)
	}

	return nil
}
