package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"

	"espana-clima/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Register mounts the browser frontend on router: the page at "/" and its
// assets under "/static".
func Register(router *gin.Engine, app config.AppConfig) error {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return fmt.Errorf("failed to parse templates: %w", err)
	}
	router.SetHTMLTemplate(tmpl)

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return fmt.Errorf("failed to open static assets: %w", err)
	}
	router.StaticFS("/static", http.FS(static))

	index := func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", gin.H{
			"title":   app.Name,
			"version": app.Version,
		})
	}
	router.GET("/", index)
	router.HEAD("/", index)

	return nil
}
