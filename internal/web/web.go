package web

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// RegisterRoutes installs the HTML templates on r and serves the landing page at /.
func RegisterRoutes(r *gin.Engine) {
	r.SetHTMLTemplate(templates)
	r.GET("/", Home)
}

func Home(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{"Title": "Cafe & Wifi API"})
}
