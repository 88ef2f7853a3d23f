package webui

import (
	"embed"
	"html/template"

	"eventrec.dev/internal/app"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type WebUI struct {
	*app.Application
}
