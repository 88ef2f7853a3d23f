package webui

import (
	"log/slog"
	"net/http"

	"eventrec.dev/internal/logging"
)

type indexPage struct {
	Events int
	Genres []string
}

func (webUI *WebUI) indexHandler(w http.ResponseWriter, r *http.Request) {
	page := indexPage{}
	if snapshot := webUI.CatalogManager.Current(); snapshot != nil {
		page.Events = snapshot.Len()
		page.Genres = snapshot.Genres()
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.ExecuteTemplate(w, "index.html", page); err != nil {
		logging.LogError(logging.FromContext(r.Context()), "failed to render index page", err,
			slog.String("component", "webui"))
	}
}
