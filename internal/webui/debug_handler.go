package webui

import (
	"log/slog"
	"net/http"
	"sort"
	"time"

	"eventrec.dev/internal/logging"
)

type tableCount struct {
	Name string
	Rows int
}

type debugPage struct {
	CatalogSource string
	CatalogEvents int
	LoadedAt      string
	Genres        []string
	WeightProfile string
	TemporalModel string
	LiveCrowd     bool
	Tables        []tableCount
	StoreError    string
}

func (webUI *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	page := debugPage{
		CatalogSource: webUI.CatalogManager.Source(),
		WeightProfile: webUI.ScoringConfig.WeightProfile,
		TemporalModel: webUI.ScoringConfig.TemporalModel,
		LiveCrowd:     webUI.ScoringConfig.LiveCrowd,
	}

	if snapshot := webUI.CatalogManager.Current(); snapshot != nil {
		page.CatalogEvents = snapshot.Len()
		page.LoadedAt = snapshot.LoadedAt().UTC().Format(time.RFC3339)
		page.Genres = snapshot.Genres()
	}

	if webUI.Store != nil {
		counts, err := webUI.Store.TableCounts(r.Context())
		if err != nil {
			page.StoreError = err.Error()
		}
		for name, rows := range counts {
			page.Tables = append(page.Tables, tableCount{Name: name, Rows: rows})
		}
		sort.Slice(page.Tables, func(i, j int) bool { return page.Tables[i].Name < page.Tables[j].Name })
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.ExecuteTemplate(w, "debug.html", page); err != nil {
		logging.LogError(logging.FromContext(r.Context()), "failed to render debug page", err,
			slog.String("component", "webui"))
	}
}
