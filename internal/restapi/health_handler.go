package restapi

import (
	"net/http"

	"eventrec.dev/internal/models"
)

type healthData struct {
	Status        string `json:"status"`
	CatalogEvents int    `json:"catalogEvents"`
}

// healthHandler reports whether the catalog is loaded and the store answers.
func (api *RestAPI) healthHandler(w http.ResponseWriter, r *http.Request) {
	data := healthData{Status: "ok"}
	code, text := http.StatusOK, "OK"

	if snapshot := api.CatalogManager.Current(); snapshot != nil {
		data.CatalogEvents = snapshot.Len()
	} else {
		data.Status, code, text = "catalog unavailable", http.StatusServiceUnavailable, "service unavailable"
	}

	if api.Store != nil {
		if err := api.Store.DB.PingContext(r.Context()); err != nil {
			data.Status, code, text = "store unavailable", http.StatusServiceUnavailable, "service unavailable"
		}
	}

	api.sendResponse(w, r, models.NewResponseWithClock(code, data, text, api.Clock))
}
