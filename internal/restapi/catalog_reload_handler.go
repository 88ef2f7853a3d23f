package restapi

import (
	"net/http"

	"eventrec.dev/internal/models"
)

type catalogStatus struct {
	Source   string `json:"source"`
	Events   int    `json:"events"`
	LoadedAt int64  `json:"loadedAt"`
}

// catalogReloadHandler reloads the catalog from its source. A failed reload
// leaves the previous catalog in service.
func (api *RestAPI) catalogReloadHandler(w http.ResponseWriter, r *http.Request) {
	if err := api.CatalogManager.ForceUpdate(r.Context()); err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	snapshot := api.CatalogManager.Current()
	api.sendResponse(w, r, models.NewEntryResponseWithClock(catalogStatus{
		Source:   api.CatalogManager.Source(),
		Events:   snapshot.Len(),
		LoadedAt: snapshot.LoadedAt().UnixMilli(),
	}, api.Clock))
}
