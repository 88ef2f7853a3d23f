package restapi

import (
	"net/http"

	"eventrec.dev/internal/models"
	"eventrec.dev/internal/utils"
)

func (api *RestAPI) eventHandler(w http.ResponseWriter, r *http.Request) {
	event, ok := api.CatalogManager.Current().Get(utils.ExtractIDFromParams(r))
	if !ok {
		api.sendNotFound(w, r)
		return
	}

	api.sendResponse(w, r, models.NewEntryResponseWithClock(event, api.Clock))
}
