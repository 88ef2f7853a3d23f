package restapi

import (
	"net/http"

	"eventrec.dev/internal/models"
	"eventrec.dev/internal/utils"
)

func (api *RestAPI) crowdHandler(w http.ResponseWriter, r *http.Request) {
	eventID := utils.ExtractIDFromParams(r)

	if _, ok := api.CatalogManager.Current().Get(eventID); !ok {
		api.sendNotFound(w, r)
		return
	}

	estimate, err := api.Crowd.Estimate(r.Context(), eventID)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	api.sendResponse(w, r, models.NewEntryResponseWithClock(estimate, api.Clock))
}
