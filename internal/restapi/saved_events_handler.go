package restapi

import (
	"log/slog"
	"net/http"

	"eventrec.dev/eventdb"
	"eventrec.dev/internal/logging"
	"eventrec.dev/internal/models"
	"eventrec.dev/internal/utils"
)

type savedEventData struct {
	EventID string `json:"event_id"`
	Saved   bool   `json:"saved"`
	Message string `json:"message"`
}

func (api *RestAPI) listSavedEventsHandler(w http.ResponseWriter, r *http.Request) {
	userID := utils.ExtractIDFromParams(r)

	saved, err := api.Store.Queries.ListSavedEvents(r.Context(), userID)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	eventIDs := make([]string, 0, len(saved))
	for _, s := range saved {
		eventIDs = append(eventIDs, s.EventID)
	}
	api.sendResponse(w, r, models.NewListResponseWithClock(eventIDs, false, api.Clock))
}

func (api *RestAPI) saveEventHandler(w http.ResponseWriter, r *http.Request) {
	userID := utils.ExtractIDFromParams(r)
	eventID := r.PathValue("eventId")

	if _, ok := api.CatalogManager.Current().Get(eventID); !ok {
		api.sendNotFound(w, r)
		return
	}

	inserted, err := api.Store.Queries.SaveEvent(r.Context(), eventdb.SaveEventParams{
		UserID:    userID,
		EventID:   eventID,
		CreatedAt: api.Clock.NowUnixMilli(),
	})
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	data := savedEventData{EventID: eventID, Saved: true, Message: "Saved"}
	if inserted == 0 {
		data.Message = "Already saved"
	} else {
		logging.LogOperation(logging.FromContext(r.Context()), "event_saved",
			slog.String("user_id", userID),
			slog.String("event_id", eventID))
	}
	api.sendResponse(w, r, models.NewEntryResponseWithClock(data, api.Clock))
}

func (api *RestAPI) deleteSavedEventHandler(w http.ResponseWriter, r *http.Request) {
	userID := utils.ExtractIDFromParams(r)
	eventID := r.PathValue("eventId")

	if err := utils.ValidateID(eventID); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{"eventId": {err.Error()}})
		return
	}

	removed, err := api.Store.Queries.DeleteSavedEvent(r.Context(), eventdb.DeleteSavedEventParams{
		UserID:  userID,
		EventID: eventID,
	})
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	message := "Removed"
	if removed == 0 {
		message = "Not saved"
	}
	api.sendResponse(w, r, models.NewEntryResponseWithClock(savedEventData{
		EventID: eventID,
		Saved:   false,
		Message: message,
	}, api.Clock))
}
