package restapi

import (
	"log/slog"
	"net/http"

	"eventrec.dev/eventdb"
	"eventrec.dev/internal/logging"
	"eventrec.dev/internal/metrics"
	"eventrec.dev/internal/models"
)

type interactionRequest struct {
	UserID          string `json:"user_id" validate:"required,max=128"`
	EventID         string `json:"event_id" validate:"required,max=128"`
	InteractionType string `json:"interaction_type" validate:"required,oneof=INTERESTED NOT_INTERESTED"`
}

type interactionData struct {
	ID              int64  `json:"id"`
	UserID          string `json:"user_id"`
	EventID         string `json:"event_id"`
	InteractionType string `json:"interaction_type"`
	CreatedAt       int64  `json:"created_at"`
}

func (api *RestAPI) createInteractionHandler(w http.ResponseWriter, r *http.Request) {
	var body interactionRequest
	if errs := decodeJSONBody(w, r, &body); errs != nil {
		api.validationErrorResponse(w, r, errs)
		return
	}
	if errs := validateStruct(&body); errs != nil {
		api.validationErrorResponse(w, r, errs)
		return
	}

	if _, ok := api.CatalogManager.Current().Get(body.EventID); !ok {
		api.sendNotFound(w, r)
		return
	}

	interaction, err := api.Store.Queries.CreateInteraction(r.Context(), eventdb.CreateInteractionParams{
		UserID:          body.UserID,
		EventID:         body.EventID,
		InteractionType: body.InteractionType,
		CreatedAt:       api.Clock.NowUnixMilli(),
	})
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
	metrics.InteractionsLogged.WithLabelValues(interaction.InteractionType).Inc()

	logger := logging.FromContext(r.Context()).With(slog.String("component", "interactions"))
	logging.LogOperation(logger, "interaction_logged",
		slog.String("user_id", interaction.UserID),
		slog.String("event_id", interaction.EventID),
		slog.String("interaction_type", interaction.InteractionType))

	api.sendResponse(w, r, models.NewEntryResponseWithClock(interactionData{
		ID:              interaction.ID,
		UserID:          interaction.UserID,
		EventID:         interaction.EventID,
		InteractionType: interaction.InteractionType,
		CreatedAt:       interaction.CreatedAt,
	}, api.Clock))
}
