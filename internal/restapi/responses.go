package restapi

import (
	"log/slog"
	"net/http"

	"github.com/goccy/go-json"

	"eventrec.dev/internal/logging"
	"eventrec.dev/internal/models"
)

// sendResponse writes the envelope as JSON. Codes of 400 and above are also used as the HTTP status.
func (api *RestAPI) sendResponse(w http.ResponseWriter, r *http.Request, response models.ResponseModel) {
	status := http.StatusOK
	if response.Code >= http.StatusBadRequest {
		status = response.Code
	}
	writeJSON(w, r, status, response)
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.LogError(logging.FromContext(r.Context()), "failed to encode response", err,
			slog.String("path", r.URL.Path))
	}
}

func (api *RestAPI) sendNotFound(w http.ResponseWriter, r *http.Request) {
	api.sendResponse(w, r, models.NewResponseWithClock(http.StatusNotFound, nil, "resource not found", api.Clock))
}

func (api *RestAPI) invalidAPIKeyResponse(w http.ResponseWriter, r *http.Request) {
	api.sendResponse(w, r, models.NewResponseWithClock(http.StatusUnauthorized, nil, "permission denied", api.Clock))
}

// validationErrorResponse reports field errors keyed by the offending field.
func (api *RestAPI) validationErrorResponse(w http.ResponseWriter, r *http.Request, fieldErrors map[string][]string) {
	data := map[string]interface{}{"fieldErrors": fieldErrors}
	api.sendResponse(w, r, models.NewResponseWithClock(http.StatusBadRequest, data, "validation error", api.Clock))
}

func (api *RestAPI) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	logger := logging.FromContext(r.Context())
	logging.LogError(logger, "internal server error", err,
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path))
	api.sendResponse(w, r, models.NewResponseWithClock(http.StatusInternalServerError, nil, "internal server error", api.Clock))
}
