package restapi

import (
	"log/slog"
	"math"
	"net/http"

	"eventrec.dev/internal/logging"
	"eventrec.dev/internal/models"
	"eventrec.dev/internal/recommend"
	"eventrec.dev/internal/utils"
)

type recommendationRequest struct {
	UserID      string                  `json:"user_id" validate:"omitempty,max=128"`
	Preferences *models.UserPreferences `json:"preferences" validate:"required"`
}

func (api *RestAPI) recommendationsHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var fieldErrors map[string][]string
	var maxDistance *float64
	if query.Get("max_distance_km") != "" {
		var km float64
		km, fieldErrors = utils.ParseFloatParam(query, "max_distance_km", fieldErrors)
		switch {
		case math.IsNaN(km) || math.IsInf(km, 0):
			fieldErrors = appendFieldError(fieldErrors, "max_distance_km", "max_distance_km must be a finite number")
		case km < 0:
			fieldErrors = appendFieldError(fieldErrors, "max_distance_km", "max_distance_km must be greater than or equal to 0")
		}
		maxDistance = &km
	}
	topN, fieldErrors := utils.ParseIntParam(query, "top_n", fieldErrors)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}
	topN = min(topN, models.MaxTopN)

	var body recommendationRequest
	if errs := decodeJSONBody(w, r, &body); errs != nil {
		api.validationErrorResponse(w, r, errs)
		return
	}
	if errs := validateStruct(&body); errs != nil {
		api.validationErrorResponse(w, r, errs)
		return
	}

	sortBy := recommend.NormalizeSortBy(query.Get("sort_by"))
	recs, err := api.Recommender.Recommend(r.Context(), recommend.Request{
		Preferences:   *body.Preferences,
		UserID:        body.UserID,
		MaxDistanceKm: maxDistance,
		SortBy:        sortBy,
		TopN:          topN,
	})
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	if api.Config.Verbose {
		logging.FromContext(r.Context()).Debug("recommendations served",
			slog.String("sort_by", sortBy),
			slog.Int("results", len(recs)))
	}

	api.sendResponse(w, r, models.NewListResponseWithClock(recs, false, api.Clock))
}

func appendFieldError(fieldErrors map[string][]string, field, message string) map[string][]string {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}
	fieldErrors[field] = append(fieldErrors[field], message)
	return fieldErrors
}
