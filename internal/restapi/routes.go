package restapi

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"eventrec.dev/internal/utils"
)

// crowdCacheMaxAge is how long clients may cache a crowd estimate.
const crowdCacheMaxAge = time.Minute

// rateLimitAndValidateAPIKey combines API key validation and rate limiting
func rateLimitAndValidateAPIKey(api *RestAPI, finalHandler http.HandlerFunc) http.Handler {
	var limited http.Handler = finalHandler
	if api.rateLimiter != nil {
		limited = api.rateLimiter.Handler()(finalHandler)
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if api.RequestHasInvalidAPIKey(r) {
			api.invalidAPIKeyResponse(w, r)
			return
		}
		limited.ServeHTTP(w, r)
	})
}

// withID validates the {id} path value before the handler runs
func withID(api *RestAPI, handler http.HandlerFunc) http.Handler {
	return rateLimitAndValidateAPIKey(api, func(w http.ResponseWriter, r *http.Request) {
		if err := utils.ValidateID(utils.ExtractIDFromParams(r)); err != nil {
			api.validationErrorResponse(w, r, map[string][]string{"id": {err.Error()}})
			return
		}
		handler(w, r)
	})
}

// SetRoutes registers all API endpoints
func (api *RestAPI) SetRoutes(mux *http.ServeMux) {
	// Health check and metrics - no authentication required
	mux.HandleFunc("GET /healthz", api.healthHandler)
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.Handle("POST /api/recommendations", rateLimitAndValidateAPIKey(api, api.recommendationsHandler))
	mux.Handle("POST /api/interactions", rateLimitAndValidateAPIKey(api, api.createInteractionHandler))
	mux.Handle("POST /api/admin/catalog/reload", rateLimitAndValidateAPIKey(api, api.catalogReloadHandler))

	mux.Handle("GET /api/events/{id}", withID(api, api.eventHandler))
	mux.Handle("GET /api/crowd/{id}", CacheControlMiddleware(crowdCacheMaxAge, withID(api, api.crowdHandler)))

	mux.Handle("GET /api/users/{id}/saved", withID(api, api.listSavedEventsHandler))
	mux.Handle("POST /api/users/{id}/saved/{eventId}", withID(api, api.saveEventHandler))
	mux.Handle("DELETE /api/users/{id}/saved/{eventId}", withID(api, api.deleteSavedEventHandler))
}

// SetupAPIRoutes creates the API router with the global middleware chain:
// request id -> security headers -> compression -> request logging -> routes.
func (api *RestAPI) SetupAPIRoutes() http.Handler {
	mux := http.NewServeMux()
	api.SetRoutes(mux)
	return api.WithGlobalMiddleware(mux)
}

// WithGlobalMiddleware wraps a mux that already has every route registered.
func (api *RestAPI) WithGlobalMiddleware(mux *http.ServeMux) http.Handler {
	return RequestIDMiddleware(securityHeaders(CompressionMiddleware(RequestLoggingMiddleware(mux))))
}
