package app

import (
	"crypto/subtle"
	"net/http"
)

// IsInvalidAPIKey reports whether key is missing or not one of the configured keys.
func (app *Application) IsInvalidAPIKey(key string) bool {
	if key == "" {
		return true
	}
	for _, validKey := range app.Config.ApiKeys {
		if subtle.ConstantTimeCompare([]byte(key), []byte(validKey)) == 1 {
			return false
		}
	}
	return true
}

// RequestHasInvalidAPIKey checks the "key" query parameter of the request.
func (app *Application) RequestHasInvalidAPIKey(r *http.Request) bool {
	return app.IsInvalidAPIKey(r.URL.Query().Get("key"))
}
