package restapi

import (
	"sync"
	"time"

	"eventrec.dev/internal/app"
)

type RestAPI struct {
	*app.Application
	rateLimiter  *RateLimitMiddleware
	shutdownOnce sync.Once
}

// NewRestAPI creates a new RestAPI instance with initialized rate limiter
func NewRestAPI(app *app.Application) *RestAPI {
	limiter := NewRateLimitMiddleware(app.Config.RateLimit, time.Second)
	if app.Clock != nil {
		limiter.clock = app.Clock
	}
	return &RestAPI{
		Application: app,
		rateLimiter: limiter,
	}
}

// Shutdown stops the background goroutines owned by the API. It is safe to call more than once.
func (api *RestAPI) Shutdown() {
	api.shutdownOnce.Do(func() {
		if api.rateLimiter != nil {
			api.rateLimiter.Stop()
		}
	})
}
