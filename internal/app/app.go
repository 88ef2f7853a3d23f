package app

import (
	"log/slog"

	"eventrec.dev/eventdb"
	"eventrec.dev/internal/appconf"
	"eventrec.dev/internal/catalog"
	"eventrec.dev/internal/clock"
	"eventrec.dev/internal/crowd"
	"eventrec.dev/internal/recommend"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware.
type Application struct {
	Config         appconf.Config
	ScoringConfig  appconf.ScoringConfig
	Logger         *slog.Logger
	CatalogManager *catalog.Manager
	Store          *eventdb.Client
	Recommender    *recommend.Recommender
	Crowd          *crowd.Estimator
	Clock          clock.Clock
}
