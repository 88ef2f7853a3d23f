package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"eventrec.dev/eventdb"
	"eventrec.dev/internal/app"
	"eventrec.dev/internal/appconf"
	"eventrec.dev/internal/catalog"
	"eventrec.dev/internal/clock"
	"eventrec.dev/internal/contextual"
	"eventrec.dev/internal/crowd"
	"eventrec.dev/internal/logging"
	"eventrec.dev/internal/recommend"
	"eventrec.dev/internal/restapi"
	"eventrec.dev/internal/scoring"
	"eventrec.dev/internal/webui"
)

// ParseAPIKeys splits a comma-separated string of API keys and trims whitespace from each key.
// Returns an empty slice if the input is empty.
func ParseAPIKeys(apiKeysFlag string) []string {
	if apiKeysFlag == "" {
		return []string{}
	}

	keys := strings.Split(apiKeysFlag, ",")
	for i := range keys {
		keys[i] = strings.TrimSpace(keys[i])
	}
	return keys
}

// BuildApplication loads the catalog, opens the interaction store and wires the
// scoring pipeline. Nothing is left running when it returns an error.
func BuildApplication(cfg appconf.Config, catalogCfg appconf.CatalogConfig, scoringCfg appconf.ScoringConfig, dataPath string) (*app.Application, error) {
	logger := logging.NewStructuredLogger(os.Stdout, slog.LevelInfo)
	slog.SetDefault(logger)

	weights, err := scoring.WeightsForProfile(scoringCfg.WeightProfile)
	if err != nil {
		return nil, err
	}
	appClock := clock.RealClock{}
	engine, err := scoring.NewEngine(weights, contextual.NewTemporalScorer(appClock, scoringCfg.TemporalModel))
	if err != nil {
		return nil, fmt.Errorf("failed to build scoring engine: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	catalogManager, err := catalog.InitCatalogManager(ctx, catalogCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize catalog manager: %w", err)
	}

	store, err := eventdb.NewClient(eventdb.NewConfig(dataPath, cfg.Env, cfg.Verbose))
	if err != nil {
		catalogManager.Shutdown()
		return nil, fmt.Errorf("failed to open interaction store: %w", err)
	}

	estimator := crowd.NewEstimator(store.Queries)
	var liveCrowd *crowd.Estimator
	if scoringCfg.LiveCrowd {
		liveCrowd = estimator
	}

	coreApp := &app.Application{
		Config:         cfg,
		ScoringConfig:  scoringCfg,
		Logger:         logger,
		CatalogManager: catalogManager,
		Store:          store,
		Recommender:    recommend.NewRecommender(catalogManager, engine, store.Queries, liveCrowd),
		Crowd:          estimator,
		Clock:          appClock,
	}

	return coreApp, nil
}

// CreateServer creates and configures the HTTP server with routes and middleware.
// Sets up both REST API routes and WebUI routes on one mux behind the global middleware.
func CreateServer(coreApp *app.Application, cfg appconf.Config) *http.Server {
	api := restapi.NewRestAPI(coreApp)

	webUI := &webui.WebUI{
		Application: coreApp,
	}

	mux := http.NewServeMux()

	api.SetRoutes(mux)
	webUI.SetWebUIRoutes(mux)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      api.WithGlobalMiddleware(mux),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(coreApp.Logger.Handler(), slog.LevelError),
	}
	srv.RegisterOnShutdown(api.Shutdown)

	return srv
}

// Run manages the server lifecycle with graceful shutdown.
// Starts the server in a goroutine, waits for shutdown signals (SIGINT, SIGTERM),
// and performs graceful shutdown with a 30-second timeout.
// Returns an error if the server fails to start or shutdown fails.
func Run(srv *http.Server, coreApp *app.Application, logger *slog.Logger) error {
	logger.Info("starting server", "addr", srv.Addr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErrors := make(chan error, 1)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- err
		}
	}()

	select {
	case err := <-serverErrors:
		shutdownApplication(coreApp, logger)
		return fmt.Errorf("server failed to start: %w", err)
	case <-ctx.Done():
		logger.Info("shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		shutdownApplication(coreApp, logger)
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	shutdownApplication(coreApp, logger)
	logger.Info("server exited")
	return nil
}

// shutdownApplication stops catalog reloads and closes the store.
func shutdownApplication(coreApp *app.Application, logger *slog.Logger) {
	if coreApp.CatalogManager != nil {
		coreApp.CatalogManager.Shutdown()
	}
	if coreApp.Store != nil {
		logging.SafeCloseWithLogging(coreApp.Store, logger, "interaction_store")
	}
}
