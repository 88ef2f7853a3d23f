package main

import (
	"flag"
	"log/slog"
	"os"

	"eventrec.dev/internal/appconf"
)

func main() {
	var cfg appconf.Config
	var catalogCfg appconf.CatalogConfig
	scoringCfg := appconf.DefaultScoringConfig()
	var apiKeysFlag string
	var envFlag string
	var dataPath string
	var configPath string

	// Parse command-line flags
	flag.StringVar(&configPath, "config", "", "Path to a JSON config file (other flags are ignored when set)")
	flag.IntVar(&cfg.Port, "port", 4000, "API server port")
	flag.StringVar(&envFlag, "env", "development", "Environment (development|test|production)")
	flag.StringVar(&apiKeysFlag, "api-keys", "test", "Comma Separated API Keys (test, etc)")
	flag.IntVar(&cfg.RateLimit, "rate-limit", 100, "Requests per second per API key for rate limiting")
	flag.StringVar(&catalogCfg.Source, "catalog-source", "./data/events_seed.csv", "Path or URL of the events CSV (optionally gzipped)")
	flag.StringVar(&catalogCfg.AuthHeaderKey, "catalog-auth-header-name", "", "Optional header name for catalog downloads")
	flag.StringVar(&catalogCfg.AuthHeaderValue, "catalog-auth-header-value", "", "Optional header value for catalog downloads")
	flag.DurationVar(&catalogCfg.RefreshInterval, "catalog-refresh-interval", 0, "Reload interval for URL catalogs (0 disables)")
	flag.StringVar(&scoringCfg.WeightProfile, "weight-profile", scoringCfg.WeightProfile, "Scoring weights (contextual|basic)")
	flag.StringVar(&scoringCfg.TemporalModel, "temporal-model", scoringCfg.TemporalModel, "Event timing model (stepped|gradual)")
	flag.BoolVar(&scoringCfg.LiveCrowd, "live-crowd", false, "Estimate crowd levels of untagged events from user interest")
	flag.StringVar(&dataPath, "data-path", "./eventrec.db", "Path to the SQLite interaction store")
	flag.Parse()

	if configPath != "" {
		fileCfg, err := appconf.LoadFromFile(configPath)
		if err != nil {
			logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
			logger.Error("failed to load config file", "path", configPath, "error", err)
			os.Exit(1)
		}
		cfg = fileCfg.ToAppConfig()
		catalogCfg = fileCfg.ToCatalogConfig()
		scoringCfg = fileCfg.ToScoringConfig()
		dataPath = fileCfg.DataPath
	} else {
		// Set verbosity flags
		cfg.Verbose = true
		catalogCfg.Verbose = true

		cfg.ApiKeys = ParseAPIKeys(apiKeysFlag)
		cfg.Env = appconf.EnvFlagToEnvironment(envFlag)
	}

	// Build application with dependencies
	coreApp, err := BuildApplication(cfg, catalogCfg, scoringCfg, dataPath)
	if err != nil {
		logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
		logger.Error("failed to build application", "error", err)
		os.Exit(1)
	}

	// Create HTTP server
	srv := CreateServer(coreApp, cfg)

	// Run server with graceful shutdown
	if err := Run(srv, coreApp, coreApp.Logger); err != nil {
		coreApp.Logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
