package catalog

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"eventrec.dev/internal/appconf"
	"eventrec.dev/internal/logging"
	"eventrec.dev/internal/metrics"
)

const reloadTimeout = 60 * time.Second

// Manager owns the active catalog and swaps in fresh snapshots on reload.
// Readers grab the current snapshot once per request and keep using it even if
// a reload happens meanwhile.
type Manager struct {
	config       appconf.CatalogConfig
	mu           sync.RWMutex
	current      *Catalog
	logger       *slog.Logger
	shutdownChan chan struct{}
	wg           sync.WaitGroup
	shutdownOnce sync.Once
}

// InitCatalogManager loads the catalog once and fails if it cannot.
// Remote sources with a refresh interval are reloaded in the background.
func InitCatalogManager(ctx context.Context, config appconf.CatalogConfig) (*Manager, error) {
	manager := &Manager{
		config:       config,
		logger:       slog.Default().With(slog.String("component", "catalog_manager")),
		shutdownChan: make(chan struct{}),
	}

	initial, err := loadEvents(ctx, config)
	metrics.RecordCatalogReload(catalogLen(initial), err)
	if err != nil {
		return nil, err
	}
	manager.setCatalog(initial)

	if config.Verbose {
		logging.LogOperation(manager.logger, "catalog_loaded",
			slog.String("source", config.Source),
			slog.Int("events", initial.Len()))
	}

	if isRemote(config.Source) && config.RefreshInterval > 0 {
		manager.wg.Add(1)
		go manager.updateCatalogPeriodically()
	}

	return manager, nil
}

// NewManagerWithCatalog wraps an already built catalog. ForceUpdate reloads from config.Source.
func NewManagerWithCatalog(c *Catalog, config appconf.CatalogConfig) *Manager {
	m := &Manager{
		config:       config,
		logger:       slog.Default().With(slog.String("component", "catalog_manager")),
		shutdownChan: make(chan struct{}),
	}
	m.setCatalog(c)
	return m
}

// Current returns the active snapshot.
func (manager *Manager) Current() *Catalog {
	manager.mu.RLock()
	defer manager.mu.RUnlock()
	return manager.current
}

func (manager *Manager) Source() string {
	return manager.config.Source
}

// ForceUpdate reloads the catalog now. On failure the previous catalog stays active.
func (manager *Manager) ForceUpdate(ctx context.Context) error {
	fresh, err := loadEvents(ctx, manager.config)
	metrics.RecordCatalogReload(catalogLen(fresh), err)
	if err != nil {
		logging.LogError(manager.logger, "Error reloading catalog", err,
			slog.String("source", manager.config.Source))
		return err
	}

	manager.setCatalog(fresh)
	logging.LogOperation(manager.logger, "catalog_reloaded",
		slog.String("source", manager.config.Source),
		slog.Int("events", fresh.Len()))
	return nil
}

// Shutdown stops background reloads. It is safe to call more than once.
func (manager *Manager) Shutdown() {
	manager.shutdownOnce.Do(func() {
		close(manager.shutdownChan)
		manager.wg.Wait()
	})
}

func (manager *Manager) updateCatalogPeriodically() {
	defer manager.wg.Done()

	logger := manager.logger.With(slog.String("task", "periodic_reload"))
	ticker := time.NewTicker(manager.config.RefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), reloadTimeout)
			// Errors are logged inside ForceUpdate and the old catalog keeps serving.
			_ = manager.ForceUpdate(ctx)
			cancel()
		case <-manager.shutdownChan:
			logging.LogOperation(logger, "shutting_down_catalog_updates")
			return
		}
	}
}

func (manager *Manager) setCatalog(c *Catalog) {
	manager.mu.Lock()
	defer manager.mu.Unlock()
	manager.current = c
}

func catalogLen(c *Catalog) int {
	if c == nil {
		return 0
	}
	return c.Len()
}
