package eventdb

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"

	_ "github.com/mattn/go-sqlite3" // CGo-based SQLite driver

	"eventrec.dev/internal/appconf"
	"eventrec.dev/internal/logging"
)

//go:embed schema.sql
var ddl string

// ErrInvalidTestConfig is returned when a test environment points at a file database.
var ErrInvalidTestConfig = errors.New("test database must use in-memory storage")

// Client owns the SQLite connection that backs the interaction log and saved events.
type Client struct {
	config  Config
	DB      *sql.DB
	Queries *Queries
}

// NewClient opens the database, applies the schema and tunes the connection pool.
func NewClient(config Config) (*Client, error) {
	if config.Env == appconf.Test && !config.isInMemory() {
		return nil, fmt.Errorf("%w: got %q", ErrInvalidTestConfig, config.DBPath)
	}

	db, err := sql.Open("sqlite3", config.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	configureConnectionPool(db, config)

	ctx := context.Background()
	if err := applyPragmas(ctx, db, config); err != nil {
		_ = db.Close()
		return nil, err
	}

	if _, err := db.ExecContext(ctx, ddl); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	if config.verbose {
		logger := slog.Default().With(slog.String("component", "eventdb"))
		logging.LogOperation(logger, "database_opened",
			slog.String("path", config.DBPath),
			slog.String("env", config.Env.String()))
	}

	return &Client{
		config:  config,
		DB:      db,
		Queries: New(db),
	}, nil
}

// Close closes the database connection
func (c *Client) Close() error {
	return c.DB.Close()
}

// An in-memory database only lives as long as its connection, so the pool
// must never hold more than one.
func configureConnectionPool(db *sql.DB, config Config) {
	if config.isInMemory() {
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(0)
		return
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
}

func applyPragmas(ctx context.Context, db *sql.DB, config Config) error {
	pragmas := []string{
		"PRAGMA cache_size = -64000",
		"PRAGMA temp_store = MEMORY",
		"PRAGMA busy_timeout = 5000",
	}
	if !config.isInMemory() {
		pragmas = append(pragmas, "PRAGMA journal_mode = WAL", "PRAGMA synchronous = NORMAL")
	}

	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			return fmt.Errorf("failed to apply %q: %w", pragma, err)
		}
	}
	return nil
}
