package eventdb

import "eventrec.dev/internal/appconf"

// Config holds configuration options for the Client
type Config struct {
	DBPath  string              // Path to SQLite database file, or ":memory:"
	Env     appconf.Environment // Environment name: development, test, production.
	verbose bool                // Enable verbose logging
}

func NewConfig(dbPath string, env appconf.Environment, verbose bool) Config {
	return Config{
		DBPath:  dbPath,
		Env:     env,
		verbose: verbose,
	}
}

func (c Config) isInMemory() bool {
	return c.DBPath == ":memory:"
}
