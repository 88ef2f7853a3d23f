package appconf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

const maxConfigFileSize = 10 * 1024 * 1024

// CatalogSource is the "catalog" block of the JSON config file.
type CatalogSource struct {
	Source          string `json:"source"`
	AuthHeaderName  string `json:"auth-header-name"`
	AuthHeaderValue string `json:"auth-header-value"`
	RefreshInterval string `json:"refresh-interval"`
}

// ScoringOptions is the "scoring" block of the JSON config file.
type ScoringOptions struct {
	WeightProfile string `json:"weight-profile"`
	TemporalModel string `json:"temporal-model"`
	LiveCrowd     bool   `json:"live-crowd"`
}

// JSONConfig is the on-disk configuration format.
type JSONConfig struct {
	Port      int            `json:"port"`
	Env       string         `json:"env"`
	ApiKeys   []string       `json:"api-keys"`
	RateLimit int            `json:"rate-limit"`
	Catalog   CatalogSource  `json:"catalog"`
	Scoring   ScoringOptions `json:"scoring"`
	DataPath  string         `json:"data-path"`
}

// LoadFromFile reads, defaults and validates a JSON config file.
func LoadFromFile(path string) (*JSONConfig, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.Size() > maxConfigFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxConfigFileSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config JSONConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse JSON config: %w", err)
	}

	config.setDefaults()

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func (c *JSONConfig) setDefaults() {
	if c.Port == 0 {
		c.Port = 4000
	}
	if c.Env == "" {
		c.Env = "development"
	}
	if len(c.ApiKeys) == 0 {
		c.ApiKeys = []string{"test"}
	}
	if c.RateLimit == 0 {
		c.RateLimit = 100
	}
	if c.Catalog.Source == "" {
		c.Catalog.Source = "./data/events_seed.csv"
	}
	if c.Scoring.WeightProfile == "" {
		c.Scoring.WeightProfile = WeightProfileContextual
	}
	if c.Scoring.TemporalModel == "" {
		c.Scoring.TemporalModel = TemporalModelStepped
	}
	if c.DataPath == "" {
		c.DataPath = "./eventrec.db"
	}
}

func (c *JSONConfig) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", c.Port)
	}

	switch c.Env {
	case "development", "test", "production":
	default:
		return fmt.Errorf("env must be one of: development, test, production; got %q", c.Env)
	}

	if c.RateLimit < 1 {
		return fmt.Errorf("rate-limit must be at least 1, got %d", c.RateLimit)
	}

	if len(c.ApiKeys) == 0 {
		return fmt.Errorf("api-keys cannot be empty")
	}
	seen := make(map[string]bool, len(c.ApiKeys))
	for _, key := range c.ApiKeys {
		if key == "" {
			return fmt.Errorf("api-keys cannot contain empty strings")
		}
		if seen[key] {
			return fmt.Errorf("duplicate API key found: %q", key)
		}
		seen[key] = true
	}

	if err := validateCatalogSource(c.Catalog.Source); err != nil {
		return fmt.Errorf("catalog.source: %w", err)
	}

	if (c.Catalog.AuthHeaderName == "") != (c.Catalog.AuthHeaderValue == "") {
		return fmt.Errorf("catalog: both auth-header-name and auth-header-value must be provided together")
	}

	if c.Catalog.RefreshInterval != "" {
		d, err := time.ParseDuration(c.Catalog.RefreshInterval)
		if err != nil {
			return fmt.Errorf("catalog.refresh-interval: %w", err)
		}
		if d < 0 {
			return fmt.Errorf("catalog.refresh-interval must not be negative")
		}
	}

	switch c.Scoring.WeightProfile {
	case "", WeightProfileContextual, WeightProfileBasic:
	default:
		return fmt.Errorf("scoring.weight-profile must be one of: contextual, basic; got %q", c.Scoring.WeightProfile)
	}

	switch c.Scoring.TemporalModel {
	case "", TemporalModelStepped, TemporalModelGradual:
	default:
		return fmt.Errorf("scoring.temporal-model must be one of: stepped, gradual; got %q", c.Scoring.TemporalModel)
	}

	if c.DataPath != "" && c.DataPath != ":memory:" && hasParentTraversal(c.DataPath) {
		return fmt.Errorf("data-path must not contain path traversal: %q", c.DataPath)
	}

	return nil
}

func validateCatalogSource(source string) error {
	lower := strings.ToLower(source)
	if strings.HasPrefix(lower, "file://") {
		return fmt.Errorf("file:// URLs are not allowed, use a plain path")
	}
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return nil
	}
	if hasParentTraversal(source) {
		return fmt.Errorf("path must not contain path traversal: %q", source)
	}
	return nil
}

func hasParentTraversal(path string) bool {
	if filepath.IsAbs(path) {
		return false
	}
	cleaned := filepath.Clean(path)
	return cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator))
}

// ToAppConfig converts the file format into the runtime Config.
func (c *JSONConfig) ToAppConfig() Config {
	return Config{
		Port:      c.Port,
		Env:       EnvFlagToEnvironment(c.Env),
		ApiKeys:   c.ApiKeys,
		Verbose:   true,
		RateLimit: c.RateLimit,
	}
}

// ToCatalogConfig converts the catalog block. An unparsable interval has
// already been rejected by validate, so it is treated as disabled here.
func (c *JSONConfig) ToCatalogConfig() CatalogConfig {
	var interval time.Duration
	if c.Catalog.RefreshInterval != "" {
		interval, _ = time.ParseDuration(c.Catalog.RefreshInterval)
	}
	return CatalogConfig{
		Source:          c.Catalog.Source,
		AuthHeaderKey:   c.Catalog.AuthHeaderName,
		AuthHeaderValue: c.Catalog.AuthHeaderValue,
		RefreshInterval: interval,
		Verbose:         true,
	}
}

// ToScoringConfig converts the scoring block.
func (c *JSONConfig) ToScoringConfig() ScoringConfig {
	return ScoringConfig{
		WeightProfile: c.Scoring.WeightProfile,
		TemporalModel: c.Scoring.TemporalModel,
		LiveCrowd:     c.Scoring.LiveCrowd,
	}
}
