package appconf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *JSONConfig {
	return &JSONConfig{
		Port:      4000,
		Env:       "development",
		ApiKeys:   []string{"test"},
		RateLimit: 100,
	}
}

func TestLoadFromFile_ValidConfig(t *testing.T) {
	config, err := LoadFromFile("../../testdata/config_valid.json")
	require.NoError(t, err)
	require.NotNil(t, config)

	assert.Equal(t, 3000, config.Port)
	assert.Equal(t, "development", config.Env)

	// Defaults
	assert.Equal(t, []string{"test"}, config.ApiKeys)
	assert.Equal(t, 100, config.RateLimit)
	assert.Equal(t, "./data/events_seed.csv", config.Catalog.Source)
	assert.Equal(t, WeightProfileContextual, config.Scoring.WeightProfile)
	assert.Equal(t, TemporalModelStepped, config.Scoring.TemporalModel)
	assert.Equal(t, "./eventrec.db", config.DataPath)
}

func TestLoadFromFile_FullConfig(t *testing.T) {
	config, err := LoadFromFile("../../testdata/config_full.json")
	require.NoError(t, err)
	require.NotNil(t, config)

	assert.Equal(t, 8080, config.Port)
	assert.Equal(t, "production", config.Env)
	assert.Equal(t, []string{"key1", "key2", "key3"}, config.ApiKeys)
	assert.Equal(t, 50, config.RateLimit)
	assert.Equal(t, "https://example.com/events.csv.gz", config.Catalog.Source)
	assert.Equal(t, "Authorization", config.Catalog.AuthHeaderName)
	assert.Equal(t, "Bearer token456", config.Catalog.AuthHeaderValue)
	assert.Equal(t, "15m", config.Catalog.RefreshInterval)
	assert.Equal(t, WeightProfileBasic, config.Scoring.WeightProfile)
	assert.Equal(t, TemporalModelGradual, config.Scoring.TemporalModel)
	assert.True(t, config.Scoring.LiveCrowd)
	assert.Equal(t, "/data/eventrec.db", config.DataPath)
}

func TestLoadFromFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		message string
	}{
		{"malformed JSON", "../../testdata/config_malformed.json", "failed to parse JSON config"},
		{"invalid values", "../../testdata/config_invalid.json", "invalid configuration"},
		{"missing file", "nonexistent.json", "failed to stat config file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := LoadFromFile(tt.path)
			require.Error(t, err)
			assert.Nil(t, config)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *JSONConfig)
		message string
	}{
		{"port too low", func(c *JSONConfig) { c.Port = 0 }, "port must be between"},
		{"port negative", func(c *JSONConfig) { c.Port = -1 }, "port must be between"},
		{"port too high", func(c *JSONConfig) { c.Port = 99999 }, "port must be between"},
		{"unknown env", func(c *JSONConfig) { c.Env = "staging" }, "env must be one of"},
		{"zero rate limit", func(c *JSONConfig) { c.RateLimit = 0 }, "rate-limit must be at least 1"},
		{"no api keys", func(c *JSONConfig) { c.ApiKeys = []string{} }, "api-keys cannot be empty"},
		{"blank api key", func(c *JSONConfig) { c.ApiKeys = []string{"key1", "", "key2"} }, "api-keys cannot contain empty strings"},
		{"duplicate api key", func(c *JSONConfig) { c.ApiKeys = []string{"key1", "key2", "key1"} }, "duplicate API key found"},
		{"unpaired auth header", func(c *JSONConfig) { c.Catalog.AuthHeaderName = "Authorization" }, "both auth-header-name and auth-header-value"},
		{"bad refresh interval", func(c *JSONConfig) { c.Catalog.RefreshInterval = "soon" }, "catalog.refresh-interval"},
		{"negative refresh interval", func(c *JSONConfig) { c.Catalog.RefreshInterval = "-1m" }, "must not be negative"},
		{"unknown weight profile", func(c *JSONConfig) { c.Scoring.WeightProfile = "fancy" }, "scoring.weight-profile"},
		{"unknown temporal model", func(c *JSONConfig) { c.Scoring.TemporalModel = "linear" }, "scoring.temporal-model"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := validConfig()
			tt.mutate(config)
			err := config.validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestValidate_PathTraversalDataPath(t *testing.T) {
	tests := []struct {
		name      string
		dataPath  string
		shouldErr bool
	}{
		{"traversal with dots", "../../../etc/passwd", true},
		{"relative traversal", "../../data.db", true},
		{"valid relative", "./eventrec.db", false},
		{"valid absolute", "/data/eventrec.db", false},
		{"valid current dir", "eventrec.db", false},
		{"special :memory:", ":memory:", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := validConfig()
			config.DataPath = tt.dataPath
			err := config.validate()
			if tt.shouldErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "data-path")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_CatalogSource(t *testing.T) {
	tests := []struct {
		name      string
		source    string
		errSubstr string
	}{
		{"lowercase file://", "file:///etc/passwd", "file:// URLs are not allowed"},
		{"uppercase FILE://", "FILE:///etc/passwd", "file:// URLs are not allowed"},
		{"relative traversal", "../../secret.csv", "catalog.source"},
		{"current dir with traversal", "./../../secret.csv", "catalog.source"},
		{"valid absolute path", "/data/events.csv", ""},
		{"valid relative path", "./data/events.csv", ""},
		{"http URL with dots", "https://example.com/../../events.csv", ""},
		{"https URL", "https://example.com/events.csv.gz", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := validConfig()
			config.Catalog.Source = tt.source
			err := config.validate()
			if tt.errSubstr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}
}

func TestSetDefaults_PartialConfig(t *testing.T) {
	config := &JSONConfig{
		Port:    8080,
		ApiKeys: []string{"custom-key"},
		Scoring: ScoringOptions{TemporalModel: TemporalModelGradual},
	}
	config.setDefaults()

	assert.Equal(t, 8080, config.Port)
	assert.Equal(t, []string{"custom-key"}, config.ApiKeys)
	assert.Equal(t, TemporalModelGradual, config.Scoring.TemporalModel)

	assert.Equal(t, "development", config.Env)
	assert.Equal(t, 100, config.RateLimit)
	assert.Equal(t, WeightProfileContextual, config.Scoring.WeightProfile)
}

func TestToAppConfig(t *testing.T) {
	jsonConfig := &JSONConfig{
		Port:      8080,
		Env:       "production",
		ApiKeys:   []string{"key1", "key2"},
		RateLimit: 50,
	}

	appConfig := jsonConfig.ToAppConfig()

	assert.Equal(t, 8080, appConfig.Port)
	assert.Equal(t, Production, appConfig.Env)
	assert.Equal(t, []string{"key1", "key2"}, appConfig.ApiKeys)
	assert.Equal(t, 50, appConfig.RateLimit)
	assert.True(t, appConfig.Verbose)
}

func TestToCatalogConfig(t *testing.T) {
	jsonConfig := &JSONConfig{
		Catalog: CatalogSource{
			Source:          "https://example.com/events.csv",
			AuthHeaderName:  "X-API-Key",
			AuthHeaderValue: "secret123",
			RefreshInterval: "30m",
		},
	}

	catalogConfig := jsonConfig.ToCatalogConfig()

	assert.Equal(t, "https://example.com/events.csv", catalogConfig.Source)
	assert.Equal(t, "X-API-Key", catalogConfig.AuthHeaderKey)
	assert.Equal(t, "secret123", catalogConfig.AuthHeaderValue)
	assert.Equal(t, 30*time.Minute, catalogConfig.RefreshInterval)
	assert.True(t, catalogConfig.Verbose)

	jsonConfig.Catalog.RefreshInterval = ""
	assert.Zero(t, jsonConfig.ToCatalogConfig().RefreshInterval)
}

func TestToScoringConfig(t *testing.T) {
	jsonConfig := &JSONConfig{
		Scoring: ScoringOptions{
			WeightProfile: WeightProfileBasic,
			TemporalModel: TemporalModelGradual,
			LiveCrowd:     true,
		},
	}

	scoringConfig := jsonConfig.ToScoringConfig()

	assert.Equal(t, WeightProfileBasic, scoringConfig.WeightProfile)
	assert.Equal(t, TemporalModelGradual, scoringConfig.TemporalModel)
	assert.True(t, scoringConfig.LiveCrowd)
}
