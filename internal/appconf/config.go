package appconf

import "time"

type Environment int

const (
	Development Environment = iota
	Test
	Production
)

// Config holds the runtime settings of the HTTP service.
type Config struct {
	Port      int
	Env       Environment
	ApiKeys   []string
	Verbose   bool
	RateLimit int // Requests per second per API key
}

// CatalogConfig describes where the event catalog comes from.
type CatalogConfig struct {
	Source          string // Local path or http(s) URL of the events CSV (optionally .gz)
	AuthHeaderKey   string
	AuthHeaderValue string
	RefreshInterval time.Duration // Zero disables periodic reloads
	Verbose         bool
}

// ScoringConfig selects the weight profile and context models.
type ScoringConfig struct {
	WeightProfile string // "contextual" or "basic"
	TemporalModel string // "stepped" or "gradual"
	LiveCrowd     bool   // Derive missing crowd levels from the interaction log
}

const (
	WeightProfileContextual = "contextual"
	WeightProfileBasic      = "basic"

	TemporalModelStepped = "stepped"
	TemporalModelGradual = "gradual"
)

// DefaultScoringConfig returns the contextual profile with stepped temporal scoring.
func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		WeightProfile: WeightProfileContextual,
		TemporalModel: TemporalModelStepped,
	}
}

// EnvFlagToEnvironment converts a lowercase environment name. Unknown values map to Development.
func EnvFlagToEnvironment(env string) Environment {
	switch env {
	case "development":
		return Development
	case "test":
		return Test
	case "production":
		return Production
	default:
		return Development
	}
}

func (e Environment) String() string {
	switch e {
	case Test:
		return "test"
	case Production:
		return "production"
	default:
		return "development"
	}
}
