package appconf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvFlagToEnvironment(t *testing.T) {
	tests := []struct {
		name     string
		envFlag  string
		expected Environment
	}{
		{"Development environment", "development", Development},
		{"Test environment", "test", Test},
		{"Production environment", "production", Production},
		{"Unknown environment defaults to Development", "unknown", Development},
		{"Empty string defaults to Development", "", Development},
		{"Uppercase defaults to Development", "PRODUCTION", Development},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EnvFlagToEnvironment(tt.envFlag))
		})
	}
}

func TestEnvironmentConstants(t *testing.T) {
	assert.Equal(t, Environment(0), Development)
	assert.Equal(t, Environment(1), Test)
	assert.Equal(t, Environment(2), Production)
}

func TestEnvironmentString(t *testing.T) {
	for _, env := range []Environment{Development, Test, Production} {
		assert.Equal(t, env, EnvFlagToEnvironment(env.String()))
	}
}

func TestDefaultScoringConfig(t *testing.T) {
	cfg := DefaultScoringConfig()
	assert.Equal(t, WeightProfileContextual, cfg.WeightProfile)
	assert.Equal(t, TemporalModelStepped, cfg.TemporalModel)
	assert.False(t, cfg.LiveCrowd)
}
