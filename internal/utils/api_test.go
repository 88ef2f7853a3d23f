package utils

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractIDFromParams(t *testing.T) {
	var got string
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/events/{id}", func(w http.ResponseWriter, r *http.Request) {
		got = ExtractIDFromParams(r)
	})

	mux.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/events/evt-42", nil))
	assert.Equal(t, "evt-42", got)
}

func TestValidateID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"simple id", "1", false},
		{"slug id", "jazz-night-2025", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"too long", strings.Repeat("a", 129), true},
		{"control character", "evt\x00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateID(tt.id)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseFloatParam(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		expected  float64
		hasErrors bool
	}{
		{"valid value", "max_distance_km=12.5", 12.5, false},
		{"missing value", "", 0, false},
		{"empty value", "max_distance_km=", 0, false},
		{"invalid value", "max_distance_km=far", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			value, fieldErrors := ParseFloatParam(params, "max_distance_km", nil)
			assert.Equal(t, tt.expected, value)
			if tt.hasErrors {
				assert.Contains(t, fieldErrors, "max_distance_km")
			} else {
				assert.Empty(t, fieldErrors)
			}
		})
	}
}

func TestParseIntParam(t *testing.T) {
	params := url.Values{"top_n": {"5"}, "bad": {"five"}}
	fieldErrors := map[string][]string{}

	value, fieldErrors := ParseIntParam(params, "top_n", fieldErrors)
	assert.Equal(t, 5, value)
	assert.Empty(t, fieldErrors)

	value, fieldErrors = ParseIntParam(params, "bad", fieldErrors)
	assert.Equal(t, 0, value)
	assert.Len(t, fieldErrors["bad"], 1)
}
