package utils

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const maxIDLength = 128

// ExtractIDFromParams returns the {id} path value of the request.
func ExtractIDFromParams(r *http.Request) string {
	return r.PathValue("id")
}

// ValidateID rejects empty, oversized or control-character identifiers.
func ValidateID(id string) error {
	if strings.TrimSpace(id) == "" {
		return errors.New("id cannot be empty")
	}
	if len(id) > maxIDLength {
		return errors.New("id is too long")
	}
	for _, r := range id {
		if r < 0x20 || r == 0x7f {
			return errors.New("id contains invalid characters")
		}
	}
	return nil
}

// ParseFloatParam parses an optional float query parameter. A missing or empty
// value yields 0 and no error; an invalid one is recorded in fieldErrors.
func ParseFloatParam(params url.Values, key string, fieldErrors map[string][]string) (float64, map[string][]string) {
	raw := params.Get(key)
	if raw == "" {
		return 0, fieldErrors
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		if fieldErrors == nil {
			fieldErrors = make(map[string][]string)
		}
		fieldErrors[key] = append(fieldErrors[key], "Invalid field value for field \""+key+"\".")
		return 0, fieldErrors
	}
	return value, fieldErrors
}

// ParseIntParam is the integer counterpart of ParseFloatParam.
func ParseIntParam(params url.Values, key string, fieldErrors map[string][]string) (int, map[string][]string) {
	raw := params.Get(key)
	if raw == "" {
		return 0, fieldErrors
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		if fieldErrors == nil {
			fieldErrors = make(map[string][]string)
		}
		fieldErrors[key] = append(fieldErrors[key], "Invalid field value for field \""+key+"\".")
		return 0, fieldErrors
	}
	return value, fieldErrors
}
