package contextual

import "strings"

// DefaultEventType is assumed when an event carries no type tag.
const DefaultEventType = "indoor"

var weatherExposedTypes = map[string]bool{
	"outdoor":  true,
	"festival": true,
	"open-air": true,
}

// WeatherScore returns 0.6 for weather-exposed event types and 1.0 otherwise.
func WeatherScore(eventType string) float64 {
	if weatherExposedTypes[strings.ToLower(strings.TrimSpace(eventType))] {
		return 0.6
	}
	return 1.0
}
