package contextual

import (
	"math"

	"eventrec.dev/internal/clock"
)

// NeutralTemporalScore is returned when an event date cannot be parsed.
const NeutralTemporalScore = 0.5

// TemporalModel maps a day count to a relevance score.
type TemporalModel func(daysUntil int) float64

// SteppedTemporal favours events happening today and within the next week.
func SteppedTemporal(daysUntil int) float64 {
	switch {
	case daysUntil < 0:
		return 0.0
	case daysUntil == 0:
		return 1.0
	case daysUntil <= 3:
		return 0.9
	case daysUntil <= 7:
		return 0.8
	default:
		return 0.6
	}
}

// GradualTemporal rises over the first week, holds for the month, then decays.
func GradualTemporal(daysUntil int) float64 {
	d := float64(daysUntil)
	switch {
	case daysUntil < 0:
		return 0.0
	case daysUntil <= 7:
		return math.Min(1.0, 0.5+d/14)
	case daysUntil <= 30:
		return 0.9
	case daysUntil <= 60:
		return math.Max(0.3, 0.9-(d-30)/100)
	default:
		return 0.1
	}
}

// TemporalScorer scores an event date relative to the clock's current UTC date.
type TemporalScorer struct {
	Clock clock.Clock
	Model TemporalModel
}

// NewTemporalScorer returns a scorer using the named model. Unknown names use the stepped model.
func NewTemporalScorer(c clock.Clock, model string) *TemporalScorer {
	m := SteppedTemporal
	if model == "gradual" {
		m = GradualTemporal
	}
	return &TemporalScorer{Clock: c, Model: m}
}

// Score returns NeutralTemporalScore for unparsable dates.
func (s *TemporalScorer) Score(eventDate string) float64 {
	days, err := DaysUntil(eventDate, s.Clock.Now())
	if err != nil {
		return NeutralTemporalScore
	}
	return s.Model(days)
}
