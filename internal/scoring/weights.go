package scoring

import (
	"fmt"

	"eventrec.dev/internal/models"
)

// Weights holds one weight per factor. A zero weight disables the factor.
type Weights struct {
	Budget   float64
	Genre    float64
	Distance float64
	Food     float64
	Temporal float64
	Weather  float64
	Crowd    float64
}

// ContextualWeights is the seven factor set. It sums to 1.14 and is normalized by the engine.
func ContextualWeights() Weights {
	return Weights{
		Budget:   0.30,
		Genre:    0.25,
		Distance: 0.20,
		Food:     0.15,
		Temporal: 0.10,
		Weather:  0.08,
		Crowd:    0.06,
	}
}

// BasicWeights uses only the preference factors.
func BasicWeights() Weights {
	return Weights{
		Budget:   0.35,
		Genre:    0.30,
		Distance: 0.20,
		Food:     0.15,
	}
}

// WeightsForProfile resolves a configured profile name.
func WeightsForProfile(profile string) (Weights, error) {
	switch profile {
	case "", "contextual":
		return ContextualWeights(), nil
	case "basic":
		return BasicWeights(), nil
	default:
		return Weights{}, fmt.Errorf("unknown weight profile %q", profile)
	}
}

func (w Weights) Sum() float64 {
	return w.Budget + w.Genre + w.Distance + w.Food + w.Temporal + w.Weather + w.Crowd
}

// Normalized scales the weights so they sum to 1.
func (w Weights) Normalized() Weights {
	sum := w.Sum()
	if sum <= 0 {
		return w
	}
	return Weights{
		Budget:   w.Budget / sum,
		Genre:    w.Genre / sum,
		Distance: w.Distance / sum,
		Food:     w.Food / sum,
		Temporal: w.Temporal / sum,
		Weather:  w.Weather / sum,
		Crowd:    w.Crowd / sum,
	}
}

// For returns the weight of a named factor.
func (w Weights) For(factor string) float64 {
	switch factor {
	case models.FactorBudget:
		return w.Budget
	case models.FactorGenre:
		return w.Genre
	case models.FactorDistance:
		return w.Distance
	case models.FactorFood:
		return w.Food
	case models.FactorTemporal:
		return w.Temporal
	case models.FactorWeather:
		return w.Weather
	case models.FactorCrowd:
		return w.Crowd
	default:
		return 0
	}
}

func (w Weights) validate() error {
	for _, v := range []float64{w.Budget, w.Genre, w.Distance, w.Food, w.Temporal, w.Weather, w.Crowd} {
		if v < 0 {
			return fmt.Errorf("weights must not be negative")
		}
	}
	if w.Sum() <= 0 {
		return fmt.Errorf("at least one weight must be positive")
	}
	return nil
}
