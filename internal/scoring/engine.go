package scoring

import (
	"fmt"
	"strings"

	"eventrec.dev/internal/contextual"
	"eventrec.dev/internal/models"
	"eventrec.dev/internal/utils"
)

// Engine combines the factor scores of an event into one relevance score.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	weights  Weights
	temporal *contextual.TemporalScorer
}

// NewEngine normalizes the weights so an unadjusted score stays within [0,1].
func NewEngine(weights Weights, temporal *contextual.TemporalScorer) (*Engine, error) {
	if err := weights.validate(); err != nil {
		return nil, err
	}
	if weights.Temporal > 0 && temporal == nil {
		return nil, fmt.Errorf("temporal factor is weighted but no temporal scorer was given")
	}
	return &Engine{weights: weights.Normalized(), temporal: temporal}, nil
}

// Weights returns the normalized weights in use.
func (e *Engine) Weights() Weights {
	return e.weights
}

// Score computes the distance from the user to the event and scores it.
func (e *Engine) Score(event models.Event, prefs models.UserPreferences) (float64, models.ScoreBreakdown) {
	km := utils.Haversine(prefs.Latitude, prefs.Longitude, event.Latitude, event.Longitude)
	return e.ScoreAt(event, prefs, km)
}

// ScoreAt scores an event whose distance from the user is already known.
func (e *Engine) ScoreAt(event models.Event, prefs models.UserPreferences, distanceKm float64) (float64, models.ScoreBreakdown) {
	breakdown := make(models.ScoreBreakdown, 0, 7)
	var total float64

	add := func(name string, weight, value float64, description string) {
		if weight <= 0 {
			return
		}
		breakdown = append(breakdown, models.FactorScore{Name: name, Value: value, Description: description})
		total += value * weight
	}

	add(models.FactorBudget, e.weights.Budget,
		BudgetScore(event.TicketPrice, prefs.Budget),
		fmt.Sprintf("Budget match: Event ticket $%.2f vs budget $%.2f", event.TicketPrice, prefs.Budget))

	add(models.FactorGenre, e.weights.Genre,
		GenreScore(event.Genre, prefs.PreferredGenres),
		fmt.Sprintf("Genre match: Event genre '%s' vs preferences [%s]", event.Genre, strings.Join(prefs.PreferredGenres, ", ")))

	add(models.FactorDistance, e.weights.Distance,
		DistanceScore(distanceKm),
		fmt.Sprintf("Location proximity: %.1f km away", distanceKm))

	add(models.FactorFood, e.weights.Food,
		FoodScore(event.FoodType, prefs.FoodPreference),
		fmt.Sprintf("Food preference match: Event food '%s' vs preference '%s'", event.FoodType, prefs.FoodPreference))

	if e.weights.Temporal > 0 {
		add(models.FactorTemporal, e.weights.Temporal,
			e.temporal.Score(event.Date),
			"Event timing: "+describeTiming(event.Date, e.temporal))
	}

	eventType := event.EventType
	if eventType == "" {
		eventType = contextual.DefaultEventType
	}
	add(models.FactorWeather, e.weights.Weather,
		contextual.WeatherScore(eventType),
		fmt.Sprintf("Weather suitability: %s event", strings.ToLower(eventType)))

	crowdLevel := contextual.NormalizeCrowdLevel(event.CrowdLevel)
	if crowdLevel == "" {
		crowdLevel = contextual.CrowdMedium
	}
	crowd := contextual.CrowdScore(crowdLevel)
	crowdDescription := fmt.Sprintf("Crowd level: %s", crowdLevel)
	if prefs.AvoidCrowds {
		crowd *= AvoidCrowdsPenalty
		crowdDescription += " (avoiding crowds)"
	}
	add(models.FactorCrowd, e.weights.Crowd, crowd, crowdDescription)

	return total, breakdown
}

func describeTiming(date string, temporal *contextual.TemporalScorer) string {
	days, err := contextual.DaysUntil(date, temporal.Clock.Now())
	switch {
	case err != nil:
		return "date unknown"
	case days < 0:
		return "already happened"
	case days == 0:
		return "today"
	case days == 1:
		return "tomorrow"
	default:
		return fmt.Sprintf("in %d days", days)
	}
}
