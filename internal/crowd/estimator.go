package crowd

import (
	"context"
	"fmt"
	"math"

	"eventrec.dev/eventdb"
	"eventrec.dev/internal/contextual"
	"eventrec.dev/internal/models"
)

// saturationCount is the number of INTERESTED signals at which an event counts as fully crowded.
const saturationCount = 50

// InteractionCounter is the slice of the interaction store the estimator reads from.
type InteractionCounter interface {
	CountInteractionsForEvent(ctx context.Context, arg eventdb.CountInteractionsForEventParams) (int64, error)
	CountInteractionsByType(ctx context.Context, interactionType string) ([]eventdb.CountInteractionsByTypeRow, error)
}

// Estimator derives crowd levels from user interest signals.
type Estimator struct {
	store InteractionCounter
}

func NewEstimator(store InteractionCounter) *Estimator {
	return &Estimator{store: store}
}

// Estimate counts the INTERESTED interactions recorded for eventID.
func (e *Estimator) Estimate(ctx context.Context, eventID string) (models.CrowdEstimate, error) {
	count, err := e.store.CountInteractionsForEvent(ctx, eventdb.CountInteractionsForEventParams{
		EventID:         eventID,
		InteractionType: models.InteractionInterested,
	})
	if err != nil {
		return models.CrowdEstimate{}, fmt.Errorf("counting interest for event %s: %w", eventID, err)
	}

	score := scoreForCount(count)
	return models.CrowdEstimate{
		EventID:       eventID,
		Score:         math.Round(score*100) / 100,
		Level:         LevelForScore(score),
		InterestCount: count,
	}, nil
}

// LevelsByEvent returns the estimated level of every event with at least one
// INTERESTED interaction. Events missing from the map have no signal.
func (e *Estimator) LevelsByEvent(ctx context.Context) (map[string]string, error) {
	rows, err := e.store.CountInteractionsByType(ctx, models.InteractionInterested)
	if err != nil {
		return nil, fmt.Errorf("counting interest by event: %w", err)
	}

	levels := make(map[string]string, len(rows))
	for _, row := range rows {
		levels[row.EventID] = LevelForScore(scoreForCount(row.InteractionCount))
	}
	return levels, nil
}

// LevelForScore buckets a crowd score: below 0.3 is LOW, below 0.6 MEDIUM, otherwise HIGH.
func LevelForScore(score float64) string {
	switch {
	case score < 0.3:
		return contextual.CrowdLow
	case score < 0.6:
		return contextual.CrowdMedium
	default:
		return contextual.CrowdHigh
	}
}

func scoreForCount(count int64) float64 {
	return math.Min(float64(count)/saturationCount, 1.0)
}
