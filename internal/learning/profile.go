package learning

import (
	"context"
	"fmt"
	"strings"

	"eventrec.dev/eventdb"
	"eventrec.dev/internal/models"
)

// GenreBiasWeight scales a genre bias count into a relevance adjustment.
const GenreBiasWeight = 0.05

// InteractionLister reads one user's interaction history.
type InteractionLister interface {
	ListInteractionsByUser(ctx context.Context, userID string) ([]eventdb.EventInteraction, error)
}

// UserProfile is the learned view of one user's interactions.
//
// Interactions only record event ids, so the genre and crowd biases have no
// data to learn from and stay at zero. Adjustment is therefore a no-op until
// interactions carry event metadata.
type UserProfile struct {
	UserID        string
	GenreBias     map[string]int
	CrowdBias     float64
	InterestCount int
	DislikeCount  int
}

// BuildProfile tallies the user's interactions.
func BuildProfile(ctx context.Context, store InteractionLister, userID string) (*UserProfile, error) {
	interactions, err := store.ListInteractionsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading interactions for user %s: %w", userID, err)
	}

	profile := &UserProfile{
		UserID:    userID,
		GenreBias: make(map[string]int),
	}
	for _, i := range interactions {
		switch i.InteractionType {
		case models.InteractionInterested:
			profile.InterestCount++
		case models.InteractionNotInterested:
			profile.DislikeCount++
		}
	}
	return profile, nil
}

// Adjustment is added to an event's relevance score. The crowd bias only
// applies when the event was scored on crowd level.
func (p *UserProfile) Adjustment(genre string, hasCrowdFactor bool) float64 {
	if p == nil {
		return 0
	}
	adjustment := float64(p.GenreBias[strings.ToLower(genre)]) * GenreBiasWeight
	if hasCrowdFactor {
		adjustment += p.CrowdBias
	}
	return adjustment
}
