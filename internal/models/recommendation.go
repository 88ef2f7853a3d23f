package models

import "github.com/goccy/go-json"

// FactorScore is one entry of a score breakdown.
type FactorScore struct {
	Name        string  `json:"-"`
	Value       float64 `json:"value"`
	Description string  `json:"description"`
}

// ScoreBreakdown lists the active factors in evaluation order.
type ScoreBreakdown []FactorScore

// Get returns the named factor and whether it is present.
func (b ScoreBreakdown) Get(name string) (FactorScore, bool) {
	for _, f := range b {
		if f.Name == name {
			return f, true
		}
	}
	return FactorScore{}, false
}

// Map returns the breakdown keyed by factor name for serialization.
func (b ScoreBreakdown) Map() map[string]FactorScore {
	out := make(map[string]FactorScore, len(b))
	for _, f := range b {
		out[f.Name] = f
	}
	return out
}

// MarshalJSON encodes the breakdown as an object keyed by factor name.
func (b ScoreBreakdown) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.Map())
}

type Recommendation struct {
	Event          EventSummary   `json:"event"`
	RelevanceScore float64        `json:"relevance_score"`
	DistanceKm     float64        `json:"distance_km"`
	Explanation    string         `json:"explanation"`
	MatchLabel     string         `json:"match_label"`
	ScoreBreakdown ScoreBreakdown `json:"score_breakdown"`
}

// MatchLabelForScore buckets a relevance score into a display label.
func MatchLabelForScore(score float64) string {
	switch {
	case score >= 0.9:
		return MatchExcellent
	case score >= 0.7:
		return MatchGood
	case score >= 0.5:
		return MatchFair
	default:
		return MatchConsider
	}
}

type CrowdEstimate struct {
	EventID       string  `json:"event_id"`
	Score         float64 `json:"score"`
	Level         string  `json:"level"`
	InterestCount int64   `json:"interest_count"`
}

func IsValidInteractionType(t string) bool {
	return t == InteractionInterested || t == InteractionNotInterested
}
