package models

const (
	DefaultTopN = 10
	MaxTopN     = 100
)

// Sort modes accepted by the recommender. Anything else ranks as SortBest.
const (
	SortBest     = "best"
	SortDistance = "distance"
	SortBudget   = "budget"
	SortCrowd    = "crowd"
	SortWeather  = "weather"
)

// Scoring factor names, in breakdown order.
const (
	FactorBudget   = "budget"
	FactorGenre    = "genre"
	FactorDistance = "distance"
	FactorFood     = "food_preference"
	FactorTemporal = "temporal"
	FactorWeather  = "weather"
	FactorCrowd    = "crowd"
)

const (
	InteractionInterested    = "INTERESTED"
	InteractionNotInterested = "NOT_INTERESTED"
)

// Match labels derived from a relevance score.
const (
	MatchExcellent = "EXCELLENT"
	MatchGood      = "GOOD"
	MatchFair      = "FAIR"
	MatchConsider  = "CONSIDER"
)
