package scoring

import (
	"math"
	"strings"
)

// BudgetScore rewards affordable events. Within budget the score runs from 0.6
// (price == budget) to 1.0 (free); over budget it falls from 0.3 to 0 at twice
// the budget. A non-positive budget scores 0.
func BudgetScore(price, budget float64) float64 {
	if budget <= 0 {
		return 0.0
	}
	if price <= budget {
		return 0.6 + (1-price/budget)*0.4
	}
	excess := math.Min((price-budget)/budget, 1.0)
	return math.Max(0.0, 0.3*(1-excess))
}

// GenreScore is 1.0 when the genre is one of the preferred genres, ignoring case.
func GenreScore(genre string, preferred []string) float64 {
	for _, p := range preferred {
		if strings.EqualFold(genre, p) {
			return 1.0
		}
	}
	return 0.0
}

// DistanceScore maps kilometers to [0,1]:
// <=5 km is 1.0, 5-20 km falls to 0.4, 20-100 km falls to 0.1 and beyond that
// the score decays by 0.01 per 100 km until it reaches 0.
func DistanceScore(km float64) float64 {
	switch {
	case km < 0:
		return 0.0
	case km <= 5:
		return 1.0
	case km <= 20:
		return 1.0 - (km-5)/15*0.6
	case km <= 100:
		return 0.4 - (km-20)/80*0.3
	default:
		return math.Max(0.0, 0.1-(km-100)/10000)
	}
}

// FoodScore is 1.0 on a case-insensitive match and 0.2 otherwise.
func FoodScore(eventFood, preference string) float64 {
	if strings.EqualFold(eventFood, preference) {
		return 1.0
	}
	return 0.2
}

// AvoidCrowdsPenalty is applied to the crowd score when the user avoids crowds.
const AvoidCrowdsPenalty = 0.7
