package recommend

import (
	"cmp"
	"slices"

	"eventrec.dev/internal/models"
)

// Distance buckets used by the default ranking.
const (
	nearbyKm   = 50.0
	regionalKm = 200.0
)

func distanceBucket(km float64) int {
	switch {
	case km <= nearbyKm:
		return 0
	case km <= regionalKm:
		return 1
	default:
		return 2
	}
}

// ranked is a recommendation plus the unrounded distance used for ordering.
type ranked struct {
	models.Recommendation
	distanceKm float64
}

// sortRecommendations orders recs in place. All orderings are stable.
func sortRecommendations(recs []ranked, sortBy string) {
	switch sortBy {
	case models.SortDistance:
		slices.SortStableFunc(recs, func(a, b ranked) int {
			return cmp.Compare(a.distanceKm, b.distanceKm)
		})
		return
	case models.SortBudget:
		sortByFactorDesc(recs, models.FactorBudget)
		return
	case models.SortCrowd, models.SortWeather:
		factor := models.FactorCrowd
		if sortBy == models.SortWeather {
			factor = models.FactorWeather
		}
		if len(recs) > 0 {
			if _, ok := recs[0].ScoreBreakdown.Get(factor); ok {
				sortByFactorDesc(recs, factor)
				return
			}
		}
	}

	slices.SortStableFunc(recs, func(a, b ranked) int {
		if c := cmp.Compare(distanceBucket(a.distanceKm), distanceBucket(b.distanceKm)); c != 0 {
			return c
		}
		if c := cmp.Compare(b.RelevanceScore, a.RelevanceScore); c != 0 {
			return c
		}
		return cmp.Compare(a.distanceKm, b.distanceKm)
	})
}

func sortByFactorDesc(recs []ranked, factor string) {
	value := func(r ranked) float64 {
		f, _ := r.ScoreBreakdown.Get(factor)
		return f.Value
	}
	slices.SortStableFunc(recs, func(a, b ranked) int {
		return cmp.Compare(value(b), value(a))
	})
}
