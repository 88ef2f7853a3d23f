package scoring

import (
	"slices"
	"strings"

	"eventrec.dev/internal/models"
)

const (
	explanationFactors   = 3
	explanationSeparator = " | "
)

// Explain joins the descriptions of the factors that contributed most to the
// score. Equal contributions keep breakdown order.
func (e *Engine) Explain(breakdown models.ScoreBreakdown) string {
	type contribution struct {
		value       float64
		description string
	}

	contributions := make([]contribution, 0, len(breakdown))
	for _, f := range breakdown {
		contributions = append(contributions, contribution{
			value:       f.Value * e.weights.For(f.Name),
			description: f.Description,
		})
	}

	slices.SortStableFunc(contributions, func(a, b contribution) int {
		switch {
		case a.value > b.value:
			return -1
		case a.value < b.value:
			return 1
		default:
			return 0
		}
	})

	parts := make([]string, 0, explanationFactors)
	for i := 0; i < len(contributions) && i < explanationFactors; i++ {
		parts = append(parts, contributions[i].description)
	}
	return strings.Join(parts, explanationSeparator)
}
