package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"eventrec.dev/internal/clock"
)

func TestMatchLabelForScore(t *testing.T) {
	tests := []struct {
		score    float64
		expected string
	}{
		{1.2, MatchExcellent},
		{0.9, MatchExcellent},
		{0.899, MatchGood},
		{0.7, MatchGood},
		{0.5, MatchFair},
		{0.49, MatchConsider},
		{-0.1, MatchConsider},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, MatchLabelForScore(tt.score), "score=%v", tt.score)
	}
}

func TestScoreBreakdown(t *testing.T) {
	b := ScoreBreakdown{
		{Name: FactorBudget, Value: 0.8, Description: "budget"},
		{Name: FactorGenre, Value: 1.0, Description: "genre"},
	}

	f, ok := b.Get(FactorGenre)
	assert.True(t, ok)
	assert.Equal(t, 1.0, f.Value)

	_, ok = b.Get(FactorCrowd)
	assert.False(t, ok)

	m := b.Map()
	assert.Len(t, m, 2)
	assert.Equal(t, "budget", m[FactorBudget].Description)
}

func TestEventSummary(t *testing.T) {
	e := Event{ID: "7", Name: "Jazz Night", Genre: "Jazz", Date: "2025-06-20", TicketPrice: 35}
	assert.Equal(t, EventSummary{ID: "7", Name: "Jazz Night", Date: "2025-06-20", Genre: "Jazz"}, e.Summary())
}

func TestIsValidInteractionType(t *testing.T) {
	assert.True(t, IsValidInteractionType("INTERESTED"))
	assert.True(t, IsValidInteractionType("NOT_INTERESTED"))
	assert.False(t, IsValidInteractionType("interested"))
	assert.False(t, IsValidInteractionType(""))
}

func TestResponses(t *testing.T) {
	mock := clock.NewMockClock(time.UnixMilli(1750000000000))

	ok := NewOKResponseWithClock("payload", mock)
	assert.Equal(t, 200, ok.Code)
	assert.Equal(t, "OK", ok.Text)
	assert.Equal(t, 2, ok.Version)
	assert.Equal(t, int64(1750000000000), ok.CurrentTime)

	list := NewListResponseWithClock([]string{"a"}, true, mock)
	data := list.Data.(map[string]interface{})
	assert.Equal(t, true, data["limitExceeded"])
	assert.Equal(t, []string{"a"}, data["list"])

	entry := NewEntryResponseWithClock(42, mock)
	assert.Equal(t, 42, entry.Data.(map[string]interface{})["entry"])

	notFound := NewResponseWithClock(404, nil, "resource not found", mock)
	assert.Equal(t, 404, notFound.Code)
	assert.Nil(t, notFound.Data)
}

func TestScoreBreakdownMarshalJSON(t *testing.T) {
	b := ScoreBreakdown{{Name: FactorFood, Value: 0.2, Description: "Food preference match"}}

	data, err := b.MarshalJSON()
	assert.NoError(t, err)
	assert.JSONEq(t, `{"food_preference":{"value":0.2,"description":"Food preference match"}}`, string(data))
}
