package recommend

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"strings"
	"sync"
	"time"

	"eventrec.dev/internal/catalog"
	"eventrec.dev/internal/contextual"
	"eventrec.dev/internal/crowd"
	"eventrec.dev/internal/learning"
	"eventrec.dev/internal/metrics"
	"eventrec.dev/internal/models"
	"eventrec.dev/internal/scoring"
	"eventrec.dev/internal/utils"
)

// parallelThreshold is the candidate count below which scoring stays on the calling goroutine.
const parallelThreshold = 256

// CatalogProvider hands out the active catalog snapshot.
type CatalogProvider interface {
	Current() *catalog.Catalog
}

// Request is one recommendation query.
type Request struct {
	Preferences   models.UserPreferences
	UserID        string   // Optional; enables the learning adjustment
	MaxDistanceKm *float64 // Optional; events farther away are excluded
	SortBy        string
	TopN          int
}

// Recommender ranks catalog events against user preferences.
type Recommender struct {
	catalogs     CatalogProvider
	engine       *scoring.Engine
	interactions learning.InteractionLister
	liveCrowd    *crowd.Estimator
}

// NewRecommender wires the scoring pipeline. interactions may be nil to disable
// learning; liveCrowd may be nil to keep the catalog's crowd tags as they are.
func NewRecommender(catalogs CatalogProvider, engine *scoring.Engine, interactions learning.InteractionLister, liveCrowd *crowd.Estimator) *Recommender {
	return &Recommender{
		catalogs:     catalogs,
		engine:       engine,
		interactions: interactions,
		liveCrowd:    liveCrowd,
	}
}

// Engine returns the scoring engine in use.
func (r *Recommender) Engine() *scoring.Engine {
	return r.engine
}

// Recommend scores every candidate event, drops those scoring zero or less,
// sorts the rest and returns at most TopN of them.
func (r *Recommender) Recommend(ctx context.Context, req Request) ([]models.Recommendation, error) {
	start := time.Now()
	sortBy := NormalizeSortBy(req.SortBy)
	topN := req.TopN
	if topN <= 0 {
		topN = models.DefaultTopN
	}

	snapshot := r.catalogs.Current()
	if snapshot == nil {
		return nil, fmt.Errorf("no event catalog loaded")
	}

	prefs := req.Preferences
	candidates := snapshot.Events()
	if req.MaxDistanceKm != nil {
		candidates = snapshot.Within(prefs.Latitude, prefs.Longitude, *req.MaxDistanceKm)
	}

	var profile *learning.UserProfile
	if req.UserID != "" && r.interactions != nil {
		p, err := learning.BuildProfile(ctx, r.interactions, req.UserID)
		if err != nil {
			return nil, err
		}
		profile = p
	}

	var crowdLevels map[string]string
	if r.liveCrowd != nil {
		levels, err := r.liveCrowd.LevelsByEvent(ctx)
		if err != nil {
			return nil, err
		}
		crowdLevels = levels
	}

	scored, err := r.scoreAll(ctx, candidates, req, profile, crowdLevels)
	if err != nil {
		return nil, err
	}

	sortRecommendations(scored, sortBy)
	if len(scored) > topN {
		scored = scored[:topN]
	}

	recs := make([]models.Recommendation, len(scored))
	for i, s := range scored {
		recs[i] = s.Recommendation
	}

	metrics.RecordScoringPass(sortBy, len(candidates), len(recs), time.Since(start))
	return recs, nil
}

// scoreAll splits the candidates across workers. Results keep candidate order.
func (r *Recommender) scoreAll(ctx context.Context, candidates []models.Event, req Request, profile *learning.UserProfile, crowdLevels map[string]string) ([]ranked, error) {
	if len(candidates) == 0 {
		return []ranked{}, nil
	}

	results := make([]ranked, len(candidates))
	kept := make([]bool, len(candidates))

	workers := 1
	if len(candidates) >= parallelThreshold {
		workers = runtime.NumCPU()
	}
	chunkSize := (len(candidates) + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunkSize
		if start >= len(candidates) {
			break
		}
		end := min(start+chunkSize, len(candidates))

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				if ctx.Err() != nil {
					return
				}
				results[i], kept[i] = r.scoreOne(candidates[i], req, profile, crowdLevels)
			}
		}(start, end)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]ranked, 0, len(candidates))
	for i := range results {
		if kept[i] {
			out = append(out, results[i])
		}
	}
	return out, nil
}

func (r *Recommender) scoreOne(event models.Event, req Request, profile *learning.UserProfile, crowdLevels map[string]string) (ranked, bool) {
	prefs := req.Preferences
	km := utils.Haversine(prefs.Latitude, prefs.Longitude, event.Latitude, event.Longitude)
	if req.MaxDistanceKm != nil && km > *req.MaxDistanceKm {
		return ranked{}, false
	}

	if crowdLevels != nil && contextual.NormalizeCrowdLevel(event.CrowdLevel) == "" {
		event.CrowdLevel = contextual.CrowdLow
		if level, ok := crowdLevels[event.ID]; ok {
			event.CrowdLevel = level
		}
	}

	score, breakdown := r.engine.ScoreAt(event, prefs, km)
	_, hasCrowd := breakdown.Get(models.FactorCrowd)
	score = round(score+profile.Adjustment(event.Genre, hasCrowd), 3)
	if score <= 0 {
		return ranked{}, false
	}

	return ranked{
		Recommendation: models.Recommendation{
			Event:          event.Summary(),
			RelevanceScore: score,
			DistanceKm:     round(km, 2),
			Explanation:    r.engine.Explain(breakdown),
			MatchLabel:     models.MatchLabelForScore(score),
			ScoreBreakdown: breakdown,
		},
		distanceKm: km,
	}, true
}

// NormalizeSortBy lower-cases a sort mode and maps unknown modes to best.
func NormalizeSortBy(sortBy string) string {
	switch s := strings.ToLower(strings.TrimSpace(sortBy)); s {
	case models.SortDistance, models.SortBudget, models.SortCrowd, models.SortWeather:
		return s
	default:
		return models.SortBest
	}
}

func round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
