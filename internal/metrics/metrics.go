// Package metrics exposes the Prometheus instruments of the service.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RecommendationRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventrec_recommendation_requests_total",
			Help: "Total number of recommendation requests by sort mode",
		},
		[]string{"sort_by"},
	)

	ScoringDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "eventrec_scoring_duration_seconds",
			Help:    "Time spent scoring the catalog for one request",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
	)

	CandidatesScored = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "eventrec_candidates_scored",
			Help:    "Number of catalog events scored per request",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		},
	)

	RecommendationsReturned = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "eventrec_recommendations_returned",
			Help:    "Number of recommendations returned per request",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100},
		},
	)

	InteractionsLogged = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventrec_interactions_logged_total",
			Help: "Total number of logged user interactions by type",
		},
		[]string{"interaction_type"},
	)

	CatalogEvents = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "eventrec_catalog_events",
			Help: "Number of events in the active catalog",
		},
	)

	CatalogReloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventrec_catalog_reloads_total",
			Help: "Total number of catalog reload attempts by outcome",
		},
		[]string{"outcome"}, // "success", "failure"
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "eventrec_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

// RecordCatalogReload tracks one reload attempt and, on success, the new catalog size.
func RecordCatalogReload(size int, err error) {
	if err != nil {
		CatalogReloads.WithLabelValues("failure").Inc()
		return
	}
	CatalogReloads.WithLabelValues("success").Inc()
	CatalogEvents.Set(float64(size))
}

// RecordScoringPass tracks one scoring pass of the recommender.
func RecordScoringPass(sortBy string, candidates, returned int, elapsed time.Duration) {
	RecommendationRequests.WithLabelValues(sortBy).Inc()
	CandidatesScored.Observe(float64(candidates))
	RecommendationsReturned.Observe(float64(returned))
	ScoringDuration.Observe(elapsed.Seconds())
}

// RecordHTTPRequest tracks one served HTTP request.
func RecordHTTPRequest(method, route string, status int, elapsed time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}
