// Package metrics exposes the recommendation service's prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	StageProfile    = "taste_profile"
	StagePrediction = "compatibility"
)

var (
	RecommendationRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "menurank_recommendation_requests_total",
			Help: "Recommendation requests by outcome",
		},
		[]string{"outcome"},
	)

	CollaboratorFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "menurank_collaborator_fallbacks_total",
			Help: "Language-model calls that degraded to the neutral fallback, by stage",
		},
		[]string{"stage"},
	)

	MenuCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "menurank_menu_cache_lookups_total",
			Help: "Menu snapshot cache lookups by result",
		},
		[]string{"result"},
	)

	PipelineDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "menurank_pipeline_duration_seconds",
			Help:    "End-to-end recommendation pipeline latency",
			Buckets: prometheus.DefBuckets,
		},
	)

	RecommendedItems = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "menurank_recommended_items",
			Help:    "Number of items returned per recommendation",
			Buckets: []float64{0, 1, 2, 3, 4, 5},
		},
	)
)

var (
	LLMRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "menurank_llm_requests_total",
			Help: "Language-model requests by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	LLMBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "menurank_llm_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)
)
