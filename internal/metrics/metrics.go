package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ProviderCallsTotal tracks wallet provider calls per backend and outcome code
	ProviderCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bitbuddy_provider_calls_total",
			Help: "Total number of wallet provider calls",
		},
		[]string{"provider", "method", "result"},
	)

	// ProviderLatency tracks wallet provider call latency
	ProviderLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bitbuddy_provider_latency_seconds",
			Help:    "Wallet provider call latency in seconds",
			Buckets: []float64{0.05, 0.1, 0.5, 1, 5, 15, 30, 60, 120},
		},
		[]string{"provider", "method"},
	)

	// SessionTransitions tracks wallet session state changes
	SessionTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bitbuddy_session_transitions_total",
			Help: "Total number of wallet session state transitions",
		},
		[]string{"to"},
	)

	// GiftsRecorded tracks gift events by outcome (created, duplicate)
	GiftsRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bitbuddy_gifts_recorded_total",
			Help: "Total number of gift events handled",
		},
		[]string{"outcome"},
	)

	// BadgesUnlocked tracks newly unlocked badges per type
	BadgesUnlocked = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bitbuddy_badges_unlocked_total",
			Help: "Total number of badges unlocked",
		},
		[]string{"type"},
	)

	// GoalsCompleted counts savings goals that crossed their target
	GoalsCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bitbuddy_goals_completed_total",
			Help: "Total number of savings goals completed",
		},
	)

	// ContributionConflicts counts version conflicts that forced a contribution retry
	ContributionConflicts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bitbuddy_contribution_conflicts_total",
			Help: "Total number of conditional write conflicts on savings goals",
		},
	)

	// FeedPublishFailures counts feed appends that were dropped
	FeedPublishFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bitbuddy_feed_publish_failures_total",
			Help: "Total number of feed entries that failed to publish",
		},
	)

	// HTTPRequestsTotal tracks API requests per route and status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bitbuddy_http_requests_total",
			Help: "Total number of HTTP API requests",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration tracks API latency per route
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bitbuddy_http_request_duration_seconds",
			Help:    "HTTP API request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// DBConnectionPoolUsage tracks the fraction of acquired pool connections
	DBConnectionPoolUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "bitbuddy_db_connection_pool_usage",
			Help: "Fraction of PostgreSQL pool connections in use",
		},
	)
)
