package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	CasesOpened = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCasesOpened,
			Help: HelpTextCasesOpened,
		},
		[]string{LabelCase},
	)

	CasesPurchased = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCasesPurchased,
			Help: HelpTextCasesPurchased,
		},
		[]string{LabelCase},
	)

	RewardsRolled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRewardsRolled,
			Help: HelpTextRewardsRolled,
		},
		[]string{LabelCase, LabelRarity},
	)

	DuplicateRewards = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDuplicateRewards,
			Help: HelpTextDuplicateRewards,
		},
		[]string{LabelCase, LabelRarity},
	)

	PityTriggered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePityTriggered,
			Help: HelpTextPityTriggered,
		},
		[]string{LabelCase},
	)

	CreditsRefunded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCreditsRefunded,
			Help: HelpTextCreditsRefunded,
		},
	)

	CreditsSpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCreditsSpent,
			Help: HelpTextCreditsSpent,
		},
	)

	IdempotentReplays = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameIdempotentReplays,
			Help: HelpTextIdempotentReplays,
		},
	)

	RateLimitRejections = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRateLimitRejections,
			Help: HelpTextRateLimitRejections,
		},
	)
)
