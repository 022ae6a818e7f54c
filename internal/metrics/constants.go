package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNameCasesOpened          = "cases_opened_total"
	MetricNameCasesPurchased       = "cases_purchased_total"
	MetricNameRewardsRolled        = "rewards_rolled_total"
	MetricNameDuplicateRewards     = "duplicate_rewards_total"
	MetricNamePityTriggered        = "pity_triggered_total"
	MetricNameCreditsRefunded      = "credits_refunded_total"
	MetricNameCreditsSpent         = "credits_spent_total"
	MetricNameIdempotentReplays    = "idempotent_replays_total"
	MetricNameRateLimitRejections  = "rate_limit_rejections_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextCasesOpened         = "Total number of cases opened"
	HelpTextCasesPurchased      = "Total number of cases purchased"
	HelpTextRewardsRolled       = "Total number of rewards rolled"
	HelpTextDuplicateRewards    = "Total number of duplicate rewards converted to refunds"
	HelpTextPityTriggered       = "Total number of opens where the pity guarantee forced the rarity"
	HelpTextCreditsRefunded     = "Total credits refunded for duplicate rewards"
	HelpTextCreditsSpent        = "Total credits spent buying cases"
	HelpTextIdempotentReplays   = "Total open requests answered from the request ledger"
	HelpTextRateLimitRejections = "Total case operations rejected by the rate limiter"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelCase   = "case"
	LabelRarity = "rarity"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
