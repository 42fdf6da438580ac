package metrics

// Metric namespace shared by every collector
const Namespace = "harvest_codex"

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished = "events_published_total"
)

// Completion metric names
const (
	MetricNameCompletionChanges   = "completion_changes_total"
	MetricNameCompletionRollbacks = "completion_rollbacks_total"
	MetricNameActiveSessions      = "completion_active_sessions"
	MetricNameSimulatorRuns       = "simulator_runs_total"
	MetricNameLiveFeedClients     = "livefeed_clients"
)

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event and completion help text
const (
	HelpTextEventsPublished     = "Total number of events published"
	HelpTextCompletionChanges   = "Completion changes persisted, by action"
	HelpTextCompletionRollbacks = "Optimistic completion changes rolled back after a store failure, by action"
	HelpTextActiveSessions      = "Sessions started minus sessions ended since process start"
	HelpTextSimulatorRuns       = "Simulator calculations served, by simulator"
	HelpTextLiveFeedClients     = "Connected live feed websocket clients"
)

// Labels
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelType      = "type"
	LabelAction    = "action"
	LabelSimulator = "simulator"
)

// Unmatched requests share one path label
const PathUnmatched = "unmatched"

// HTTPLatencyBuckets are the request duration buckets in seconds
var HTTPLatencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}

// Log messages
const (
	LogMsgPayloadDecodeFailed = "Failed to decode event payload for metrics"
)
