package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// HTTPRequestsTotal counts API requests by route, method and status.
var HTTPRequestsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "bank_http_requests_total",
		Help: "Total number of HTTP requests served by the banking API",
	},
	[]string{"route", "method", "status"},
)

var HTTPRequestDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "bank_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"route", "method"},
)

// ResponseCodes counts business response codes returned by the core engine.
var ResponseCodes = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "bank_response_codes_total",
		Help: "Response codes returned to API clients",
	},
	[]string{"route", "code"},
)

var (
	CoreRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bank_core_requests_total",
			Help: "Requests sent to the core-banking engine by subject and outcome",
		},
		[]string{"subject", "outcome"},
	)

	IdempotentReplays = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "bank_idempotent_replays_total",
			Help: "Responses replayed from the idempotency store",
		},
	)

	AuditEventsStored = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bank_audit_events_total",
			Help: "Audit events handled by the audit worker",
		},
		[]string{"outcome"},
	)
)

func init() {
	prometheus.MustRegister(HTTPRequestsTotal, HTTPRequestDuration, ResponseCodes)
	prometheus.MustRegister(CoreRequests, IdempotentReplays, AuditEventsStored)
}
