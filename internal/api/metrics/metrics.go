// Package metrics defines and registers all custom Prometheus metrics for the
// influencer summit API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default Prometheus registry at package init
// through promauto; the /metrics route exposes that registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "summit"

// ── Registration metrics ──────────────────────────────────────────────────────

// RegistrationsCreatedTotal counts successful summit sign-ups.
var RegistrationsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_created_total",
		Help:      "Total number of summit registrations created.",
	},
)

// RegistrationsRejectedTotal counts sign-ups that were refused.
// Label:
//   - reason: "invalid_input" or "conflict"
var RegistrationsRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_rejected_total",
		Help:      "Total number of registration attempts rejected, by reason.",
	},
	[]string{"reason"},
)

// ── Badge metrics ─────────────────────────────────────────────────────────────

// BadgesIssuedTotal counts badges awarded.
var BadgesIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "badges_issued_total",
		Help:      "Total number of badges issued.",
	},
)

// ── Admin / storage metrics ───────────────────────────────────────────────────

// AdminAuthFailuresTotal counts requests rejected by the admin key check.
var AdminAuthFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "admin_auth_failures_total",
		Help:      "Total number of admin requests rejected for a missing or wrong key.",
	},
)

// DegradedReadsTotal counts public reads served as empty because the store failed.
// Label:
//   - collection: "registrations" or "badges"
var DegradedReadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "degraded_reads_total",
		Help:      "Total number of reads answered with an empty result after a storage failure.",
	},
	[]string{"collection"},
)

// ── HTTP metrics ──────────────────────────────────────────────────────────────

// HTTPRequestDuration measures request latency.
// Labels:
//   - method: HTTP method
//   - route:  the matched route pattern (e.g. "/badges/:badgeId")
//   - code:   response status code
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests by method, route and status code.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"method", "route", "code"},
)
