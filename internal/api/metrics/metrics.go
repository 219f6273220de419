// Package metrics defines all custom Prometheus metrics for the donation
// platform API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register themselves with the default registry at
// import time via promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "givebridge"

// ── Identity metrics ─────────────────────────────────────────────────────────

// SignupsTotal counts account registrations by outcome.
// Labels:
//   - result: "success", "duplicate_email", "validation_error", "error"
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of sign-up attempts, by outcome.",
	},
	[]string{"result"},
)

// SigninsTotal counts sign-in attempts by outcome. Invalid email and wrong
// password share one label value; the split is never recorded anywhere.
// Labels:
//   - result: "success", "invalid_credentials", "error"
var SigninsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signins_total",
		Help:      "Total number of sign-in attempts, by outcome.",
	},
	[]string{"result"},
)

// SessionRestoresTotal counts session-cookie restorations on incoming requests.
// Labels:
//   - result: "restored" (live session) or "absent" (missing/corrupt/expired)
var SessionRestoresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_restores_total",
		Help:      "Total number of session restore attempts, by result.",
	},
	[]string{"result"},
)

// ── Donation metrics ─────────────────────────────────────────────────────────

// DonationsCreatedTotal counts accepted donations.
// Labels:
//   - type: "cash", "clothes", or "food"
var DonationsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "donations_created_total",
		Help:      "Total number of donations accepted, by type.",
	},
	[]string{"type"},
)

// DonationsDedupTotal counts idempotency-key decisions on donation submission.
// Labels:
//   - result: "hit" (duplicate, rejected) or "miss" (new, accepted)
var DonationsDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "donations_dedup_total",
		Help:      "Total number of donation idempotency checks, by result.",
	},
	[]string{"result"},
)

// FeedbackSubmittedTotal counts accepted feedback entries, labelled by rating.
var FeedbackSubmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "feedback_submitted_total",
		Help:      "Total number of feedback entries accepted, by rating.",
	},
	[]string{"rating"},
)
