// Package metrics defines and registers all custom Prometheus metrics for the
// farm marketplace API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "farm_market"

// ── Authentication metrics ────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Labels:
//   - role: "user" or "admin"
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by role and result.",
	},
	[]string{"role", "result"},
)

// RegistrationsTotal counts completed registrations by role.
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of completed registrations, by role.",
	},
	[]string{"role"},
)

// AuthRejectionsTotal counts requests rejected by the authentication gate.
// Label:
//   - reason: "no_token", "expired", "malformed", "invalid_role", "not_found"
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected by the authentication gate, by reason.",
	},
	[]string{"reason"},
)

// ── Booking metrics ───────────────────────────────────────────────────────────

// BookingsCreatedTotal counts newly placed bookings.
var BookingsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_created_total",
		Help:      "Total number of bookings placed.",
	},
)

// BookingEventsProcessedTotal counts audit events that completed processing.
// Label:
//   - status: the booking status carried by the event
var BookingEventsProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "booking_events_processed_total",
		Help:      "Total number of booking events successfully recorded.",
	},
	[]string{"status"},
)

// BookingEventsErrorsTotal counts audit events that failed processing.
var BookingEventsErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "booking_events_errors_total",
		Help:      "Total number of booking events that failed processing.",
	},
	[]string{"reason"},
)

// BookingEventsDedupTotal counts deduplication decisions.
// Label:
//   - result: "hit" (duplicate, skipped) or "miss" (new event, recorded)
var BookingEventsDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "booking_events_dedup_total",
		Help:      "Total number of deduplication checks, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// BookingEventProcessingDuration measures end-to-end event recording time.
var BookingEventProcessingDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "booking_event_processing_duration_seconds",
		Help:      "Duration of booking event processing from dequeue to persistence.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"status"},
)

// ── Reference data metrics ────────────────────────────────────────────────────

// CropInfoCacheTotal counts crop-info cache lookups.
// Label:
//   - result: "hit" or "miss"
var CropInfoCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cropinfo_cache_total",
		Help:      "Total number of crop-info cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)
