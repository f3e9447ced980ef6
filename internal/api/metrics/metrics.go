// Package metrics defines and registers all custom Prometheus metrics for the
// SeoBuddy API. It is the single source of truth for metric names, labels, and
// help strings. Registration happens at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "seobuddy"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// GateDecisionsTotal counts route-gate outcomes on the protected prefixes.
// Label:
//   - outcome: "allow", "redirect", or "deny"
var GateDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gate_decisions_total",
		Help:      "Total number of dashboard gate decisions, by outcome.",
	},
	[]string{"outcome"},
)

// LeadsCapturedTotal counts leads accepted from the public forms.
// Label:
//   - source: the form that produced the lead (e.g. "contact", "audit")
var LeadsCapturedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "leads_captured_total",
		Help:      "Total number of leads captured, by source form.",
	},
	[]string{"source"},
)

// LeadDedupTotal counts lead deduplication decisions.
// Label:
//   - result: "hit" (repeat submission, skipped) or "miss" (new lead)
var LeadDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "lead_dedup_total",
		Help:      "Total number of lead deduplication checks, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// PostsPublishedTotal counts blog posts moved to the published state.
var PostsPublishedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "posts_published_total",
		Help:      "Total number of blog posts published.",
	},
)

// UploadsTotal counts accepted file uploads.
// Label:
//   - extension: the file extension without the dot (e.g. "png")
var UploadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_total",
		Help:      "Total number of accepted uploads, by file extension.",
	},
	[]string{"extension"},
)

// NotificationQueueDepth tracks pending leads in each notifier worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var NotificationQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "notification_queue_depth",
		Help:      "Current number of leads pending in each notifier worker channel.",
	},
	[]string{"worker_id"},
)

// NotificationPublishDuration measures how long one notification publish takes.
var NotificationPublishDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "notification_publish_duration_seconds",
		Help:      "Duration of a single lead notification publish.",
		Buckets:   prometheus.DefBuckets,
	},
)
