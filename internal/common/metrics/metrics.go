package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AuditsCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "audit_reports_completed_total",
			Help: "Total number of audit reports generated successfully",
		},
	)

	AuditsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "audit_reports_failed_total",
			Help: "Total number of audit requests that returned an error",
		},
		[]string{"error_code"},
	)

	AuditDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "audit_report_duration_seconds",
			Help: "Duration of the audit generation pipeline in seconds",
		},
	)

	ParserFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "audit_parser_fallbacks_total",
			Help: "Total number of model responses discarded in favor of the synthesized report",
		},
	)

	EmailsSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "audit_emails_sent_total",
			Help: "Total number of audit report emails delivered",
		},
	)

	EmailsFailed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "audit_emails_failed_total",
			Help: "Total number of audit report emails that failed to send",
		},
	)
)
