// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WorkerJobsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_completed_total",
			Help: "Total number of jobs completed by worker",
		},
		[]string{"task_type"},
	)

	WorkerJobsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_failed_total",
			Help: "Total number of jobs failed by worker",
		},
		[]string{"task_type", "error_code"},
	)

	WorkerJobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "worker_job_duration_seconds",
			Help: "Duration of job processing in seconds",
		},
		[]string{"task_type"},
	)

	WorkerJobsActive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "worker_jobs_active",
			Help: "Number of active jobs per worker",
		},
		[]string{"task_type"},
	)
)

// Domain counters.
var (
	OpportunitiesEvaluated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "matching_opportunities_evaluated_total",
			Help: "Opportunities scored against a user preference",
		},
	)

	MatchResults = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "matching_results_total",
			Help: "Opportunities that passed the minimum match score",
		},
	)

	PreferenceCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "matching_preference_cache_lookups_total",
			Help: "Preference cache lookups by result",
		},
		[]string{"result"},
	)

	NotificationsDispatched = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifications_dispatched_total",
			Help: "Notifications sent per channel and status",
		},
		[]string{"channel", "status"},
	)

	TablesRendered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "content_tables_rendered_total",
			Help: "Pseudo-table blocks accepted and rendered",
		},
	)
)
