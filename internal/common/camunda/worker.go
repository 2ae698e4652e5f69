// internal/common/camunda/worker.go
package camunda

import (
	"context"
	"time"

	"support-match-workers/internal/common/config"
	"support-match-workers/internal/common/errors"
	"support-match-workers/internal/common/logger"
	"support-match-workers/internal/common/metrics"
	"support-match-workers/internal/common/observability"
	"support-match-workers/internal/common/validation"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
)

// Runtime opens job workers on a Zeebe client. Every handler it registers is
// wrapped with registry input validation and per-task metrics.
type Runtime struct {
	client     zbc.Client
	validator  *validation.Validator
	obs        *observability.Observability
	errHandler *errors.ErrorHandler
	logger     logger.Logger
	workers    []worker.JobWorker
}

func NewRuntime(client zbc.Client, validator *validation.Validator, obs *observability.Observability, log logger.Logger) *Runtime {
	return &Runtime{
		client:     client,
		validator:  validator,
		obs:        obs,
		errHandler: errors.NewErrorHandler(log),
		logger:     log,
	}
}

// StartWorker opens a job worker for taskType unless it is disabled in config.
func (r *Runtime) StartWorker(taskType string, wcfg config.WorkerConfig, handler worker.JobHandler) {
	if !wcfg.Enabled {
		r.logger.Info("worker disabled", map[string]interface{}{"taskType": taskType})
		return
	}

	jw := r.client.NewJobWorker().
		JobType(taskType).
		Handler(r.Wrap(taskType, handler)).
		MaxJobsActive(wcfg.MaxJobsActive).
		Timeout(config.GetDuration(wcfg.Timeout)).
		Open()
	r.workers = append(r.workers, jw)

	r.logger.Info("worker started", map[string]interface{}{
		"taskType":      taskType,
		"maxJobsActive": wcfg.MaxJobsActive,
		"timeout_ms":    wcfg.Timeout,
	})
}

// Wrap decorates handler with input validation and job metrics.
func (r *Runtime) Wrap(taskType string, handler worker.JobHandler) worker.JobHandler {
	return func(client worker.JobClient, job entities.Job) {
		start := time.Now()
		ctx := context.Background()

		metrics.WorkerJobsActive.WithLabelValues(taskType).Inc()
		defer metrics.WorkerJobsActive.WithLabelValues(taskType).Dec()

		if r.validator != nil {
			if err := r.validator.ValidateVariables(taskType, job.Variables); err != nil {
				FailJob(ctx, client, job, taskType, err, r.errHandler)
				r.obs.RecordJobProcessed(ctx, taskType, "rejected")
				return
			}
		}

		handler(client, job)

		elapsed := time.Since(start)
		metrics.WorkerJobDuration.WithLabelValues(taskType).Observe(elapsed.Seconds())
		r.obs.RecordJobProcessed(ctx, taskType, "handled")
		r.obs.RecordJobDuration(ctx, taskType, elapsed, "handled")
	}
}

// Close stops every worker opened by this runtime.
func (r *Runtime) Close() {
	for _, jw := range r.workers {
		jw.Close()
		jw.AwaitClose()
	}
	r.workers = nil
}
