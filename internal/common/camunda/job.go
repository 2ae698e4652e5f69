// internal/common/camunda/job.go
package camunda

import (
	"context"

	"support-match-workers/internal/common/errors"
	"support-match-workers/internal/common/logger"
	"support-match-workers/internal/common/metrics"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

// CompleteJob completes job with output as its variables.
func CompleteJob(ctx context.Context, client worker.JobClient, job entities.Job, taskType string, output interface{}, log logger.Logger) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		log.Error("failed to create complete job command", map[string]interface{}{
			"jobKey": job.Key,
			"error":  err,
		})
		return
	}

	if _, err := cmd.Send(ctx); err != nil {
		log.Error("failed to send complete job command", map[string]interface{}{
			"jobKey": job.Key,
			"error":  err,
		})
		return
	}

	metrics.WorkerJobsCompleted.WithLabelValues(taskType).Inc()
}

// FailJob hands err to the error handler, which fails the job with retries or
// throws a BPMN error depending on the error code.
func FailJob(ctx context.Context, client worker.JobClient, job entities.Job, taskType string, err error, h *errors.ErrorHandler) {
	stdErr := errors.Normalize(err)
	metrics.WorkerJobsFailed.WithLabelValues(taskType, string(stdErr.Code)).Inc()
	h.HandleJobError(ctx, client, job, stdErr)
}
