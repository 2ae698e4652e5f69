// internal/workers/matching/record-sent-notification/handler.go
package recordsentnotification

import (
	"context"
	"encoding/json"
	"fmt"

	"support-match-workers/internal/common/camunda"
	"support-match-workers/internal/common/errors"
	"support-match-workers/internal/common/logger"
	"support-match-workers/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "record-sent-notification"
)

// Recorder is satisfied by *matching.Service.
type Recorder interface {
	RecordSentNotification(ctx context.Context, userID, opportunityID, frequency string) bool
}

type Handler struct {
	config     *Config
	recorder   Recorder
	errHandler *errors.ErrorHandler
	logger     logger.Logger
}

func NewHandler(config *Config, recorder Recorder, log logger.Logger) *Handler {
	l := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:     config,
		recorder:   recorder,
		errHandler: errors.NewErrorHandler(l),
		logger:     l,
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		camunda.FailJob(ctx, client, job, TaskType, errors.NewValidationError(fmt.Sprintf("parse input: %v", err)), h.errHandler)
		return
	}

	camunda.CompleteJob(ctx, client, job, TaskType, h.execute(ctx, &input), h.logger)
}

// execute never fails the job: a record that could not be written is
// reported as recorded=false and the process decides what to do with it.
func (h *Handler) execute(ctx context.Context, input *Input) *Output {
	frequency := input.Frequency
	if frequency == "" {
		frequency = models.FrequencyImmediate
	}
	return &Output{
		Recorded: h.recorder.RecordSentNotification(ctx, input.UserID, input.OpportunityID, frequency),
	}
}

func (h *Handler) Execute(ctx context.Context, input *Input) *Output {
	return h.execute(ctx, input)
}
