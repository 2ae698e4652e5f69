// internal/workers/matching/check-notification-sent/handler.go
package checknotificationsent

import (
	"context"
	"encoding/json"
	"fmt"

	"support-match-workers/internal/common/camunda"
	"support-match-workers/internal/common/errors"
	"support-match-workers/internal/common/logger"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "check-notification-sent"
)

// Checker is satisfied by *matching.Service.
type Checker interface {
	CheckIfNotificationSent(ctx context.Context, userID, opportunityID string) (bool, error)
}

type Handler struct {
	config     *Config
	checker    Checker
	errHandler *errors.ErrorHandler
	logger     logger.Logger
}

func NewHandler(config *Config, checker Checker, log logger.Logger) *Handler {
	l := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:     config,
		checker:    checker,
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

	output, err := h.execute(ctx, &input)
	if err != nil {
		camunda.FailJob(ctx, client, job, TaskType, err, h.errHandler)
		return
	}

	camunda.CompleteJob(ctx, client, job, TaskType, output, h.logger)
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	sent, err := h.checker.CheckIfNotificationSent(ctx, input.UserID, input.OpportunityID)
	if err != nil {
		return nil, err
	}
	return &Output{AlreadySent: sent}, nil
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
