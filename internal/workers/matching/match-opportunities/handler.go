// internal/workers/matching/match-opportunities/handler.go
package matchopportunities

import (
	"context"
	"encoding/json"
	"fmt"

	"support-match-workers/internal/common/camunda"
	"support-match-workers/internal/common/errors"
	"support-match-workers/internal/common/logger"
	"support-match-workers/internal/matching"
	"support-match-workers/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "match-opportunities"
)

// Matcher is satisfied by *matching.Service.
type Matcher interface {
	MatchUserPreferencesWithOpportunities(
		ctx context.Context,
		userID string,
		opportunities []models.Opportunity,
		prefs *models.UserPreference,
		opts *matching.Options,
	) ([]models.MatchResult, error)
}

type Handler struct {
	config     *Config
	matcher    Matcher
	errHandler *errors.ErrorHandler
	logger     logger.Logger
}

func NewHandler(config *Config, matcher Matcher, log logger.Logger) *Handler {
	l := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:     config,
		matcher:    matcher,
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
	matches, err := h.matcher.MatchUserPreferencesWithOpportunities(
		ctx, input.UserID, input.Opportunities, input.Preferences, input.Options,
	)
	if err != nil {
		return nil, err
	}

	h.logger.Info("opportunities matched", map[string]interface{}{
		"userId":    input.UserID,
		"evaluated": len(input.Opportunities),
		"matched":   len(matches),
	})

	return &Output{
		Matches:    matches,
		MatchCount: len(matches),
	}, nil
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
