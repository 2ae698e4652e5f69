// internal/workers/data-access/search-opportunities/handler.go
package searchopportunities

import (
	"context"
	"encoding/json"
	"fmt"

	"support-match-workers/internal/common/camunda"
	"support-match-workers/internal/common/errors"
	"support-match-workers/internal/common/logger"
	"support-match-workers/internal/store"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "search-opportunities"
)

// Searcher is satisfied by *store.OpportunitySearcher.
type Searcher interface {
	Search(ctx context.Context, q store.SearchQuery) (*store.SearchResult, error)
}

type Handler struct {
	config     *Config
	searcher   Searcher
	errHandler *errors.ErrorHandler
	logger     logger.Logger
}

func NewHandler(config *Config, searcher Searcher, log logger.Logger) *Handler {
	l := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:     config,
		searcher:   searcher,
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
	page := input.Page
	if page < 1 {
		page = 1
	}
	size := input.PageSize
	if size < 1 {
		size = h.config.PageSize
	}
	if h.config.MaxPageSize > 0 && size > h.config.MaxPageSize {
		size = h.config.MaxPageSize
	}

	openOnly := true
	if input.OpenOnly != nil {
		openOnly = *input.OpenOnly
	}

	result, err := h.searcher.Search(ctx, store.SearchQuery{
		Regions:    input.Regions,
		Categories: input.Categories,
		Keyword:    input.Keyword,
		OpenOnly:   openOnly,
		From:       (page - 1) * size,
		Size:       size,
	})
	if err != nil {
		return nil, err
	}

	h.logger.Info("opportunities fetched", map[string]interface{}{
		"total":    result.TotalHits,
		"returned": len(result.Opportunities),
		"page":     page,
	})

	return &Output{
		Opportunities: result.Opportunities,
		Total:         result.TotalHits,
		Page:          page,
		PageSize:      size,
		Took:          result.Took,
	}, nil
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
