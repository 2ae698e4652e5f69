// internal/workers/content/export-template/handler.go
package exporttemplate

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"support-match-workers/internal/common/camunda"
	"support-match-workers/internal/common/errors"
	"support-match-workers/internal/common/logger"
	"support-match-workers/internal/content"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "export-template"

	defaultFileName = "template"
	fileExtension   = ".txt"
)

// fileNameCleaner replaces characters that are unsafe in a download file name.
var fileNameCleaner = strings.NewReplacer(
	"/", "_", `\`, "_", ":", "_", "*", "_", "?", "_",
	`"`, "_", "<", "_", ">", "_", "|", "_",
)

type Handler struct {
	config     *Config
	errHandler *errors.ErrorHandler
	logger     logger.Logger
}

func NewHandler(config *Config, log logger.Logger) *Handler {
	l := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:     config,
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

	output, err := h.execute(&input)
	if err != nil {
		camunda.FailJob(ctx, client, job, TaskType, err, h.errHandler)
		return
	}

	camunda.CompleteJob(ctx, client, job, TaskType, output, h.logger)
}

func (h *Handler) execute(input *Input) (*Output, error) {
	if strings.TrimSpace(input.Content) == "" {
		return nil, errors.NewContentEmptyError()
	}

	title := content.ExtractTitleN(input.Content, h.config.TitleMaxLength)

	return &Output{
		TemplateID: input.TemplateID,
		Title:      title,
		Text:       content.ExportPlainText(input.Content),
		FileName:   fileName(input.FileName, title),
	}, nil
}

// fileName prefers the requested name, then the title, and always ends in .txt.
func fileName(requested, title string) string {
	name := strings.TrimSpace(requested)
	if name == "" {
		name = strings.TrimSuffix(strings.TrimSpace(title), "...")
	}
	name = strings.TrimSpace(fileNameCleaner.Replace(name))
	if name == "" {
		name = defaultFileName
	}
	if !strings.HasSuffix(strings.ToLower(name), fileExtension) {
		name += fileExtension
	}
	return name
}

func (h *Handler) Execute(input *Input) (*Output, error) {
	return h.execute(input)
}
