// internal/workers/notification/notify-matched-opportunities/handler.go
package notifymatchedopportunities

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"support-match-workers/internal/common/camunda"
	"support-match-workers/internal/common/errors"
	"support-match-workers/internal/common/logger"
	"support-match-workers/internal/common/metrics"
	"support-match-workers/internal/matching"
	"support-match-workers/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"
)

const (
	TaskType = "notify-matched-opportunities"
)

// Service is the part of *matching.Service this worker uses.
type Service interface {
	LoadSettings(ctx context.Context, userID string) (*models.NotificationSettings, error)
	MatchUserPreferencesWithOpportunities(
		ctx context.Context,
		userID string,
		opportunities []models.Opportunity,
		prefs *models.UserPreference,
		opts *matching.Options,
	) ([]models.MatchResult, error)
	CheckIfNotificationSent(ctx context.Context, userID, opportunityID string) (bool, error)
	RecordSentNotification(ctx context.Context, userID, opportunityID, frequency string) bool
}

// Messenger is satisfied by *aws.Messenger.
type Messenger interface {
	SendEmail(ctx context.Context, to, subject, textBody, htmlBody string) (string, error)
	SendSMS(ctx context.Context, phone, message string) (string, error)
}

type Handler struct {
	config     *Config
	service    Service
	messenger  Messenger
	errHandler *errors.ErrorHandler
	logger     logger.Logger
	now        func() time.Time
}

func NewHandler(config *Config, service Service, messenger Messenger, log logger.Logger) *Handler {
	l := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:     config,
		service:    service,
		messenger:  messenger,
		errHandler: errors.NewErrorHandler(l),
		logger:     l,
		now:        time.Now,
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
	output := &Output{
		NotificationID: uuid.New().String(),
		Channels:       []string{},
	}

	settings, err := h.service.LoadSettings(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		output.SkipReason = SkipNoSettings
		return output, nil
	}

	frequency := input.Frequency
	if frequency == "" {
		frequency = models.FrequencyImmediate
	}
	if settings.Frequency != frequency {
		h.logger.Debug("frequency does not match this run", map[string]interface{}{
			"userId":       input.UserID,
			"userFreq":     settings.Frequency,
			"runFrequency": frequency,
		})
		output.SkipReason = SkipFrequencyMismatch
		return output, nil
	}

	prefs := settings.Preference()
	matches, err := h.service.MatchUserPreferencesWithOpportunities(ctx, input.UserID, input.Opportunities, &prefs, input.Options)
	if err != nil {
		return nil, err
	}
	output.MatchCount = len(matches)

	fresh := make([]models.MatchResult, 0, len(matches))
	for _, m := range matches {
		sent, err := h.service.CheckIfNotificationSent(ctx, input.UserID, m.ProgramID)
		if err != nil {
			return nil, err
		}
		if sent {
			output.SkippedAlreadySent++
			continue
		}
		fresh = append(fresh, m)
	}
	output.NewCount = len(fresh)

	if len(fresh) == 0 {
		output.SkipReason = SkipNoNewMatches
		return output, nil
	}

	byID := make(map[string]models.Opportunity, len(input.Opportunities))
	for _, o := range input.Opportunities {
		byID[o.ID] = o
	}

	channels, err := h.deliver(ctx, settings, h.digestItems(fresh, byID))
	if err != nil {
		return nil, err
	}
	if len(channels) == 0 {
		output.SkipReason = SkipNoChannel
		return output, nil
	}

	for _, m := range fresh {
		h.service.RecordSentNotification(ctx, input.UserID, m.ProgramID, frequency)
	}

	output.Channels = channels
	output.Delivered = true
	output.SentAt = h.now().UTC().Format(time.RFC3339)

	h.logger.Info("notification delivered", map[string]interface{}{
		"userId":         input.UserID,
		"notificationId": output.NotificationID,
		"channels":       channels,
		"newCount":       output.NewCount,
	})
	return output, nil
}

// deliver sends the digest on every channel the user and the service both
// enable. It fails only when no channel succeeded, so a partial delivery is
// still recorded and not repeated.
func (h *Handler) deliver(ctx context.Context, settings *models.NotificationSettings, items []digestItem) ([]string, error) {
	var delivered []string
	var lastErr error

	if h.config.EmailEnabled && settings.EmailEnabled && settings.Email != "" {
		text, html, err := emailBodies(items)
		if err == nil {
			_, err = h.messenger.SendEmail(ctx, settings.Email, emailSubject(len(items)), text, html)
		}
		if err != nil {
			lastErr = errors.NewNotificationSendFailedError(ChannelEmail, err)
			h.record(ChannelEmail, err)
		} else {
			delivered = append(delivered, ChannelEmail)
			h.record(ChannelEmail, nil)
		}
	}

	if h.config.SMSEnabled && settings.SMSEnabled && settings.PhoneNumber != "" {
		if _, err := h.messenger.SendSMS(ctx, settings.PhoneNumber, smsMessage(items)); err != nil {
			lastErr = errors.NewNotificationSendFailedError(ChannelSMS, err)
			h.record(ChannelSMS, err)
		} else {
			delivered = append(delivered, ChannelSMS)
			h.record(ChannelSMS, nil)
		}
	}

	if len(delivered) == 0 && lastErr != nil {
		return nil, lastErr
	}
	return delivered, nil
}

func (h *Handler) record(channel string, err error) {
	if err == nil {
		metrics.NotificationsDispatched.WithLabelValues(channel, "sent").Inc()
		return
	}
	metrics.NotificationsDispatched.WithLabelValues(channel, "failed").Inc()
	h.logger.Error("notification send failed", map[string]interface{}{
		"channel": channel,
		"error":   err,
	})
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
