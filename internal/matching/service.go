// internal/matching/service.go
package matching

import (
	"context"
	"errors"
	"time"

	apperrors "support-match-workers/internal/common/errors"
	"support-match-workers/internal/common/logger"
	"support-match-workers/internal/models"
)

// PreferenceStore reads a user's notification settings. It returns
// models.ErrNotFound when the user has none.
type PreferenceStore interface {
	GetNotificationSettings(ctx context.Context, userID string) (*models.NotificationSettings, error)
}

// SentNotificationStore tracks which opportunities were already notified.
type SentNotificationStore interface {
	Exists(ctx context.Context, userID, opportunityID string) (bool, error)
	Insert(ctx context.Context, record models.SentNotificationRecord) error
}

// Service runs matching against stored preferences and keeps the
// sent-notification ledger.
type Service struct {
	prefs    PreferenceStore
	sent     SentNotificationStore
	defaults Options
	logger   logger.Logger
	now      func() time.Time
}

func NewService(prefs PreferenceStore, sent SentNotificationStore, defaults Options, log logger.Logger) *Service {
	return &Service{
		prefs:    prefs,
		sent:     sent,
		defaults: defaults,
		logger:   log,
		now:      time.Now,
	}
}

// LoadSettings fetches the user's settings. A missing record yields nil with
// no error; any other failure is a storage error.
func (s *Service) LoadSettings(ctx context.Context, userID string) (*models.NotificationSettings, error) {
	settings, err := s.prefs.GetNotificationSettings(ctx, userID)
	if errors.Is(err, models.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		if apperrors.IsStorageError(err) {
			return nil, err
		}
		return nil, apperrors.NewStorageError("get_notification_settings", err)
	}
	return settings, nil
}

// MatchUserPreferencesWithOpportunities scores opportunities for userID. When
// prefs is nil the stored settings are used, and a user without settings
// matches nothing. When opts is nil the service defaults apply.
func (s *Service) MatchUserPreferencesWithOpportunities(
	ctx context.Context,
	userID string,
	opportunities []models.Opportunity,
	prefs *models.UserPreference,
	opts *Options,
) ([]models.MatchResult, error) {
	var p models.UserPreference
	if prefs != nil {
		p = *prefs
	} else {
		settings, err := s.LoadSettings(ctx, userID)
		if err != nil {
			return nil, err
		}
		if settings == nil {
			s.logger.Debug("no notification settings, nothing to match", map[string]interface{}{
				"userId": userID,
			})
		} else {
			p = settings.Preference()
		}
	}

	if opts == nil {
		d := s.defaults
		opts = &d
	}

	return Match(p, opportunities, opts), nil
}

// CheckIfNotificationSent reports whether opportunityID was already notified
// to userID.
func (s *Service) CheckIfNotificationSent(ctx context.Context, userID, opportunityID string) (bool, error) {
	sent, err := s.sent.Exists(ctx, userID, opportunityID)
	if err != nil {
		if apperrors.IsStorageError(err) {
			return false, err
		}
		return false, apperrors.NewStorageError("check_notification_sent", err)
	}
	return sent, nil
}

// RecordSentNotification stores a sent record stamped with the current time.
// Failures are logged and reported as false; a lost record only risks a
// duplicate notification.
func (s *Service) RecordSentNotification(ctx context.Context, userID, opportunityID, frequency string) bool {
	record := models.SentNotificationRecord{
		UserID:        userID,
		OpportunityID: opportunityID,
		Frequency:     frequency,
		SentAt:        s.now().UTC(),
	}

	if err := s.sent.Insert(ctx, record); err != nil {
		s.logger.Error("failed to record sent notification", map[string]interface{}{
			"userId":        userID,
			"opportunityId": opportunityID,
			"error":         err,
		})
		return false
	}
	return true
}
