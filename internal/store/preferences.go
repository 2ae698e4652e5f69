// internal/store/preferences.go
package store

import (
	"context"
	"database/sql"
	"errors"

	apperrors "support-match-workers/internal/common/errors"
	"support-match-workers/internal/models"

	"github.com/lib/pq"
)

const selectNotificationSettings = `
	SELECT user_id, regions, categories, frequency, email_enabled, sms_enabled,
	       COALESCE(email, ''), COALESCE(phone_number, ''), updated_at
	FROM notification_settings
	WHERE user_id = $1`

// PreferenceStore reads notification_settings rows.
type PreferenceStore struct {
	db *sql.DB
}

func NewPreferenceStore(db *sql.DB) *PreferenceStore {
	return &PreferenceStore{db: db}
}

// GetNotificationSettings returns models.ErrNotFound when userID has no row.
func (s *PreferenceStore) GetNotificationSettings(ctx context.Context, userID string) (*models.NotificationSettings, error) {
	var st models.NotificationSettings
	err := s.db.QueryRowContext(ctx, selectNotificationSettings, userID).Scan(
		&st.UserID,
		pq.Array(&st.Regions),
		pq.Array(&st.Categories),
		&st.Frequency,
		&st.EmailEnabled,
		&st.SMSEnabled,
		&st.Email,
		&st.PhoneNumber,
		&st.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, apperrors.NewStorageError("select_notification_settings", err)
	}

	if st.Frequency == "" {
		st.Frequency = models.FrequencyImmediate
	}
	return &st, nil
}
