// internal/store/sent.go
package store

import (
	"context"
	"database/sql"
	"errors"

	apperrors "support-match-workers/internal/common/errors"
	"support-match-workers/internal/models"
)

const (
	selectSentNotification = `
	SELECT 1 FROM sent_notifications
	WHERE user_id = $1 AND opportunity_id = $2
	LIMIT 1`

	insertSentNotification = `
	INSERT INTO sent_notifications (user_id, opportunity_id, frequency, sent_at)
	VALUES ($1, $2, $3, $4)`
)

// SentNotificationStore is the sent_notifications ledger.
type SentNotificationStore struct {
	db *sql.DB
}

func NewSentNotificationStore(db *sql.DB) *SentNotificationStore {
	return &SentNotificationStore{db: db}
}

func (s *SentNotificationStore) Exists(ctx context.Context, userID, opportunityID string) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx, selectSentNotification, userID, opportunityID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, apperrors.NewStorageError("select_sent_notification", err)
	}
	return true, nil
}

func (s *SentNotificationStore) Insert(ctx context.Context, record models.SentNotificationRecord) error {
	_, err := s.db.ExecContext(ctx, insertSentNotification,
		record.UserID,
		record.OpportunityID,
		record.Frequency,
		record.SentAt,
	)
	if err != nil {
		return apperrors.NewDatabaseInsertFailedError(err)
	}
	return nil
}
