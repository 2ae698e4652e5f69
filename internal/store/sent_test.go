// internal/store/sent_test.go
package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	apperrors "support-match-workers/internal/common/errors"
	"support-match-workers/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentNotificationStore_Exists(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		want    bool
		wantErr bool
	}{
		{
			name: "recorded",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT 1 FROM sent_notifications`).
					WithArgs("user-1", "opp-1").
					WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))
			},
			want: true,
		},
		{
			name: "not recorded",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT 1 FROM sent_notifications`).
					WithArgs("user-1", "opp-1").
					WillReturnError(sql.ErrNoRows)
			},
			want: false,
		},
		{
			name: "query failure",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT 1 FROM sent_notifications`).
					WillReturnError(errors.New("timeout"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := setupMockDB(t)
			tt.setup(mock)

			got, err := NewSentNotificationStore(db).Exists(context.Background(), "user-1", "opp-1")
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperrors.IsStorageError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSentNotificationStore_Insert(t *testing.T) {
	db, mock := setupMockDB(t)
	sentAt := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec(`INSERT INTO sent_notifications`).
		WithArgs("user-1", "opp-1", models.FrequencyDaily, sentAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := NewSentNotificationStore(db).Insert(context.Background(), models.SentNotificationRecord{
		UserID:        "user-1",
		OpportunityID: "opp-1",
		Frequency:     models.FrequencyDaily,
		SentAt:        sentAt,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSentNotificationStore_InsertFailure(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectExec(`INSERT INTO sent_notifications`).WillReturnError(errors.New("unique violation"))

	err := NewSentNotificationStore(db).Insert(context.Background(), models.SentNotificationRecord{UserID: "u"})
	require.Error(t, err)
	assert.ErrorIs(t, err, &apperrors.StandardError{Code: apperrors.ErrCodeDatabaseInsertFailed})
}
