// internal/store/preferences_test.go
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

var settingsColumns = []string{
	"user_id", "regions", "categories", "frequency", "email_enabled",
	"sms_enabled", "email", "phone_number", "updated_at",
}

func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func TestPreferenceStore_GetNotificationSettings(t *testing.T) {
	db, mock := setupMockDB(t)
	updated := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT .+ FROM notification_settings WHERE user_id = \$1`).
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows(settingsColumns).AddRow(
			"user-1", "{서울,경기}", "{기술개발}", "", true, false,
			"owner@example.com", "", updated,
		))

	st, err := NewPreferenceStore(db).GetNotificationSettings(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, []string{"서울", "경기"}, st.Regions)
	assert.Equal(t, []string{"기술개발"}, st.Categories)
	assert.Equal(t, models.FrequencyImmediate, st.Frequency)
	assert.True(t, st.EmailEnabled)
	assert.Equal(t, "owner@example.com", st.Email)
	assert.Equal(t, updated, st.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPreferenceStore_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectQuery(`FROM notification_settings`).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := NewPreferenceStore(db).GetNotificationSettings(context.Background(), "ghost")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestPreferenceStore_StorageError(t *testing.T) {
	db, mock := setupMockDB(t)
	boom := errors.New("connection reset")
	mock.ExpectQuery(`FROM notification_settings`).WillReturnError(boom)

	_, err := NewPreferenceStore(db).GetNotificationSettings(context.Background(), "user-1")
	assert.True(t, apperrors.IsStorageError(err))
	assert.ErrorIs(t, err, boom)
}
