// internal/workers/matching/check-notification-sent/handler_test.go
package checknotificationsent

import (
	"context"
	"errors"
	"testing"
	"time"

	apperrors "support-match-workers/internal/common/errors"
	"support-match-workers/internal/common/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockChecker struct {
	mock.Mock
}

func (m *mockChecker) CheckIfNotificationSent(ctx context.Context, userID, opportunityID string) (bool, error) {
	args := m.Called(ctx, userID, opportunityID)
	return args.Bool(0), args.Error(1)
}

func TestExecute(t *testing.T) {
	tests := []struct {
		name    string
		sent    bool
		err     error
		want    bool
		wantErr bool
	}{
		{name: "already sent", sent: true, want: true},
		{name: "not sent", sent: false, want: false},
		{name: "storage failure", err: apperrors.NewStorageError("select", errors.New("down")), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &mockChecker{}
			c.On("CheckIfNotificationSent", mock.Anything, "user-1", "opp-1").Return(tt.sent, tt.err)

			h := NewHandler(&Config{Timeout: time.Second}, c, logger.NewTestLogger(t))
			out, err := h.Execute(context.Background(), &Input{UserID: "user-1", OpportunityID: "opp-1"})

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperrors.IsStorageError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.AlreadySent)
			c.AssertExpectations(t)
		})
	}
}
