// internal/common/validation/validator_test.go
package validation

import (
	"path/filepath"
	"testing"

	"support-match-workers/internal/common/errors"
	"support-match-workers/pkg/registry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadValidator(t *testing.T) *Validator {
	t.Helper()
	reg, err := registry.LoadRegistry(filepath.Join("..", "..", "..", "configs", "activity-registry.json"))
	require.NoError(t, err)
	v, err := NewValidator(reg)
	require.NoError(t, err)
	return v
}

func TestValidator_ValidateVariables(t *testing.T) {
	v := loadValidator(t)

	tests := []struct {
		name      string
		taskType  string
		variables string
		wantErr   bool
	}{
		{
			name:      "match input valid",
			taskType:  "match-opportunities",
			variables: `{"userId":"u1","opportunities":[{"id":"p1","region":"서울","supportArea":"기술개발"}]}`,
		},
		{
			name:      "match input with null preferences",
			taskType:  "match-opportunities",
			variables: `{"userId":"u1","opportunities":[],"preferences":null}`,
		},
		{
			name:      "match input missing userId",
			taskType:  "match-opportunities",
			variables: `{"opportunities":[]}`,
			wantErr:   true,
		},
		{
			name:      "negative minimum score",
			taskType:  "match-opportunities",
			variables: `{"userId":"u1","opportunities":[],"options":{"minimumMatchScore":-1}}`,
			wantErr:   true,
		},
		{
			name:      "unknown frequency",
			taskType:  "record-sent-notification",
			variables: `{"userId":"u1","opportunityId":"p1","frequency":"hourly"}`,
			wantErr:   true,
		},
		{
			name:      "empty variables against required fields",
			taskType:  "format-template",
			variables: "",
			wantErr:   true,
		},
		{
			name:      "malformed document",
			taskType:  "check-notification-sent",
			variables: `{"userId":`,
			wantErr:   true,
		},
		{
			name:      "unregistered task type passes",
			taskType:  "unknown",
			variables: `{"anything":1}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateVariables(tt.taskType, tt.variables)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var stdErr *errors.StandardError
			require.ErrorAs(t, err, &stdErr)
			assert.Equal(t, errors.ErrCodeValidationFailed, stdErr.Code)
			assert.False(t, stdErr.Retryable)
		})
	}
}

func TestNewValidator_BadSchema(t *testing.T) {
	reg := &registry.ActivityRegistry{Activities: []registry.Activity{{
		ID:          "broken",
		TaskType:    "broken",
		InputSchema: map[string]interface{}{"type": 12},
	}}}
	_, err := NewValidator(reg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
}

func TestValidator_Has(t *testing.T) {
	v := loadValidator(t)
	assert.True(t, v.Has("export-template"))
	assert.False(t, v.Has("unknown"))
}
