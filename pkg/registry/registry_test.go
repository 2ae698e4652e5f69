// pkg/registry/registry_test.go
package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRegistry_ShippedFile(t *testing.T) {
	reg, err := LoadRegistry(filepath.Join("..", "..", "configs", "activity-registry.json"))
	require.NoError(t, err)
	require.NoError(t, reg.Validate())

	for _, taskType := range []string{
		"search-opportunities",
		"match-opportunities",
		"check-notification-sent",
		"record-sent-notification",
		"notify-matched-opportunities",
		"format-template",
		"export-template",
	} {
		activity, ok := reg.Find(taskType)
		require.True(t, ok, taskType)
		assert.NotEmpty(t, activity.InputSchema, taskType)
	}

	_, ok := reg.Find("calculate-match-score")
	assert.False(t, ok)
}

func TestLoadRegistry_Errors(t *testing.T) {
	_, err := LoadRegistry(filepath.Join(t.TempDir(), "missing.json"))
	assert.True(t, os.IsNotExist(err))

	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))
	_, err = LoadRegistry(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse registry")
}

func TestActivityRegistry_Validate(t *testing.T) {
	valid := Activity{ID: "a", DisplayName: "A", TaskType: "a", Category: "matching"}

	tests := []struct {
		name    string
		reg     ActivityRegistry
		wantErr string
	}{
		{"empty", ActivityRegistry{}, "no activities"},
		{"ok", ActivityRegistry{Activities: []Activity{valid}}, ""},
		{"missing id", ActivityRegistry{Activities: []Activity{{DisplayName: "x"}}}, "missing required field: ID"},
		{"duplicate id", ActivityRegistry{Activities: []Activity{valid, valid}}, "duplicate activity ID"},
		{
			"duplicate task type",
			ActivityRegistry{Activities: []Activity{valid, {ID: "b", DisplayName: "B", TaskType: "a", Category: "c"}}},
			"duplicate task type",
		},
		{"missing category", ActivityRegistry{Activities: []Activity{{ID: "a", DisplayName: "A", TaskType: "a"}}}, "Category"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.reg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
