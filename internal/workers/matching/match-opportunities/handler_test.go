// internal/workers/matching/match-opportunities/handler_test.go
package matchopportunities

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	apperrors "support-match-workers/internal/common/errors"
	"support-match-workers/internal/common/logger"
	"support-match-workers/internal/matching"
	"support-match-workers/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePrefs struct {
	settings *models.NotificationSettings
	err      error
}

func (f fakePrefs) GetNotificationSettings(context.Context, string) (*models.NotificationSettings, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.settings == nil {
		return nil, models.ErrNotFound
	}
	return f.settings, nil
}

type noSent struct{}

func (noSent) Exists(context.Context, string, string) (bool, error) { return false, nil }
func (noSent) Insert(context.Context, models.SentNotificationRecord) error { return nil }

func newHandler(t *testing.T, prefs fakePrefs) *Handler {
	svc := matching.NewService(prefs, noSent{}, matching.DefaultOptions(), logger.NewTestLogger(t))
	return NewHandler(&Config{Timeout: 5 * time.Second}, svc, logger.NewTestLogger(t))
}

func sampleOpportunities() []models.Opportunity {
	return []models.Opportunity{
		{ID: "seoul", Region: "서울", SupportArea: "기술개발"},
		{ID: "busan", Region: "부산"},
		{ID: "nation", Region: "전국", SupportArea: "기술개발"},
	}
}

func TestExecute_InlinePreferences(t *testing.T) {
	h := newHandler(t, fakePrefs{})

	out, err := h.Execute(context.Background(), &Input{
		UserID:        "user-1",
		Opportunities: sampleOpportunities(),
		Preferences:   &models.UserPreference{Regions: []string{"서울"}, Categories: []string{"기술개발"}},
	})
	require.NoError(t, err)

	require.Equal(t, 2, out.MatchCount)
	assert.Equal(t, "seoul", out.Matches[0].ProgramID)
	assert.Equal(t, "nation", out.Matches[1].ProgramID)
	assert.Equal(t, 100, out.Matches[0].MatchScore)
	assert.Equal(t, 100, out.Matches[1].MatchScore)
}

func TestExecute_StoredPreferences(t *testing.T) {
	h := newHandler(t, fakePrefs{settings: &models.NotificationSettings{
		UserID:     "user-1",
		Categories: []string{"기술개발"},
	}})

	out, err := h.Execute(context.Background(), &Input{
		UserID:        "user-1",
		Opportunities: sampleOpportunities(),
		Options:       &matching.Options{MinimumMatchScore: 100},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, out.MatchCount)
}

func TestExecute_NoSettingsMatchesNothing(t *testing.T) {
	h := newHandler(t, fakePrefs{})

	out, err := h.Execute(context.Background(), &Input{UserID: "ghost", Opportunities: sampleOpportunities()})
	require.NoError(t, err)
	assert.Zero(t, out.MatchCount)
	assert.NotNil(t, out.Matches)
}

func TestExecute_StorageFailure(t *testing.T) {
	h := newHandler(t, fakePrefs{err: errors.New("db down")})

	_, err := h.Execute(context.Background(), &Input{UserID: "user-1", Opportunities: sampleOpportunities()})
	require.Error(t, err)
	assert.True(t, apperrors.IsStorageError(err))
}

func TestInput_DecodesJobVariables(t *testing.T) {
	vars := `{
		"userId": "user-1",
		"opportunities": [{"id": "a", "region": "서울", "geographicRegions": ["서울", "경기"], "supportArea": "수출"}],
		"preferences": null,
		"options": {"minimumMatchScore": 60, "regionWeight": 70, "categoryWeight": 30}
	}`

	var in Input
	require.NoError(t, json.Unmarshal([]byte(vars), &in))
	assert.Nil(t, in.Preferences)
	require.NotNil(t, in.Options)
	assert.Equal(t, matching.Options{MinimumMatchScore: 60, RegionWeight: 70, CategoryWeight: 30}, *in.Options)
	assert.Equal(t, []string{"서울", "경기"}, in.Opportunities[0].GeographicRegions)
}
