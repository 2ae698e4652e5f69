// internal/matching/matcher_test.go
package matching

import (
	"fmt"
	"testing"

	"support-match-workers/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioOpportunities() []models.Opportunity {
	return []models.Opportunity{
		{ID: "seoul-1", Region: "서울", SupportArea: "기술개발"},
		{ID: "busan-1", Region: "부산", SupportArea: "수출"},
		{ID: "nation-1", Region: "전국", SupportArea: "기술개발"},
	}
}

func scenarioPreference() models.UserPreference {
	return models.UserPreference{Regions: []string{"서울"}, Categories: []string{"기술개발"}}
}

func programIDs(results []models.MatchResult) []string {
	ids := make([]string, len(results))
	for i, r := range results {
		ids[i] = r.ProgramID
	}
	return ids
}

func TestMatch_Scenario(t *testing.T) {
	results := Match(scenarioPreference(), scenarioOpportunities(), nil)

	require.Len(t, results, 2)
	assert.Equal(t, []string{"seoul-1", "nation-1"}, programIDs(results))
	for _, r := range results {
		assert.Equal(t, 100, r.MatchScore)
		assert.Equal(t, []string{"기술개발"}, r.MatchedCategories)
	}
	assert.Equal(t, []string{"서울"}, results[0].MatchedRegions)
	assert.Equal(t, []string{"전국"}, results[1].MatchedRegions)
}

func TestMatch_MinimumScoreBoundary(t *testing.T) {
	tests := []struct {
		min  int
		want int
	}{
		{0, 2},
		{50, 2},
		{100, 2},
		{101, 0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("min=%d", tt.min), func(t *testing.T) {
			opts := DefaultOptions()
			opts.MinimumMatchScore = tt.min
			assert.Len(t, Match(scenarioPreference(), scenarioOpportunities(), &opts), tt.want)
		})
	}
}

func TestMatch_EmptyPreferenceMatchesNothing(t *testing.T) {
	opps := append(scenarioOpportunities(), models.Opportunity{ID: "x", Region: "대구", SupportArea: "창업"})

	results := Match(models.UserPreference{}, opps, nil)
	assert.NotNil(t, results)
	assert.Empty(t, results)

	opts := Options{RegionWeight: 10, CategoryWeight: 90}
	assert.Empty(t, Match(models.UserPreference{Regions: []string{}, Categories: []string{}}, opps, &opts))
}

func TestMatch_EmptyOpportunities(t *testing.T) {
	results := Match(scenarioPreference(), nil, nil)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestMatch_ScoresUnderDefaultWeights(t *testing.T) {
	prefs := models.UserPreference{Regions: []string{"서울", "경기"}, Categories: []string{"기술개발", "수출"}}
	regions := []string{"서울", "경기", "부산", "전국", ""}
	areas := []string{"기술개발", "수출", "창업", ""}

	var opps []models.Opportunity
	for _, r := range regions {
		for _, a := range areas {
			opps = append(opps, models.Opportunity{ID: r + "/" + a, Region: r, SupportArea: a})
		}
	}

	for _, res := range Match(prefs, opps, nil) {
		assert.Contains(t, []int{50, 100}, res.MatchScore, res.ProgramID)
	}
}

func TestMatch_NationwideAlwaysMatchesRegion(t *testing.T) {
	prefs := models.UserPreference{Regions: []string{"제주"}, Categories: []string{"기술개발"}}
	opps := []models.Opportunity{
		{ID: "a", Region: "서울", GeographicRegions: []string{"서울", "전국"}, SupportArea: "수출"},
		{ID: "b", Region: "전국", SupportArea: "수출"},
	}

	results := Match(prefs, opps, nil)
	require.Len(t, results, 2)
	for _, r := range results {
		assert.Equal(t, 50, r.MatchScore)
		assert.Equal(t, []string{"전국"}, r.MatchedRegions)
		assert.Empty(t, r.MatchedCategories)
	}
}

func TestMatch_GeographicRegionsOverrideRegion(t *testing.T) {
	prefs := models.UserPreference{Regions: []string{"서울"}, Categories: []string{"수출"}}
	opps := []models.Opportunity{
		{ID: "a", Region: "서울", GeographicRegions: []string{"부산", "울산"}, SupportArea: "기술개발"},
		{ID: "b", Region: "부산", GeographicRegions: []string{"부산", "서울", "서울", "전국"}, SupportArea: "기술개발"},
	}

	results := Match(prefs, opps, nil)
	require.Len(t, results, 1)
	assert.Equal(t, "b", results[0].ProgramID)
	assert.Equal(t, []string{"서울", "전국"}, results[0].MatchedRegions)
}

func TestMatch_Wildcards(t *testing.T) {
	opps := []models.Opportunity{
		{ID: "a", Region: "부산", SupportArea: "기술개발"},
		{ID: "b", Region: "서울", SupportArea: "수출"},
	}

	t.Run("empty regions", func(t *testing.T) {
		results := Match(models.UserPreference{Categories: []string{"기술개발"}}, opps, nil)
		require.Len(t, results, 2)
		assert.Equal(t, 100, results[0].MatchScore)
		assert.Empty(t, results[0].MatchedRegions)
		assert.Equal(t, 50, results[1].MatchScore)
	})

	t.Run("empty categories", func(t *testing.T) {
		results := Match(models.UserPreference{Regions: []string{"서울"}}, opps, nil)
		require.Len(t, results, 2)
		assert.Equal(t, 50, results[0].MatchScore)
		assert.Equal(t, 100, results[1].MatchScore)
		assert.Empty(t, results[1].MatchedCategories)
	})
}

func TestMatch_WeightNormalization(t *testing.T) {
	prefs := models.UserPreference{Regions: []string{"서울"}, Categories: []string{"기술개발"}}
	regionOnly := []models.Opportunity{{ID: "r", Region: "서울", SupportArea: "수출"}}
	categoryOnly := []models.Opportunity{{ID: "c", Region: "부산", SupportArea: "기술개발"}}

	tests := []struct {
		name      string
		opts      Options
		opps      []models.Opportunity
		wantScore int
		wantLen   int
	}{
		{"30/70 region only", Options{RegionWeight: 30, CategoryWeight: 70}, regionOnly, 30, 1},
		{"30/70 category only", Options{RegionWeight: 30, CategoryWeight: 70}, categoryOnly, 70, 1},
		{"unnormalized 1/2 rounds", Options{RegionWeight: 1, CategoryWeight: 2}, regionOnly, 33, 1},
		{"equal small weights", Options{RegionWeight: 1, CategoryWeight: 1}, regionOnly, 50, 1},
		{"half rounds away from zero", Options{RegionWeight: 1, CategoryWeight: 7}, regionOnly, 13, 1},
		{"zero region weight drops region-only match", Options{RegionWeight: 0, CategoryWeight: 10}, regionOnly, 0, 0},
		{"both zero fall back to defaults", Options{}, regionOnly, 50, 1},
		{"negative clamps to zero", Options{RegionWeight: -20, CategoryWeight: 40}, categoryOnly, 100, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := tt.opts
			results := Match(prefs, tt.opps, &opts)
			require.Len(t, results, tt.wantLen)
			if tt.wantLen > 0 {
				assert.Equal(t, tt.wantScore, results[0].MatchScore)
			}
		})
	}
}

func TestMatch_DoesNotMutateInput(t *testing.T) {
	opps := scenarioOpportunities()
	opps[0].GeographicRegions = []string{"서울", "서울"}
	before := fmt.Sprintf("%#v", opps)

	results := Match(scenarioPreference(), opps, nil)
	results[0].MatchedRegions[0] = "changed"

	assert.Equal(t, before, fmt.Sprintf("%#v", opps))
}
