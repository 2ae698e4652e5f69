// internal/models/models_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpportunity_RegionValues(t *testing.T) {
	tests := []struct {
		name string
		opp  Opportunity
		want []string
	}{
		{"geographic regions win", Opportunity{Region: "서울", GeographicRegions: []string{"부산", "전국"}}, []string{"부산", "전국"}},
		{"falls back to region", Opportunity{Region: "서울"}, []string{"서울"}},
		{"no region at all", Opportunity{}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.opp.RegionValues())
		})
	}
}

func TestNotificationSettings_Preference(t *testing.T) {
	s := NotificationSettings{UserID: "u1", Regions: []string{"서울"}, Categories: []string{"기술개발"}}
	p := s.Preference()
	assert.Equal(t, []string{"서울"}, p.Regions)
	assert.Equal(t, []string{"기술개발"}, p.Categories)
	assert.False(t, p.IsEmpty())
	assert.True(t, UserPreference{}.IsEmpty())
}
