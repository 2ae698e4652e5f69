// internal/workers/matching/match-opportunities/models.go
package matchopportunities

import (
	"support-match-workers/internal/matching"
	"support-match-workers/internal/models"
)

type Input struct {
	UserID        string                 `json:"userId"`
	Opportunities []models.Opportunity   `json:"opportunities"`
	Preferences   *models.UserPreference `json:"preferences,omitempty"`
	Options       *matching.Options      `json:"options,omitempty"`
}

type Output struct {
	Matches    []models.MatchResult `json:"matches"`
	MatchCount int                  `json:"matchCount"`
}
