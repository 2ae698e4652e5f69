// internal/models/match.go
package models

import "time"

// MatchResult records how one opportunity scored against a preference.
type MatchResult struct {
	ProgramID         string   `json:"programId"`
	MatchScore        int      `json:"matchScore"`
	MatchedRegions    []string `json:"matchedRegions"`
	MatchedCategories []string `json:"matchedCategories"`
}

// SentNotificationRecord marks an opportunity as already notified to a user.
type SentNotificationRecord struct {
	UserID        string    `json:"userId"`
	OpportunityID string    `json:"opportunityId"`
	Frequency     string    `json:"frequency"`
	SentAt        time.Time `json:"sentAt"`
}
