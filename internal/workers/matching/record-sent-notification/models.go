// internal/workers/matching/record-sent-notification/models.go
package recordsentnotification

type Input struct {
	UserID        string `json:"userId"`
	OpportunityID string `json:"opportunityId"`
	Frequency     string `json:"frequency,omitempty"`
}

type Output struct {
	Recorded bool `json:"recorded"`
}
