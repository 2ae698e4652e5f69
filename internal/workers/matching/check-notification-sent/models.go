// internal/workers/matching/check-notification-sent/models.go
package checknotificationsent

type Input struct {
	UserID        string `json:"userId"`
	OpportunityID string `json:"opportunityId"`
}

type Output struct {
	AlreadySent bool `json:"alreadySent"`
}
