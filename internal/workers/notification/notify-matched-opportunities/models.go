// internal/workers/notification/notify-matched-opportunities/models.go
package notifymatchedopportunities

import (
	"support-match-workers/internal/matching"
	"support-match-workers/internal/models"
)

const (
	ChannelEmail = "email"
	ChannelSMS   = "sms"
)

// Reasons a run delivered nothing.
const (
	SkipNoSettings        = "NO_SETTINGS"
	SkipFrequencyMismatch = "FREQUENCY_MISMATCH"
	SkipNoNewMatches      = "NO_NEW_MATCHES"
	SkipNoChannel         = "NO_CHANNEL"
)

type Input struct {
	UserID        string               `json:"userId"`
	Frequency     string               `json:"frequency,omitempty"`
	Opportunities []models.Opportunity `json:"opportunities"`
	Options       *matching.Options    `json:"options,omitempty"`
}

type Output struct {
	NotificationID     string   `json:"notificationId"`
	MatchCount         int      `json:"matchCount"`
	NewCount           int      `json:"newCount"`
	SkippedAlreadySent int      `json:"skippedAlreadySent"`
	Channels           []string `json:"channels"`
	Delivered          bool     `json:"delivered"`
	SkipReason         string   `json:"skipReason,omitempty"`
	SentAt             string   `json:"sentAt,omitempty"`
}
