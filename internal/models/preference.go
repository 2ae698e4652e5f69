// internal/models/preference.go
package models

import "time"

// Notification frequency tags.
const (
	FrequencyImmediate = "immediate"
	FrequencyDaily     = "daily"
	FrequencyWeekly    = "weekly"
)

// UserPreference is the region and category filter a user receives
// notifications for. An empty dimension matches anything.
type UserPreference struct {
	Regions    []string `json:"regions"`
	Categories []string `json:"categories"`
}

// IsEmpty reports whether both dimensions are empty. An empty preference
// matches nothing.
func (p UserPreference) IsEmpty() bool {
	return len(p.Regions) == 0 && len(p.Categories) == 0
}

// NotificationSettings is the stored notification_settings row for a user.
type NotificationSettings struct {
	UserID       string    `json:"userId"`
	Regions      []string  `json:"regions"`
	Categories   []string  `json:"categories"`
	Frequency    string    `json:"frequency"`
	EmailEnabled bool      `json:"emailEnabled"`
	SMSEnabled   bool      `json:"smsEnabled"`
	Email        string    `json:"email,omitempty"`
	PhoneNumber  string    `json:"phoneNumber,omitempty"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (s NotificationSettings) Preference() UserPreference {
	return UserPreference{Regions: s.Regions, Categories: s.Categories}
}
