// internal/workers/notification/notify-matched-opportunities/config.go
package notifymatchedopportunities

import (
	"time"

	"support-match-workers/internal/common/config"
)

type Config struct {
	EmailEnabled bool
	SMSEnabled   bool
	DetailURL    string
	Timeout      time.Duration
}

func LoadConfig(cfg *config.Config) *Config {
	return &Config{
		EmailEnabled: cfg.Notifications.EmailEnabled,
		SMSEnabled:   cfg.Notifications.SMSEnabled,
		DetailURL:    cfg.Notifications.DetailURL,
		Timeout:      config.GetDuration(config.GetWorkerConfig(cfg, TaskType).Timeout),
	}
}
