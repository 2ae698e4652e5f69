// internal/workers/content/export-template/config.go
package exporttemplate

import (
	"time"

	"support-match-workers/internal/common/config"
)

type Config struct {
	TitleMaxLength int
	Timeout        time.Duration
}

func LoadConfig(cfg *config.Config) *Config {
	return &Config{
		TitleMaxLength: cfg.Content.TitleMaxLength,
		Timeout:        config.GetDuration(config.GetWorkerConfig(cfg, TaskType).Timeout),
	}
}
