// internal/workers/data-access/search-opportunities/config.go
package searchopportunities

import (
	"time"

	"support-match-workers/internal/common/config"
)

type Config struct {
	Timeout     time.Duration
	PageSize    int
	MaxPageSize int
}

func LoadConfig(cfg *config.Config) *Config {
	return &Config{
		Timeout:     config.GetDuration(config.GetWorkerConfig(cfg, TaskType).Timeout),
		PageSize:    cfg.Search.PageSize,
		MaxPageSize: cfg.Search.MaxPageSize,
	}
}
