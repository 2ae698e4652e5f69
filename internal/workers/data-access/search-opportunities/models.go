// internal/workers/data-access/search-opportunities/models.go
package searchopportunities

import "support-match-workers/internal/models"

type Input struct {
	Regions    []string `json:"regions"`
	Categories []string `json:"categories"`
	Keyword    string   `json:"keyword,omitempty"`
	OpenOnly   *bool    `json:"openOnly,omitempty"` // defaults to true
	Page       int      `json:"page"`               // 1-based
	PageSize   int      `json:"pageSize"`
}

type Output struct {
	Opportunities []models.Opportunity `json:"opportunities"`
	Total         int64                `json:"total"`
	Page          int                  `json:"page"`
	PageSize      int                  `json:"pageSize"`
	Took          int64                `json:"took"` // milliseconds
}
