// internal/store/opportunity_search.go
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	apperrors "support-match-workers/internal/common/errors"
	"support-match-workers/internal/models"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
)

// SearchQuery narrows an opportunity search. Empty fields do not filter.
type SearchQuery struct {
	Regions    []string
	Categories []string
	Keyword    string
	OpenOnly   bool
	From       int
	Size       int
}

// SearchResult is one page of opportunities.
type SearchResult struct {
	Opportunities []models.Opportunity
	TotalHits     int64
	Took          int64 // milliseconds
}

// OpportunitySearcher queries the support program index.
type OpportunitySearcher struct {
	client *elasticsearch.Client
	index  string
	now    func() time.Time
}

func NewOpportunitySearcher(client *elasticsearch.Client, index string) *OpportunitySearcher {
	return &OpportunitySearcher{client: client, index: index, now: time.Now}
}

func (s *OpportunitySearcher) Index() string {
	return s.index
}

// Search runs q against the index. A missing index is INDEX_NOT_FOUND, an
// expired context SEARCH_TIMEOUT and anything else SEARCH_QUERY_FAILED.
func (s *OpportunitySearcher) Search(ctx context.Context, q SearchQuery) (*SearchResult, error) {
	body, err := json.Marshal(s.buildQuery(q))
	if err != nil {
		return nil, apperrors.NewSearchQueryFailedError(s.index, err)
	}

	from, size := q.From, q.Size
	req := esapi.SearchRequest{
		Index:          []string{s.index},
		Body:           bytes.NewReader(body),
		From:           &from,
		Size:           &size,
		TrackTotalHits: true,
	}

	start := time.Now()
	res, err := req.Do(ctx, s.client)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, apperrors.NewSearchTimeoutError(s.index)
		}
		return nil, apperrors.NewSearchQueryFailedError(s.index, err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return nil, apperrors.NewIndexNotFoundError(s.index)
	}
	if res.IsError() {
		return nil, apperrors.NewSearchQueryFailedError(s.index, fmt.Errorf("search failed: %s", res.Status()))
	}

	var r searchResponse
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return nil, apperrors.NewSearchQueryFailedError(s.index, fmt.Errorf("decode response: %w", err))
	}
	if r.TimedOut {
		return nil, apperrors.NewSearchTimeoutError(s.index)
	}

	opps := make([]models.Opportunity, 0, len(r.Hits.Hits))
	for _, h := range r.Hits.Hits {
		o := h.Source
		if o.ID == "" {
			o.ID = h.ID
		}
		opps = append(opps, o)
	}

	return &SearchResult{
		Opportunities: opps,
		TotalHits:     r.Hits.Total.Value,
		Took:          time.Since(start).Milliseconds(),
	}, nil
}

type searchResponse struct {
	TimedOut bool `json:"timed_out"`
	Hits     struct {
		Total struct {
			Value int64 `json:"value"`
		} `json:"total"`
		Hits []struct {
			ID     string             `json:"_id"`
			Source models.Opportunity `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

// buildQuery builds a bool query. Region filters always admit nationwide
// programs, since those match every region.
func (s *OpportunitySearcher) buildQuery(q SearchQuery) map[string]interface{} {
	must := []interface{}{}
	filter := []interface{}{}

	if q.Keyword != "" {
		must = append(must, map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  q.Keyword,
				"fields": []string{"title^3", "organization", "supportArea"},
				"type":   "best_fields",
			},
		})
	}

	if len(q.Regions) > 0 {
		regions := append([]string{models.NationwideRegion}, q.Regions...)
		filter = append(filter, map[string]interface{}{
			"bool": map[string]interface{}{
				"should": []interface{}{
					map[string]interface{}{"terms": map[string]interface{}{"region": regions}},
					map[string]interface{}{"terms": map[string]interface{}{"geographicRegions": regions}},
				},
				"minimum_should_match": 1,
			},
		})
	}

	if len(q.Categories) > 0 {
		filter = append(filter, map[string]interface{}{
			"terms": map[string]interface{}{"supportArea": q.Categories},
		})
	}

	if q.OpenOnly {
		filter = append(filter, map[string]interface{}{
			"range": map[string]interface{}{
				"deadline": map[string]interface{}{"gte": s.now().Format("2006-01-02")},
			},
		})
	}

	if len(must) == 0 {
		must = append(must, map[string]interface{}{"match_all": map[string]interface{}{}})
	}

	return map[string]interface{}{
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"must":   must,
				"filter": filter,
			},
		},
		"sort": []interface{}{
			map[string]interface{}{"deadline": map[string]interface{}{"order": "asc", "missing": "_last"}},
			"_score",
		},
	}
}
