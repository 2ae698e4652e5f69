// internal/matching/matcher.go
package matching

import (
	"math"

	"support-match-workers/internal/common/metrics"
	"support-match-workers/internal/models"
)

const (
	DefaultRegionWeight   = 50
	DefaultCategoryWeight = 50
)

// Options tunes scoring. Weights are the contribution of each dimension when
// it matches; the score is normalized so a double match is 100.
type Options struct {
	MinimumMatchScore int `json:"minimumMatchScore"`
	RegionWeight      int `json:"regionWeight"`
	CategoryWeight    int `json:"categoryWeight"`
}

func DefaultOptions() Options {
	return Options{
		MinimumMatchScore: 0,
		RegionWeight:      DefaultRegionWeight,
		CategoryWeight:    DefaultCategoryWeight,
	}
}

// normalized clamps negative weights to zero and falls back to the default
// weights when both are zero.
func (o Options) normalized() Options {
	if o.RegionWeight < 0 {
		o.RegionWeight = 0
	}
	if o.CategoryWeight < 0 {
		o.CategoryWeight = 0
	}
	if o.RegionWeight == 0 && o.CategoryWeight == 0 {
		o.RegionWeight = DefaultRegionWeight
		o.CategoryWeight = DefaultCategoryWeight
	}
	return o
}

// Match scores every opportunity against prefs and returns the ones whose
// score is positive and at least opts.MinimumMatchScore, in input order.
// A nil opts means DefaultOptions. A preference with no regions and no
// categories matches nothing.
func Match(prefs models.UserPreference, opportunities []models.Opportunity, opts *Options) []models.MatchResult {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	o = o.normalized()

	results := make([]models.MatchResult, 0)
	if prefs.IsEmpty() || len(opportunities) == 0 {
		return results
	}

	regions := toSet(prefs.Regions)
	categories := toSet(prefs.Categories)
	total := o.RegionWeight + o.CategoryWeight

	for _, opp := range opportunities {
		metrics.OpportunitiesEvaluated.Inc()

		matchedRegions := matchRegions(opp.RegionValues(), regions)
		regionMatch := len(regions) == 0 || len(matchedRegions) > 0

		matchedCategories := make([]string, 0, 1)
		if _, ok := categories[opp.SupportArea]; ok {
			matchedCategories = append(matchedCategories, opp.SupportArea)
		}
		categoryMatch := len(categories) == 0 || len(matchedCategories) > 0

		raw := 0
		if regionMatch {
			raw += o.RegionWeight
		}
		if categoryMatch {
			raw += o.CategoryWeight
		}
		score := int(math.Round(100 * float64(raw) / float64(total)))

		if score <= 0 || score < o.MinimumMatchScore {
			continue
		}

		metrics.MatchResults.Inc()
		results = append(results, models.MatchResult{
			ProgramID:         opp.ID,
			MatchScore:        score,
			MatchedRegions:    matchedRegions,
			MatchedCategories: matchedCategories,
		})
	}

	return results
}

// matchRegions returns the opportunity's own region values that are the
// nationwide sentinel or a preferred region, de-duplicated in input order.
func matchRegions(values []string, preferred map[string]struct{}) []string {
	matched := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if _, dup := seen[v]; dup {
			continue
		}
		_, ok := preferred[v]
		if v == models.NationwideRegion || ok {
			matched = append(matched, v)
			seen[v] = struct{}{}
		}
	}
	return matched
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
