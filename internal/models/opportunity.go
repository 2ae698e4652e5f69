// internal/models/opportunity.go
package models

// NationwideRegion is the region value meaning a program is open in every region.
const NationwideRegion = "전국"

// Opportunity is a government support program offered to users.
type Opportunity struct {
	ID                string   `json:"id"`
	Title             string   `json:"title,omitempty"`
	Region            string   `json:"region"`
	GeographicRegions []string `json:"geographicRegions,omitempty"`
	SupportArea       string   `json:"supportArea"`
	Organization      string   `json:"organization,omitempty"`
	ApplyURL          string   `json:"applyUrl,omitempty"`
	Deadline          string   `json:"deadline,omitempty"` // YYYY-MM-DD
}

// RegionValues returns the region values used for matching: GeographicRegions
// when present, otherwise the single Region.
func (o Opportunity) RegionValues() []string {
	if len(o.GeographicRegions) > 0 {
		return o.GeographicRegions
	}
	if o.Region == "" {
		return nil
	}
	return []string{o.Region}
}
