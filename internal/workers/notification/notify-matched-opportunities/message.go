// internal/workers/notification/notify-matched-opportunities/message.go
package notifymatchedopportunities

import (
	"fmt"
	"html/template"
	"strings"

	"support-match-workers/internal/models"
)

type digestItem struct {
	Title        string
	Organization string
	Regions      string
	SupportArea  string
	Deadline     string
	Score        int
	URL          string
}

var digestHTML = template.Must(template.New("digest").Parse(`<html><body>
<p>설정하신 조건에 맞는 새 지원사업 {{len .}}건이 있습니다.</p>
<ul>
{{range .}}<li><a href="{{.URL}}">{{.Title}}</a> ({{.Organization}}) 지역: {{.Regions}} / 분야: {{.SupportArea}}{{if .Deadline}} / 마감: {{.Deadline}}{{end}} / 적합도 {{.Score}}%</li>
{{end}}</ul>
</body></html>`))

func (h *Handler) digestItems(matches []models.MatchResult, byID map[string]models.Opportunity) []digestItem {
	items := make([]digestItem, 0, len(matches))
	for _, m := range matches {
		o := byID[m.ProgramID]
		title := o.Title
		if title == "" {
			title = o.ID
		}
		url := o.ApplyURL
		if h.config.DetailURL != "" {
			url = h.config.DetailURL + o.ID
		}
		items = append(items, digestItem{
			Title:        title,
			Organization: o.Organization,
			Regions:      strings.Join(o.RegionValues(), ", "),
			SupportArea:  o.SupportArea,
			Deadline:     o.Deadline,
			Score:        m.MatchScore,
			URL:          url,
		})
	}
	return items
}

func emailSubject(n int) string {
	return fmt.Sprintf("[지원사업 알림] 새 맞춤 지원사업 %d건", n)
}

func emailBodies(items []digestItem) (string, string, error) {
	var text strings.Builder
	fmt.Fprintf(&text, "설정하신 조건에 맞는 새 지원사업 %d건이 있습니다.\n\n", len(items))
	for _, it := range items {
		fmt.Fprintf(&text, "- %s (%s) 지역: %s / 분야: %s", it.Title, it.Organization, it.Regions, it.SupportArea)
		if it.Deadline != "" {
			fmt.Fprintf(&text, " / 마감: %s", it.Deadline)
		}
		fmt.Fprintf(&text, " / 적합도 %d%%\n", it.Score)
		if it.URL != "" {
			fmt.Fprintf(&text, "  %s\n", it.URL)
		}
	}

	var html strings.Builder
	if err := digestHTML.Execute(&html, items); err != nil {
		return "", "", err
	}
	return text.String(), html.String(), nil
}

// smsMessage names the first program and counts the rest.
func smsMessage(items []digestItem) string {
	if len(items) == 1 {
		return fmt.Sprintf("[지원사업 알림] %s", items[0].Title)
	}
	return fmt.Sprintf("[지원사업 알림] %s 외 %d건", items[0].Title, len(items)-1)
}
