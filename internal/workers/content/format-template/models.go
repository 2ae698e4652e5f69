// internal/workers/content/format-template/models.go
package formattemplate

type Input struct {
	TemplateID string `json:"templateId,omitempty"`
	Content    string `json:"content"`
}

type Output struct {
	TemplateID string `json:"templateId,omitempty"`
	Title      string `json:"title"`
	HTML       string `json:"html"`
	TableCount int    `json:"tableCount"`
}
