// internal/workers/content/export-template/models.go
package exporttemplate

type Input struct {
	TemplateID string `json:"templateId,omitempty"`
	Content    string `json:"content"`
	FileName   string `json:"fileName,omitempty"`
}

type Output struct {
	TemplateID string `json:"templateId,omitempty"`
	Title      string `json:"title"`
	Text       string `json:"text"`
	FileName   string `json:"fileName"`
}
