// internal/content/format.go
package content

// Document is a template after formatting for preview.
type Document struct {
	Title      string
	HTML       string
	TableCount int
}

// Format extracts the title and renders tables and section labels in a single
// parse. A titleLen of zero or less means DefaultTitleLength.
func Format(htmlContent string, titleLen int) Document {
	if titleLen <= 0 {
		titleLen = DefaultTitleLength
	}
	doc := Document{Title: ExtractTitleN(htmlContent, titleLen)}

	root, err := parse(htmlContent)
	if err != nil {
		doc.HTML = stripTags(htmlContent)
		return doc
	}

	out, tables := renderTables(root)
	marked := markLabels(out)
	doc.TableCount = tables

	if tables == 0 && marked == 0 {
		doc.HTML = htmlContent
		return doc
	}

	s, err := render(out)
	if err != nil {
		doc.HTML = stripTags(htmlContent)
		return doc
	}
	doc.HTML = s
	return doc
}
