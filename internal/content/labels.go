// internal/content/labels.go
package content

import (
	"strings"
	"unicode"

	"golang.org/x/net/html"
)

// Marker glyphs prefixed to colored text.
const (
	SectionLabelMarker     = "○ "
	InputPlaceholderMarker = "■ "
)

var (
	sectionLabelColor     = rgb{0, 128, 0}
	inputPlaceholderColor = rgb{0, 0, 255}
)

var markerGlyphs = []string{
	strings.TrimSpace(SectionLabelMarker),
	strings.TrimSpace(InputPlaceholderMarker),
}

// MarkSectionLabels prefixes the text of green elements with
// SectionLabelMarker and the text of blue elements with
// InputPlaceholderMarker. Text that already starts with either glyph is left
// alone, which makes the operation idempotent.
func MarkSectionLabels(htmlContent string) string {
	root, err := parse(htmlContent)
	if err != nil {
		return stripTags(htmlContent)
	}

	if markLabels(root) == 0 {
		return htmlContent
	}

	out, err := render(root)
	if err != nil {
		return stripTags(htmlContent)
	}
	return out
}

// markLabels mutates root in document order and returns how many markers it added.
func markLabels(root *html.Node) int {
	added := 0
	walk(root, func(n *html.Node) bool {
		if isRawText(n) {
			return false
		}
		c, ok := elementColor(n)
		if !ok {
			return true
		}

		var marker string
		switch c {
		case sectionLabelColor:
			marker = SectionLabelMarker
		case inputPlaceholderColor:
			marker = InputPlaceholderMarker
		default:
			return true
		}

		if prefixText(n, marker) {
			added++
		}
		return true
	})
	return added
}

// prefixText puts marker in front of the first non-blank text under n,
// keeping any leading whitespace. It reports whether it changed anything.
func prefixText(n *html.Node, marker string) bool {
	t := firstText(n)
	if t == nil {
		return false
	}

	rest := strings.TrimLeftFunc(t.Data, unicode.IsSpace)
	for _, g := range markerGlyphs {
		if strings.HasPrefix(rest, g) {
			return false
		}
	}

	lead := t.Data[:len(t.Data)-len(rest)]
	t.Data = lead + marker + rest
	return true
}

func firstText(n *html.Node) *html.Node {
	var found *html.Node
	walk(n, func(c *html.Node) bool {
		if found != nil || isRawText(c) {
			return false
		}
		if c.Type == html.TextNode && strings.TrimSpace(c.Data) != "" {
			found = c
			return false
		}
		return true
	})
	return found
}
