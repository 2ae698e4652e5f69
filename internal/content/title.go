// internal/content/title.go
package content

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// DefaultTitleLength is the rune limit ExtractTitle truncates to.
const DefaultTitleLength = 50

const ellipsis = "..."

// entityDecoder decodes the entities editors escape markup with. It is a
// single pass, so "&amp;lt;" becomes "&lt;" and not "<".
var entityDecoder = strings.NewReplacer(
	"&lt;", "<",
	"&gt;", ">",
	"&amp;", "&",
	"&quot;", `"`,
	"&#39;", "'",
)

var titleElements = map[atom.Atom]bool{
	atom.P: true, atom.H1: true, atom.H2: true, atom.H3: true,
	atom.H4: true, atom.H5: true, atom.H6: true,
}

// ExtractTitle returns the text of the first paragraph or heading in
// htmlContent, truncated to DefaultTitleLength runes.
func ExtractTitle(htmlContent string) string {
	return ExtractTitleN(htmlContent, DefaultTitleLength)
}

// ExtractTitleN is ExtractTitle with an explicit rune limit. When no
// paragraph or heading has text, the whole document text is used.
func ExtractTitleN(htmlContent string, maxLen int) string {
	decoded := entityDecoder.Replace(htmlContent)

	var text string
	root, err := parse(decoded)
	if err != nil {
		text = stripTags(decoded)
	} else {
		text = firstTitleText(root)
		if strings.TrimSpace(text) == "" {
			text = textContent(root)
		}
	}

	return truncate(collapseSpace(text), maxLen)
}

func firstTitleText(root *html.Node) string {
	var found *html.Node
	walk(root, func(n *html.Node) bool {
		if found != nil {
			return false
		}
		if n.Type == html.ElementNode && titleElements[n.DataAtom] {
			found = n
			return false
		}
		return true
	})
	if found == nil {
		return ""
	}
	return textContent(found)
}

func truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + ellipsis
}
