// internal/content/render.go
package content

import (
	"strings"

	"support-match-workers/internal/common/metrics"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	tableStyle     = "border-collapse: collapse; width: 100%; margin: 8px 0;"
	headerStyle    = "border: 1px solid #ddd; padding: 8px; background-color: #f2f2f2; font-weight: bold; text-align: left;"
	cellStyle      = "border: 1px solid #ddd; padding: 8px;"
	evenRowStyle   = "background-color: #ffffff;"
	oddRowStyle    = "background-color: #f9f9f9;"
	tableClassName = "content-table"
)

// textLine is one entry of the DOM line stream: a non-blank text node and its
// trimmed text.
type textLine struct {
	node *html.Node
	text string
}

// collectLines returns the non-blank text nodes under root in document order.
func collectLines(root *html.Node) []textLine {
	var lines []textLine
	walk(root, func(n *html.Node) bool {
		if isRawText(n) {
			return false
		}
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				lines = append(lines, textLine{node: n, text: t})
			}
		}
		return true
	})
	return lines
}

// scanLines runs ScanTables over the DOM line stream.
func scanLines(lines []textLine) []TableBlock {
	texts := make([]string, len(lines))
	for i, l := range lines {
		texts[i] = l.text
	}
	var blocks []TableBlock
	ScanTables(sliceLines(texts), func(b TableBlock) {
		blocks = append(blocks, b)
	})
	return blocks
}

// carrier climbs from a line's text node to the largest ancestor below root
// whose text is exactly that line, so <p>## 테이블 시작 ##</p> is replaced as
// a whole while a line inside a larger paragraph only loses its text node.
func carrier(root *html.Node, l textLine) *html.Node {
	n := l.node
	for n.Parent != nil && n.Parent != root && strings.TrimSpace(textContent(n.Parent)) == l.text {
		n = n.Parent
	}
	return n
}

// ExtractAndRenderTables replaces every accepted pseudo-table block in
// htmlContent with a <table>. Invalid or unterminated blocks are left as they
// are. The input tree is never modified; a new tree is built and serialized.
func ExtractAndRenderTables(htmlContent string) string {
	root, err := parse(htmlContent)
	if err != nil {
		return stripTags(htmlContent)
	}

	out, n := renderTables(root)
	if n == 0 {
		return htmlContent
	}

	s, err := render(out)
	if err != nil {
		return stripTags(htmlContent)
	}
	return s
}

// renderTables returns a copy of root with every accepted block replaced, and
// the number of blocks. root itself is returned when there are none.
func renderTables(root *html.Node) (*html.Node, int) {
	lines := collectLines(root)
	blocks := scanLines(lines)
	if len(blocks) == 0 {
		return root, 0
	}

	replace := make(map[*html.Node]*html.Node, len(blocks))
	drop := make(map[*html.Node]bool)
	for _, b := range blocks {
		replace[carrier(root, lines[b.Start])] = buildTable(b.Table)
		for i := b.Start + 1; i <= b.End; i++ {
			drop[carrier(root, lines[i])] = true
		}
	}

	metrics.TablesRendered.Add(float64(len(blocks)))
	return cloneWith(root, replace, drop), len(blocks)
}

// cloneWith deep-copies n, substituting nodes found in replace and omitting
// nodes found in drop.
func cloneWith(n *html.Node, replace map[*html.Node]*html.Node, drop map[*html.Node]bool) *html.Node {
	c := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
		Attr:      append([]html.Attribute(nil), n.Attr...),
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if drop[child] {
			continue
		}
		if r, ok := replace[child]; ok {
			c.AppendChild(r)
			continue
		}
		c.AppendChild(cloneWith(child, replace, drop))
	}
	return c
}

func buildTable(t Table) *html.Node {
	table := element(atom.Table, "class", tableClassName, "style", tableStyle)

	thead := element(atom.Thead)
	headRow := element(atom.Tr)
	for _, h := range t.Header {
		th := element(atom.Th, "style", headerStyle)
		th.AppendChild(&html.Node{Type: html.TextNode, Data: h})
		headRow.AppendChild(th)
	}
	thead.AppendChild(headRow)
	table.AppendChild(thead)

	tbody := element(atom.Tbody)
	for i, row := range t.Rows {
		class, style := "even", evenRowStyle
		if i%2 == 1 {
			class, style = "odd", oddRowStyle
		}
		tr := element(atom.Tr, "class", class, "style", style)
		for _, cell := range row {
			td := element(atom.Td, "style", cellStyle)
			td.AppendChild(&html.Node{Type: html.TextNode, Data: cell})
			tr.AppendChild(td)
		}
		tbody.AppendChild(tr)
	}
	table.AppendChild(tbody)

	return table
}

// element builds an element node; attrs are key/value pairs.
func element(a atom.Atom, attrs ...string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}
	return n
}
