// internal/content/export.go
package content

import (
	"strings"

	"golang.org/x/net/html"
)

// FormatPlainText replaces every accepted pseudo-table block in text with a
// pipe table. Lines outside blocks are kept as they are.
func FormatPlainText(text string) string {
	lines := strings.Split(text, "\n")

	var blocks []TableBlock
	ScanTables(sliceLines(lines), func(b TableBlock) {
		blocks = append(blocks, b)
	})
	if len(blocks) == 0 {
		return text
	}

	out := make([]string, 0, len(lines))
	next := 0
	for i := 0; i < len(lines); {
		if next < len(blocks) && blocks[next].Start == i {
			out = append(out, pipeTable(blocks[next].Table)...)
			i = blocks[next].End + 1
			next++
			continue
		}
		out = append(out, lines[i])
		i++
	}
	return strings.Join(out, "\n")
}

// ExportPlainText converts htmlContent to plain text, one line per block
// element, with pseudo-tables rendered as pipe tables. It scans the same line
// stream as ExtractAndRenderTables, so both agree on which blocks are tables.
func ExportPlainText(htmlContent string) string {
	root, err := parse(htmlContent)
	if err != nil {
		return FormatPlainText(stripTags(htmlContent))
	}

	lines := collectLines(root)
	blocks := scanLines(lines)

	var out []string
	var cur []string
	var curBlock *html.Node
	flush := func() {
		if len(cur) > 0 {
			out = append(out, strings.Join(cur, " "))
			cur = cur[:0]
		}
		curBlock = nil
	}

	next := 0
	for i := 0; i < len(lines); {
		if next < len(blocks) && blocks[next].Start == i {
			flush()
			out = append(out, pipeTable(blocks[next].Table)...)
			i = blocks[next].End + 1
			next++
			continue
		}

		b := enclosingBlock(root, lines[i].node)
		if b != curBlock {
			flush()
			curBlock = b
		}
		cur = append(cur, collapseSpace(lines[i].text))
		i++
	}
	flush()

	return strings.Join(out, "\n")
}

// enclosingBlock returns the nearest block-level ancestor of n, or root.
func enclosingBlock(root, n *html.Node) *html.Node {
	for p := n.Parent; p != nil && p != root; p = p.Parent {
		if isBlock(p) {
			return p
		}
	}
	return root
}

func pipeTable(t Table) []string {
	lines := make([]string, 0, len(t.Rows)+2)
	lines = append(lines, pipeRow(t.Header))

	sep := make([]string, len(t.Header))
	for i := range sep {
		sep[i] = "---"
	}
	lines = append(lines, pipeRow(sep))

	for _, r := range t.Rows {
		lines = append(lines, pipeRow(r))
	}
	return lines
}

var pipeEscaper = strings.NewReplacer("|", `\|`)

func pipeRow(cells []string) string {
	var b strings.Builder
	b.WriteString("|")
	for _, c := range cells {
		b.WriteString(" ")
		b.WriteString(pipeEscaper.Replace(c))
		b.WriteString(" |")
	}
	return b.String()
}
