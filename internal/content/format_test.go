// internal/content/format_test.go
package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	in := `<h2>2025 창업 지원</h2>` +
		`<p><span style="color: green">사업개요</span></p>` +
		`<p>` + TableStartMarker + `</p><p>항목,내용</p><p>기간,상시</p><p>` + TableEndMarker + `</p>` +
		`<p><font color="blue">회사명</font></p>`

	doc := Format(in, 0)

	assert.Equal(t, "2025 창업 지원", doc.Title)
	assert.Equal(t, 1, doc.TableCount)
	assert.Contains(t, doc.HTML, "○ 사업개요")
	assert.Contains(t, doc.HTML, "■ 회사명")

	tables := findTables(t, doc.HTML)
	require.Len(t, tables, 1)
	assert.Equal(t, []string{"항목", "내용"}, tables[0].header)
}

func TestFormat_Untouched(t *testing.T) {
	in := `<p>평범한 문서입니다</p>`

	doc := Format(in, 5)

	assert.Equal(t, "평범한 문...", doc.Title)
	assert.Equal(t, in, doc.HTML)
	assert.Zero(t, doc.TableCount)
}

func TestFormat_LabelsOnlyStillRendered(t *testing.T) {
	doc := Format(`<span style="color:green">라벨</span>`, 0)
	assert.Equal(t, `<span style="color:green">○ 라벨</span>`, doc.HTML)
	assert.Zero(t, doc.TableCount)
}
