// internal/workers/content/export-template/handler_test.go
package exporttemplate

import (
	"testing"
	"time"

	"support-match-workers/internal/common/errors"
	"support-match-workers/internal/common/logger"
	"support-match-workers/internal/content"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandler(t *testing.T) *Handler {
	return NewHandler(&Config{TitleMaxLength: 50, Timeout: time.Second}, logger.NewTestLogger(t))
}

func TestExecute(t *testing.T) {
	in := `<h1>사업계획서</h1>` +
		`<p>` + content.TableStartMarker + `</p><p>구분,내용</p><p>기업명,테스트</p><p>` + content.TableEndMarker + `</p>` +
		`<p>끝</p>`

	out, err := newHandler(t).Execute(&Input{Content: in})
	require.NoError(t, err)

	assert.Equal(t, "사업계획서", out.Title)
	assert.Equal(t, "사업계획서.txt", out.FileName)
	assert.Equal(t, "사업계획서\n| 구분 | 내용 |\n| --- | --- |\n| 기업명 | 테스트 |\n끝", out.Text)
}

func TestExecute_EmptyContent(t *testing.T) {
	_, err := newHandler(t).Execute(&Input{Content: " "})
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeContentEmpty, errors.Normalize(err).Code)
}

func TestFileName(t *testing.T) {
	tests := []struct {
		requested string
		title     string
		want      string
	}{
		{"plan", "무시됨", "plan.txt"},
		{"plan.TXT", "", "plan.TXT"},
		{"", "2025/상반기: 계획", "2025_상반기_ 계획.txt"},
		{"", "아주 긴 제목...", "아주 긴 제목.txt"},
		{"", "", "template.txt"},
		{"  ", "???", "___.txt"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, fileName(tt.requested, tt.title), tt)
	}
}
