// internal/workers/content/format-template/handler_test.go
package formattemplate

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
	return NewHandler(&Config{TitleMaxLength: 10, Timeout: time.Second}, logger.NewTestLogger(t))
}

func TestExecute(t *testing.T) {
	in := `<h1>2025년 예비창업패키지 사업계획서</h1>` +
		`<p><span style="color: rgb(0, 128, 0)">일반현황</span></p>` +
		`<p>` + content.TableStartMarker + `</p><p>구분,내용</p><p>기업명,</p><p>` + content.TableEndMarker + `</p>`

	out, err := newHandler(t).Execute(&Input{TemplateID: "tpl-1", Content: in})
	require.NoError(t, err)

	assert.Equal(t, "tpl-1", out.TemplateID)
	assert.Equal(t, "2025년 예비창업...", out.Title)
	assert.Equal(t, 1, out.TableCount)
	assert.Contains(t, out.HTML, "○ 일반현황")
	assert.Contains(t, out.HTML, "<table")
}

func TestExecute_EmptyContent(t *testing.T) {
	for _, c := range []string{"", "   \n\t"} {
		_, err := newHandler(t).Execute(&Input{Content: c})
		require.Error(t, err)
		assert.Equal(t, errors.ErrCodeContentEmpty, errors.Normalize(err).Code)
	}
}
