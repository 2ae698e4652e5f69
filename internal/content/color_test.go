// internal/content/color_test.go
package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		value string
		want  rgb
		ok    bool
	}{
		{"green", rgb{0, 128, 0}, true},
		{" Blue ", rgb{0, 0, 255}, true},
		{"#008000", rgb{0, 128, 0}, true},
		{"#00F", rgb{0, 0, 255}, true},
		{"#0000ffcc", rgb{0, 0, 255}, true},
		{"#00fc", rgb{0, 0, 255}, true},
		{"rgb(0, 128, 0)", rgb{0, 128, 0}, true},
		{"rgba(0,0,255,0.5)", rgb{0, 0, 255}, true},
		{"rgb(0 0 255 / 50%)", rgb{0, 0, 255}, true},
		{"rgb(0%, 50.2%, 0%)", rgb{0, 128, 0}, true},
		{"rgb(0, 300, -4)", rgb{0, 255, 0}, true},
		{"blue !important", rgb{0, 0, 255}, true},
		{"#12", rgb{}, false},
		{"#zzzzzz", rgb{}, false},
		{"rgb(0, 128)", rgb{}, false},
		{"rgb(0, 128, 0", rgb{}, false},
		{"hsl(120, 100%, 25%)", rgb{}, false},
		{"", rgb{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, ok := parseColor(tt.value)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStyleColor_LastDeclarationWins(t *testing.T) {
	v, ok := styleColor("color: red; font-weight: bold; COLOR : #0000ff")
	assert.True(t, ok)
	assert.Equal(t, "#0000ff", v)

	_, ok = styleColor("background-color: green")
	assert.False(t, ok)
}
