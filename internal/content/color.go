// internal/content/color.go
package content

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

type rgb struct {
	r, g, b int
}

var namedColors = map[string]rgb{
	"black":   {0, 0, 0},
	"silver":  {192, 192, 192},
	"gray":    {128, 128, 128},
	"grey":    {128, 128, 128},
	"white":   {255, 255, 255},
	"maroon":  {128, 0, 0},
	"red":     {255, 0, 0},
	"purple":  {128, 0, 128},
	"fuchsia": {255, 0, 255},
	"magenta": {255, 0, 255},
	"green":   {0, 128, 0},
	"lime":    {0, 255, 0},
	"olive":   {128, 128, 0},
	"yellow":  {255, 255, 0},
	"navy":    {0, 0, 128},
	"blue":    {0, 0, 255},
	"teal":    {0, 128, 128},
	"aqua":    {0, 255, 255},
	"cyan":    {0, 255, 255},
	"orange":  {255, 165, 0},
}

// parseColor normalizes a CSS color value to an RGB triple. It understands
// named colors, #rgb, #rgba, #rrggbb, #rrggbbaa and rgb()/rgba() with integer
// or percentage channels. Alpha is ignored.
func parseColor(value string) (rgb, bool) {
	v := strings.ToLower(strings.TrimSpace(value))
	v = strings.TrimSpace(strings.TrimSuffix(v, "!important"))

	if c, ok := namedColors[v]; ok {
		return c, true
	}
	if strings.HasPrefix(v, "#") {
		return parseHexColor(v[1:])
	}
	if strings.HasPrefix(v, "rgb(") || strings.HasPrefix(v, "rgba(") {
		open := strings.IndexByte(v, '(')
		if !strings.HasSuffix(v, ")") {
			return rgb{}, false
		}
		return parseRGBFunc(v[open+1 : len(v)-1])
	}
	return rgb{}, false
}

func parseHexColor(h string) (rgb, bool) {
	switch len(h) {
	case 3, 4:
		var ch [3]int
		for i := 0; i < 3; i++ {
			n, err := strconv.ParseUint(string([]byte{h[i], h[i]}), 16, 8)
			if err != nil {
				return rgb{}, false
			}
			ch[i] = int(n)
		}
		return rgb{ch[0], ch[1], ch[2]}, true
	case 6, 8:
		var ch [3]int
		for i := 0; i < 3; i++ {
			n, err := strconv.ParseUint(h[2*i:2*i+2], 16, 8)
			if err != nil {
				return rgb{}, false
			}
			ch[i] = int(n)
		}
		return rgb{ch[0], ch[1], ch[2]}, true
	}
	return rgb{}, false
}

// parseRGBFunc parses the argument list of rgb()/rgba() in either the comma
// or the space/slash syntax.
func parseRGBFunc(args string) (rgb, bool) {
	args = strings.ReplaceAll(args, "/", " ")
	args = strings.ReplaceAll(args, ",", " ")
	parts := strings.Fields(args)
	if len(parts) < 3 || len(parts) > 4 {
		return rgb{}, false
	}

	var ch [3]int
	for i := 0; i < 3; i++ {
		n, ok := parseChannel(parts[i])
		if !ok {
			return rgb{}, false
		}
		ch[i] = n
	}
	return rgb{ch[0], ch[1], ch[2]}, true
}

func parseChannel(s string) (int, bool) {
	percent := strings.HasSuffix(s, "%")
	f, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
	if err != nil {
		return 0, false
	}
	if percent {
		f = f * 255 / 100
	}
	n := int(math.Round(f))
	if n < 0 {
		n = 0
	}
	if n > 255 {
		n = 255
	}
	return n, true
}

// styleColor returns the value of the last color declaration in a style
// attribute.
func styleColor(style string) (string, bool) {
	var value string
	found := false
	for _, decl := range strings.Split(style, ";") {
		name, val, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		if strings.ToLower(strings.TrimSpace(name)) == "color" {
			value = strings.TrimSpace(val)
			found = true
		}
	}
	return value, found
}

// elementColor resolves the text color an element declares itself, from its
// style attribute or, on <font>, the color attribute.
func elementColor(n *html.Node) (rgb, bool) {
	if n.Type != html.ElementNode {
		return rgb{}, false
	}
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == "style" {
			if v, ok := styleColor(a.Val); ok {
				return parseColor(v)
			}
		}
	}
	if n.DataAtom == atom.Font {
		for _, a := range n.Attr {
			if a.Namespace == "" && a.Key == "color" {
				return parseColor(a.Val)
			}
		}
	}
	return rgb{}, false
}
