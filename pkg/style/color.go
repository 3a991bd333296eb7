package style

import (
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseColor decodes #rgb or #rrggbb hex, or any SVG 1.1 color name,
// into an opaque RGBA. The second result is false when the value is not
// a recognizable color.
func ParseColor(s string) (color.RGBA, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if after, ok := strings.CutPrefix(s, "#"); ok {
		return parseHex(after)
	}
	if c, ok := colornames.Map[s]; ok {
		return c, true
	}
	return color.RGBA{}, false
}

func parseHex(hex string) (color.RGBA, bool) {
	switch len(hex) {
	case 3:
		r, okR := hexNibble(hex[0])
		g, okG := hexNibble(hex[1])
		b, okB := hexNibble(hex[2])
		if !okR || !okG || !okB {
			return color.RGBA{}, false
		}
		// 0xF expands to 0xFF, matching CSS short form.
		return color.RGBA{R: r * 17, G: g * 17, B: b * 17, A: 0xFF}, true
	case 6:
		var c [3]uint8
		for i := range c {
			hi, okHi := hexNibble(hex[2*i])
			lo, okLo := hexNibble(hex[2*i+1])
			if !okHi || !okLo {
				return color.RGBA{}, false
			}
			c[i] = hi<<4 | lo
		}
		return color.RGBA{R: c[0], G: c[1], B: c[2], A: 0xFF}, true
	}
	return color.RGBA{}, false
}

func hexNibble(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	}
	return 0, false
}
