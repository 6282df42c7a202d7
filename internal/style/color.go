package style

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ParseColor parses "#RGB", "#RRGGBB" and "#RRGGBBAA" hex notation into
// an NRGBA color. An empty string is not a color; callers decide whether
// empty means "unset".
func ParseColor(s string) (color.NRGBA, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return color.NRGBA{}, fmt.Errorf("color %q must start with '#'", s)
	}
	switch len(hex) {
	case 3:
		var expanded strings.Builder
		for _, c := range hex {
			expanded.WriteRune(c)
			expanded.WriteRune(c)
		}
		hex = expanded.String()
	case 6, 8:
	default:
		return color.NRGBA{}, fmt.Errorf("color %q has invalid length", s)
	}
	v, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("color %q is not valid hex", s)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
