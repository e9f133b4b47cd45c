package imaging

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// White is the default stitch background.
var White = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// ParseColor parses a background color specification. Accepted forms are
// "#RRGGBB" (and CSS-style "#RGB") via go-colorful, plus "#RRGGBBAA" for
// an explicit alpha channel.
func ParseColor(spec string) (color.NRGBA, error) {
	s := strings.TrimSpace(spec)
	if s == "" {
		return color.NRGBA{}, fmt.Errorf("empty color string")
	}

	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 8 {
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", spec, err)
		}
		return color.NRGBA{
			R: uint8(val >> 24),
			G: uint8(val >> 16),
			B: uint8(val >> 8),
			A: uint8(val),
		}, nil
	}

	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", spec, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}
