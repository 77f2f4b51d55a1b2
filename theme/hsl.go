// Package theme derives particle colors from a single primary HSL token.
//
// The token uses the CSS custom property form "H S% L%" (for example
// "262 83% 58%"). Sources are read once per frame so a theme switch takes
// effect on the next frame without restarting the field.
package theme

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/particle-field/render"
)

// ErrMalformed is returned for tokens that are not an "H S% L%" triple
var ErrMalformed = errors.New("malformed HSL token")

// HSL is a color with hue in degrees and saturation/lightness in [0, 1]
type HSL struct {
	H, S, L float64
}

// Parse reads a space-delimited "H S% L%" triple, percent signs optional
// A "#rrggbb" hex color is accepted as well and converted to HSL
func Parse(token string) (HSL, error) {
	token = strings.TrimSpace(token)
	if strings.HasPrefix(token, "#") {
		return ParseHex(token)
	}

	fields := strings.Fields(token)
	if len(fields) != 3 {
		return HSL{}, fmt.Errorf("%w: %q: want 3 fields, got %d", ErrMalformed, token, len(fields))
	}

	h, err := strconv.ParseFloat(strings.TrimSuffix(fields[0], "deg"), 64)
	if err != nil {
		return HSL{}, fmt.Errorf("%w: hue %q: %v", ErrMalformed, fields[0], err)
	}
	s, err := parsePercent(fields[1])
	if err != nil {
		return HSL{}, fmt.Errorf("%w: saturation: %v", ErrMalformed, err)
	}
	l, err := parsePercent(fields[2])
	if err != nil {
		return HSL{}, fmt.Errorf("%w: lightness: %v", ErrMalformed, err)
	}

	return HSL{H: normalizeHue(h), S: s, L: l}, nil
}

// ParseHex converts a "#rrggbb" color to HSL
func ParseHex(hex string) (HSL, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return HSL{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	h, s, l := c.Hsl()
	return HSL{H: h, S: s, L: l}, nil
}

// MustParse is Parse for compile-time constants, panics on error
func MustParse(token string) HSL {
	c, err := Parse(token)
	if err != nil {
		panic(err)
	}
	return c
}

func parsePercent(field string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSuffix(field, "%"), 64)
	if err != nil {
		return 0, fmt.Errorf("%q: %v", field, err)
	}
	if v < 0 || v > 100 {
		return 0, fmt.Errorf("%q out of range [0, 100]", field)
	}
	return v / 100, nil
}

// normalizeHue folds any angle into [0, 360)
func normalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// String formats the color back into token form
func (c HSL) String() string {
	return fmt.Sprintf("%g %g%% %g%%", round1(c.H), round1(c.S*100), round1(c.L*100))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Shade returns the RGB of the base hue shifted by offset degrees at the given saturation/lightness
// Only the hue of the theme is used, particles keep their own tuned saturation and lightness
func (c HSL) Shade(offset, s, l float64) render.RGB {
	r, g, b := colorful.Hsl(normalizeHue(c.H+offset), s, l).Clamped().RGB255()
	return render.RGB{R: r, G: g, B: b}
}

// RGB converts the color itself
func (c HSL) RGB() render.RGB {
	return c.Shade(0, c.S, c.L)
}
