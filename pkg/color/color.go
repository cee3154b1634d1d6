// Package color provides the immutable color value used by chart datasets.
//
// A [Color] is an RGBA quadruple: red, green and blue channels in 0-255 and
// an alpha channel in [0, 1]. Colors are plain comparable values; two colors
// are equal when all four channels are equal.
//
// Colors can be built directly or parsed from the notations accepted by the
// charting engine:
//
//	c := color.RGBA(255, 99, 132, 0.2)
//	c, err := color.Parse("#ff6384")
//	c, err := color.Parse("rgba(255, 99, 132, 0.2)")
//	c, err := color.Parse("tomato")
//
// How a color is written into a JSON document is chosen per document with a
// [Format]; see [Color.Encode].
package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/chartkit/pkg/errors"
)

// Color is an immutable RGBA color.
//
// The zero value is fully transparent black.
type Color struct {
	r, g, b uint8
	a       float64
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{r: r, g: g, b: b, a: 1}
}

// RGBA returns a color with the given alpha. Alpha is clamped to [0, 1];
// NaN is treated as 0.
func RGBA(r, g, b uint8, a float64) Color {
	return Color{r: r, g: g, b: b, a: clampAlpha(a)}
}

func clampAlpha(a float64) float64 {
	switch {
	case math.IsNaN(a), a <= 0:
		return 0
	case a >= 1:
		return 1
	default:
		return a
	}
}

// R returns the red channel.
func (c Color) R() uint8 { return c.r }

// G returns the green channel.
func (c Color) G() uint8 { return c.g }

// B returns the blue channel.
func (c Color) B() uint8 { return c.b }

// A returns the alpha channel in [0, 1].
func (c Color) A() float64 { return c.a }

// Opaque reports whether the alpha channel is 1.
func (c Color) Opaque() bool { return c.a == 1 }

// WithAlpha returns a copy of c with a different alpha.
func (c Color) WithAlpha(a float64) Color {
	c.a = clampAlpha(a)
	return c
}

// String returns the CSS rgba() notation, e.g. "rgba(255,99,132,0.2)".
func (c Color) String() string {
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", c.r, c.g, c.b, formatAlpha(c.a))
}

// Hex returns "#rrggbb" for opaque colors and "#rrggbbaa" otherwise.
func (c Color) Hex() string {
	h := c.Colorful().Hex()
	if c.Opaque() {
		return h
	}
	return fmt.Sprintf("%s%02x", h, uint8(math.Round(c.a*255)))
}

// Colorful converts c to a go-colorful color, dropping alpha.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.r) / 255,
		G: float64(c.g) / 255,
		B: float64(c.b) / 255,
	}
}

func formatAlpha(a float64) string {
	return strconv.FormatFloat(a, 'f', -1, 64)
}

// Hex parses "#rgb", "#rrggbb" or "#rrggbbaa". The leading '#' is required.
func Hex(s string) (Color, error) {
	if !strings.HasPrefix(s, "#") {
		return Color{}, errors.New(errors.ErrCodeInvalidColor, "hex color must start with '#': %q", s)
	}
	switch len(s) {
	case 4, 7, 9:
	default:
		return Color{}, errors.New(errors.ErrCodeInvalidColor, "hex color must have 3, 6 or 8 digits: %q", s)
	}
	alpha := 1.0
	rgb := s
	if len(s) == 9 {
		v, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return Color{}, errors.Wrap(errors.ErrCodeInvalidColor, err, "invalid alpha in %q", s)
		}
		alpha = float64(v) / 255
		rgb = s[:7]
	}
	cf, err := colorful.Hex(rgb)
	if err != nil {
		return Color{}, errors.Wrap(errors.ErrCodeInvalidColor, err, "invalid hex color %q", s)
	}
	r, g, b := cf.RGB255()
	return RGBA(r, g, b, alpha), nil
}

// Parse reads a color from any supported notation: hex, rgb(), rgba() or a
// CSS color name. Surrounding whitespace and letter case are ignored.
func Parse(s string) (Color, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch {
	case v == "":
		return Color{}, errors.New(errors.ErrCodeInvalidColor, "empty color")
	case strings.HasPrefix(v, "#"):
		return Hex(v)
	case strings.HasPrefix(v, "rgba(") || strings.HasPrefix(v, "rgb("):
		return parseFunc(v)
	}
	if c, ok := Named(v); ok {
		return c, nil
	}
	return Color{}, errors.New(errors.ErrCodeInvalidColor, "unknown color %q", s)
}

// parseFunc parses the CSS functional notations rgb(r,g,b) and rgba(r,g,b,a).
func parseFunc(v string) (Color, error) {
	open := strings.IndexByte(v, '(')
	if !strings.HasSuffix(v, ")") {
		return Color{}, errors.New(errors.ErrCodeInvalidColor, "unterminated color function %q", v)
	}
	name := v[:open]
	parts := strings.Split(v[open+1:len(v)-1], ",")

	want := 3
	if name == "rgba" {
		want = 4
	}
	if len(parts) != want {
		return Color{}, errors.New(errors.ErrCodeInvalidColor, "%s() takes %d components, got %d", name, want, len(parts))
	}

	var ch [3]uint8
	for i := range ch {
		n, err := strconv.ParseUint(strings.TrimSpace(parts[i]), 10, 8)
		if err != nil {
			return Color{}, errors.Wrap(errors.ErrCodeInvalidColor, err, "invalid channel %q in %q", parts[i], v)
		}
		ch[i] = uint8(n)
	}

	alpha := 1.0
	if want == 4 {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || a < 0 || a > 1 {
			return Color{}, errors.New(errors.ErrCodeInvalidColor, "alpha must be a number in [0,1] in %q", v)
		}
		alpha = a
	}
	return RGBA(ch[0], ch[1], ch[2], alpha), nil
}

// MarshalText encodes c in rgba() notation.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes any notation accepted by [Parse].
func (c *Color) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
