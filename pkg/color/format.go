package color

import (
	"strings"

	"github.com/matzehuels/chartkit/pkg/errors"
)

// Format selects how colors are written into a JSON document. A document
// uses one Format for every color-valued field.
type Format int

const (
	// FormatRGBA writes "rgba(r,g,b,a)" strings. This is the default.
	FormatRGBA Format = iota
	// FormatHex writes "#rrggbb", or "#rrggbbaa" for translucent colors.
	FormatHex
	// FormatObject writes {"r":..,"g":..,"b":..,"a":..} objects.
	FormatObject
)

var formatNames = [...]string{
	FormatRGBA:   "rgba",
	FormatHex:    "hex",
	FormatObject: "object",
}

// String returns the format name used on the command line.
func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return formatNames[FormatRGBA]
	}
	return formatNames[f]
}

// ParseFormat parses a format name ("rgba", "hex" or "object").
func ParseFormat(s string) (Format, error) {
	for i, name := range formatNames {
		if strings.EqualFold(s, name) {
			return Format(i), nil
		}
	}
	return FormatRGBA, errors.New(errors.ErrCodeInvalidFormat, "unknown color format %q (must be 'rgba', 'hex', or 'object')", s)
}

// Object is the structured JSON form of a color.
type Object struct {
	R uint8   `json:"r"`
	G uint8   `json:"g"`
	B uint8   `json:"b"`
	A float64 `json:"a"`
}

// Encode returns the JSON-marshalable representation of c for format f.
// Unknown formats fall back to [FormatRGBA].
func (c Color) Encode(f Format) any {
	switch f {
	case FormatHex:
		return c.Hex()
	case FormatObject:
		return Object{R: c.r, G: c.g, B: c.b, A: c.a}
	default:
		return c.String()
	}
}
