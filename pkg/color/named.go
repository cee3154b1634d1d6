package color

import (
	"slices"
	"strings"
)

// Common colors.
var (
	Transparent = RGBA(0, 0, 0, 0)
	Black       = RGB(0, 0, 0)
	White       = RGB(255, 255, 255)
	Red         = RGB(255, 0, 0)
	Green       = RGB(0, 128, 0)
	Blue        = RGB(0, 0, 255)
	Yellow      = RGB(255, 255, 0)
	Orange      = RGB(255, 165, 0)
	Purple      = RGB(128, 0, 128)
	Gray        = RGB(128, 128, 128)
)

// named holds the CSS color keywords recognized by [Parse].
var named = map[string]Color{
	"transparent":   Transparent,
	"black":         Black,
	"white":         White,
	"red":           Red,
	"green":         Green,
	"blue":          Blue,
	"yellow":        Yellow,
	"orange":        Orange,
	"purple":        Purple,
	"gray":          Gray,
	"grey":          Gray,
	"silver":        RGB(192, 192, 192),
	"maroon":        RGB(128, 0, 0),
	"olive":         RGB(128, 128, 0),
	"lime":          RGB(0, 255, 0),
	"aqua":          RGB(0, 255, 255),
	"cyan":          RGB(0, 255, 255),
	"teal":          RGB(0, 128, 128),
	"navy":          RGB(0, 0, 128),
	"fuchsia":       RGB(255, 0, 255),
	"magenta":       RGB(255, 0, 255),
	"pink":          RGB(255, 192, 203),
	"brown":         RGB(165, 42, 42),
	"gold":          RGB(255, 215, 0),
	"coral":         RGB(255, 127, 80),
	"crimson":       RGB(220, 20, 60),
	"indigo":        RGB(75, 0, 130),
	"violet":        RGB(238, 130, 238),
	"tomato":        RGB(255, 99, 71),
	"salmon":        RGB(250, 128, 114),
	"khaki":         RGB(240, 230, 140),
	"orchid":        RGB(218, 112, 214),
	"skyblue":       RGB(135, 206, 235),
	"steelblue":     RGB(70, 130, 180),
	"slategray":     RGB(112, 128, 144),
	"darkgray":      RGB(169, 169, 169),
	"lightgray":     RGB(211, 211, 211),
	"dodgerblue":    RGB(30, 144, 255),
	"forestgreen":   RGB(34, 139, 34),
	"seagreen":      RGB(46, 139, 87),
	"firebrick":     RGB(178, 34, 34),
	"chocolate":     RGB(210, 105, 30),
	"turquoise":     RGB(64, 224, 208),
	"rebeccapurple": RGB(102, 51, 153),
}

// Named looks up a CSS color keyword, ignoring case.
func Named(name string) (Color, bool) {
	c, ok := named[strings.ToLower(name)]
	return c, ok
}

// Names returns the recognized color keywords in sorted order.
func Names() []string {
	names := make([]string, 0, len(named))
	for n := range named {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}
