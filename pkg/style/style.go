// Package style defines the closed style vocabularies of the charting engine.
//
// Every domain is a struct type wrapping an unexported discriminant, so the
// only values a caller can hold are the exported members. The zero value of
// each type is its first member, which is also the engine's own default:
//
//	CapStyle    butt, round, square
//	JoinStyle   miter, round, bevel
//	PointStyle  circle, triangle, rect, rectRot, cross, crossRot, star, line, dash
//	Edge        bottom, left, top, right
//
// Values marshal to their token as text (and therefore as JSON strings).
// Tokens read from outside the program go through the Parse functions or
// UnmarshalText, which reject anything outside the domain.
package style

import (
	"github.com/matzehuels/chartkit/pkg/errors"
)

// domain maps discriminants to tokens for one vocabulary.
type domain struct {
	name   string
	tokens []string
}

func (d domain) token(i uint8) string {
	if int(i) >= len(d.tokens) {
		return d.tokens[0]
	}
	return d.tokens[i]
}

func (d domain) parse(s string) (uint8, error) {
	for i, t := range d.tokens {
		if t == s {
			return uint8(i), nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidStyle, "unknown %s %q (must be one of %v)", d.name, s, d.tokens)
}

var (
	capDomain   = domain{"border cap style", []string{"butt", "round", "square"}}
	joinDomain  = domain{"border join style", []string{"miter", "round", "bevel"}}
	pointDomain = domain{"point style", []string{"circle", "triangle", "rect", "rectRot", "cross", "crossRot", "star", "line", "dash"}}
	edgeDomain  = domain{"border edge", []string{"bottom", "left", "top", "right"}}
)

// =============================================================================
// CapStyle
// =============================================================================

// CapStyle is the canvas lineCap used to end lines.
type CapStyle struct{ v uint8 }

// Cap styles.
var (
	CapButt   = CapStyle{0}
	CapRound  = CapStyle{1}
	CapSquare = CapStyle{2}
)

// CapStyles returns every cap style in declaration order.
func CapStyles() []CapStyle { return []CapStyle{CapButt, CapRound, CapSquare} }

// ParseCapStyle returns the cap style for token s.
func ParseCapStyle(s string) (CapStyle, error) {
	v, err := capDomain.parse(s)
	return CapStyle{v}, err
}

func (s CapStyle) String() string { return capDomain.token(s.v) }

// MarshalText implements encoding.TextMarshaler.
func (s CapStyle) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *CapStyle) UnmarshalText(text []byte) error {
	v, err := ParseCapStyle(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// =============================================================================
// JoinStyle
// =============================================================================

// JoinStyle is the canvas lineJoin used where two segments meet.
type JoinStyle struct{ v uint8 }

// Join styles.
var (
	JoinMiter = JoinStyle{0}
	JoinRound = JoinStyle{1}
	JoinBevel = JoinStyle{2}
)

// JoinStyles returns every join style in declaration order.
func JoinStyles() []JoinStyle { return []JoinStyle{JoinMiter, JoinRound, JoinBevel} }

// ParseJoinStyle returns the join style for token s.
func ParseJoinStyle(s string) (JoinStyle, error) {
	v, err := joinDomain.parse(s)
	return JoinStyle{v}, err
}

func (s JoinStyle) String() string { return joinDomain.token(s.v) }

// MarshalText implements encoding.TextMarshaler.
func (s JoinStyle) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *JoinStyle) UnmarshalText(text []byte) error {
	v, err := ParseJoinStyle(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// =============================================================================
// PointStyle
// =============================================================================

// PointStyle is the shape drawn for a data point.
type PointStyle struct{ v uint8 }

// Point styles.
var (
	PointCircle   = PointStyle{0}
	PointTriangle = PointStyle{1}
	PointRect     = PointStyle{2}
	PointRectRot  = PointStyle{3}
	PointCross    = PointStyle{4}
	PointCrossRot = PointStyle{5}
	PointStar     = PointStyle{6}
	PointLine     = PointStyle{7}
	PointDash     = PointStyle{8}
)

// PointStyles returns every point style in declaration order.
func PointStyles() []PointStyle {
	return []PointStyle{
		PointCircle, PointTriangle, PointRect, PointRectRot, PointCross,
		PointCrossRot, PointStar, PointLine, PointDash,
	}
}

// ParsePointStyle returns the point style for token s. Tokens are case
// sensitive ("rectRot", not "rectrot").
func ParsePointStyle(s string) (PointStyle, error) {
	v, err := pointDomain.parse(s)
	return PointStyle{v}, err
}

func (s PointStyle) String() string { return pointDomain.token(s.v) }

// MarshalText implements encoding.TextMarshaler.
func (s PointStyle) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *PointStyle) UnmarshalText(text []byte) error {
	v, err := ParsePointStyle(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// =============================================================================
// Edge
// =============================================================================

// Edge names one side of a bar. Bar datasets use it for borderSkipped.
type Edge struct{ v uint8 }

// Bar edges.
var (
	EdgeBottom = Edge{0}
	EdgeLeft   = Edge{1}
	EdgeTop    = Edge{2}
	EdgeRight  = Edge{3}
)

// Edges returns every edge in declaration order.
func Edges() []Edge { return []Edge{EdgeBottom, EdgeLeft, EdgeTop, EdgeRight} }

// ParseEdge returns the edge for token s.
func ParseEdge(s string) (Edge, error) {
	v, err := edgeDomain.parse(s)
	return Edge{v}, err
}

func (e Edge) String() string { return edgeDomain.token(e.v) }

// MarshalText implements encoding.TextMarshaler.
func (e Edge) MarshalText() ([]byte, error) { return []byte(e.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *Edge) UnmarshalText(text []byte) error {
	v, err := ParseEdge(string(text))
	if err != nil {
		return err
	}
	*e = v
	return nil
}
