package dataset

import (
	"bytes"
	"encoding/json"

	"github.com/matzehuels/chartkit/pkg/color"
	"github.com/matzehuels/chartkit/pkg/errors"
)

// Property is one serialized dataset field.
type Property struct {
	Key     string // Chart.js property name, e.g. "pointHoverBorderWidth"
	Value   any    // Scalar value, or a copied slice for sequence fields
	Len     int    // Element count for sequence fields, -1 for scalars
	Aligned bool   // Sequence is index-aligned with the data points
}

// field is implemented by Opt and List.
type field interface {
	IsZero() bool
	value() any
}

// projection collects properties in declaration order.
type projection struct {
	props []Property
}

// include is the single inclusion rule: a field is serialized iff it is
// present (scalars) or non-empty (sequences).
func include(f field) bool {
	return !f.IsZero()
}

func (p *projection) scalar(key string, f field) {
	if include(f) {
		p.props = append(p.props, Property{Key: key, Value: f.value(), Len: -1})
	}
}

func (p *projection) seq(key string, f interface {
	field
	Len() int
}) {
	if include(f) {
		p.props = append(p.props, Property{Key: key, Value: f.value(), Len: f.Len()})
	}
}

func (p *projection) perPoint(key string, f interface {
	field
	Len() int
}) {
	if include(f) {
		p.props = append(p.props, Property{Key: key, Value: f.value(), Len: f.Len(), Aligned: true})
	}
}

// Encode writes props as a JSON object in order. Color values, alone or in
// slices, are written with format f; every other value uses encoding/json.
// An empty props slice encodes as {}.
func Encode(props []Property, f color.Format) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, p := range props {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(p.Key)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode key %q", p.Key)
		}
		buf.Write(key)
		buf.WriteByte(':')

		val, err := json.Marshal(encodeColors(p.Value, f))
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode %s", p.Key)
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func encodeColors(v any, f color.Format) any {
	switch c := v.(type) {
	case color.Color:
		return c.Encode(f)
	case []color.Color:
		out := make([]any, len(c))
		for i, x := range c {
			out[i] = x.Encode(f)
		}
		return out
	default:
		return v
	}
}
