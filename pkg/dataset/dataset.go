package dataset

import (
	"github.com/matzehuels/chartkit/pkg/errors"
)

// Kind identifies a dataset kind and the chart type that draws it.
type Kind string

// Dataset kinds.
const (
	KindRadar Kind = "radar"
	KindBar   Kind = "bar"
)

// Kinds returns every supported kind.
func Kinds() []Kind { return []Kind{KindRadar, KindBar} }

// ParseKind validates a chart type name.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if string(k) == s {
			return k, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidKind, "unknown chart type %q (must be 'radar' or 'bar')", s)
}

// Projector is implemented by every concrete dataset kind.
type Projector interface {
	// Kind reports the dataset kind.
	Kind() Kind
	// Properties returns the serialized fields in output order. Absent
	// scalars and empty sequences are not included.
	Properties() []Property
}

// Builder is the chaining contract of every kind: the shared mutators
// return the concrete kind D, so chains can mix shared and kind-specific
// calls:
//
//	r := dataset.NewRadar().SetLabel("a").SetFill(true).AddData(3)
type Builder[D any] interface {
	Projector
	SetLabel(label string) D
	ClearLabel() D
	SetData(values ...float64) D
	AddData(value float64) D
	SetHidden(hidden bool) D
	ClearHidden() D
}

var (
	_ Builder[*Radar] = (*Radar)(nil)
	_ Builder[*Bar]   = (*Bar)(nil)
)

// Dataset holds the fields shared by every kind and is embedded by each
// concrete kind, which exposes the mutators with its own return type. The
// zero value is empty and ready to use.
type Dataset struct {
	label  Opt[string]
	data   List[float64]
	hidden Opt[bool]
}

// Label returns the legend and tooltip label.
func (d *Dataset) Label() (string, bool) { return d.label.Get() }

// Data returns the data values in order.
func (d *Dataset) Data() []float64 { return d.data.Items() }

// Hidden reports whether the dataset starts hidden.
func (d *Dataset) Hidden() (bool, bool) { return d.hidden.Get() }

func (d *Dataset) setLabel(label string) { d.label = someString(label) }
func (d *Dataset) clearLabel() { d.label = Opt[string]{} }
func (d *Dataset) setData(v ...float64) { d.data.Set(v...) }
func (d *Dataset) addData(v float64) { d.data.Add(v) }
func (d *Dataset) setHidden(hidden bool) { d.hidden = Some(hidden) }
func (d *Dataset) clearHidden() { d.hidden = Opt[bool]{} }

// project appends the shared fields. Kinds call it first so shared keys
// lead the output.
func (d *Dataset) project(p *projection) {
	p.scalar("label", d.label)
	p.seq("data", d.data)
	p.scalar("hidden", d.hidden)
}
