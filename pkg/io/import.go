package io

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/chartkit/pkg/chart"
	"github.com/matzehuels/chartkit/pkg/color"
	"github.com/matzehuels/chartkit/pkg/dataset"
	"github.com/matzehuels/chartkit/pkg/errors"
	"github.com/matzehuels/chartkit/pkg/style"
)

type document struct {
	Type     string           `toml:"type"`
	Labels   []string         `toml:"labels"`
	Datasets []toml.Primitive `toml:"datasets"`
}

// common holds the keys every dataset kind accepts.
type common struct {
	Label  *string   `toml:"label"`
	Data   []float64 `toml:"data"`
	Hidden *bool     `toml:"hidden"`
}

type radarTable struct {
	common
	Fill             *bool            `toml:"fill"`
	LineTension      *float64         `toml:"lineTension"`
	BackgroundColor  *color.Color     `toml:"backgroundColor"`
	BorderWidth      *int             `toml:"borderWidth"`
	BorderColor      *color.Color     `toml:"borderColor"`
	BorderCapStyle   *style.CapStyle  `toml:"borderCapStyle"`
	BorderDash       []int            `toml:"borderDash"`
	BorderDashOffset *float64         `toml:"borderDashOffset"`
	BorderJoinStyle  *style.JoinStyle `toml:"borderJoinStyle"`

	PointBorderColor          []color.Color      `toml:"pointBorderColor"`
	PointBackgroundColor      []color.Color      `toml:"pointBackgroundColor"`
	PointBorderWidth          []int              `toml:"pointBorderWidth"`
	PointRadius               []int              `toml:"pointRadius"`
	PointHoverRadius          []int              `toml:"pointHoverRadius"`
	HitRadius                 []int              `toml:"hitRadius"`
	PointHoverBackgroundColor []color.Color      `toml:"pointHoverBackgroundColor"`
	PointHoverBorderColor     []color.Color      `toml:"pointHoverBorderColor"`
	PointHoverBorderWidth     []int              `toml:"pointHoverBorderWidth"`
	PointStyle                []style.PointStyle `toml:"pointStyle"`
}

type barTable struct {
	common
	XAxisID       *string     `toml:"xAxisID"`
	YAxisID       *string     `toml:"yAxisID"`
	BorderSkipped *style.Edge `toml:"borderSkipped"`

	BackgroundColor      []color.Color `toml:"backgroundColor"`
	BorderColor          []color.Color `toml:"borderColor"`
	BorderWidth          []int         `toml:"borderWidth"`
	HoverBackgroundColor []color.Color `toml:"hoverBackgroundColor"`
	HoverBorderColor     []color.Color `toml:"hoverBorderColor"`
	HoverBorderWidth     []int         `toml:"hoverBorderWidth"`
}

// setIf calls set with *v when v is non-nil.
func setIf[V any](v *V, set func(V)) {
	if v != nil {
		set(*v)
	}
}

func applyCommon[D any](c common, d dataset.Builder[D]) {
	setIf(c.Label, func(v string) { d.SetLabel(v) })
	setIf(c.Hidden, func(v bool) { d.SetHidden(v) })
	d.SetData(c.Data...)
}

func (t radarTable) build() *dataset.Radar {
	r := dataset.NewRadar()
	applyCommon[*dataset.Radar](t.common, r)

	setIf(t.Fill, func(v bool) { r.SetFill(v) })
	setIf(t.LineTension, func(v float64) { r.SetLineTension(v) })
	setIf(t.BackgroundColor, func(v color.Color) { r.SetBackgroundColor(v) })
	setIf(t.BorderWidth, func(v int) { r.SetBorderWidth(v) })
	setIf(t.BorderColor, func(v color.Color) { r.SetBorderColor(v) })
	setIf(t.BorderCapStyle, func(v style.CapStyle) { r.SetBorderCapStyle(v) })
	setIf(t.BorderDashOffset, func(v float64) { r.SetBorderDashOffset(v) })
	setIf(t.BorderJoinStyle, func(v style.JoinStyle) { r.SetBorderJoinStyle(v) })

	return r.
		SetBorderDash(t.BorderDash...).
		SetPointBorderColor(t.PointBorderColor...).
		SetPointBackgroundColor(t.PointBackgroundColor...).
		SetPointBorderWidth(t.PointBorderWidth...).
		SetPointRadius(t.PointRadius...).
		SetPointHoverRadius(t.PointHoverRadius...).
		SetHitRadius(t.HitRadius...).
		SetPointHoverBackgroundColor(t.PointHoverBackgroundColor...).
		SetPointHoverBorderColor(t.PointHoverBorderColor...).
		SetPointHoverBorderWidth(t.PointHoverBorderWidth...).
		SetPointStyle(t.PointStyle...)
}

func (t barTable) build() *dataset.Bar {
	b := dataset.NewBar()
	applyCommon[*dataset.Bar](t.common, b)

	setIf(t.XAxisID, func(v string) { b.SetXAxisID(v) })
	setIf(t.YAxisID, func(v string) { b.SetYAxisID(v) })
	setIf(t.BorderSkipped, func(v style.Edge) { b.SetBorderSkipped(v) })

	return b.
		SetBackgroundColor(t.BackgroundColor...).
		SetBorderColor(t.BorderColor...).
		SetBorderWidth(t.BorderWidth...).
		SetHoverBackgroundColor(t.HoverBackgroundColor...).
		SetHoverBorderColor(t.HoverBorderColor...).
		SetHoverBorderWidth(t.HoverBorderWidth...)
}

// ReadTOML decodes a TOML chart document from r.
//
// The document names the chart type, optional category labels, and an array
// of dataset tables whose keys are the Chart.js property names:
//
//	type = "radar"
//	labels = ["Eating", "Drinking"]
//
//	[[datasets]]
//	label = "Series A"
//	data = [65, 59]
//	borderColor = "rgba(179,181,198,1)"
//	pointStyle = ["circle", "star"]
//
// Colors accept any notation understood by [color.Parse]; style fields
// accept only their domain tokens.
//
// ReadTOML returns an error if:
//   - The TOML is malformed, or a value has the wrong type
//   - The chart type is missing or unknown
//   - A color or style token is invalid
//   - A dataset table contains a key its kind does not have
//
// Errors carry an [errors.Code] (INVALID_DOCUMENT, or INVALID_KIND for the
// chart type). ReadTOML does not close r.
func ReadTOML(r io.Reader) (*chart.Chart, error) {
	var doc document
	md, err := toml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "decode")
	}

	kind, err := dataset.ParseKind(doc.Type)
	if err != nil {
		return nil, err
	}

	c := chart.New(kind).SetLabels(doc.Labels...)
	for i, prim := range doc.Datasets {
		d, err := decodeDataset(md, prim, kind)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "dataset %d", i)
		}
		c.AddDataset(d)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidDocument, "unknown keys for %s chart: %s", kind, strings.Join(keys, ", "))
	}
	return c, nil
}

func decodeDataset(md toml.MetaData, prim toml.Primitive, kind dataset.Kind) (dataset.Projector, error) {
	switch kind {
	case dataset.KindRadar:
		var t radarTable
		if err := md.PrimitiveDecode(prim, &t); err != nil {
			return nil, err
		}
		return t.build(), nil
	case dataset.KindBar:
		var t barTable
		if err := md.PrimitiveDecode(prim, &t); err != nil {
			return nil, err
		}
		return t.build(), nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidKind, "unsupported chart type %q", kind)
	}
}

// ImportTOML reads a TOML chart document at path.
//
// ImportTOML returns the same errors as [ReadTOML], wrapped with the file
// path. A missing file is reported with ErrCodeFileNotFound.
func ImportTOML(path string) (*chart.Chart, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	c, err := ReadTOML(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}
