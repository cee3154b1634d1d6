package dataset

import (
	"github.com/matzehuels/chartkit/pkg/color"
	"github.com/matzehuels/chartkit/pkg/style"
)

// Bar is a dataset drawn by bar charts. Its color and width fields are
// per bar: element i styles the bar for data point i.
type Bar struct {
	Dataset

	xAxisID       Opt[string]
	yAxisID       Opt[string]
	borderSkipped Opt[style.Edge]

	backgroundColor      List[color.Color]
	borderColor          List[color.Color]
	borderWidth          List[int]
	hoverBackgroundColor List[color.Color]
	hoverBorderColor     List[color.Color]
	hoverBorderWidth     List[int]
}

// NewBar returns an empty bar dataset.
func NewBar() *Bar { return &Bar{} }

// Kind returns [KindBar].
func (b *Bar) Kind() Kind { return KindBar }

// Properties returns the fields in Chart.js output order.
func (b *Bar) Properties() []Property {
	var p projection
	b.project(&p)
	p.scalar("xAxisID", b.xAxisID)
	p.scalar("yAxisID", b.yAxisID)
	p.perPoint("backgroundColor", b.backgroundColor)
	p.perPoint("borderColor", b.borderColor)
	p.perPoint("borderWidth", b.borderWidth)
	p.scalar("borderSkipped", b.borderSkipped)
	p.perPoint("hoverBackgroundColor", b.hoverBackgroundColor)
	p.perPoint("hoverBorderColor", b.hoverBorderColor)
	p.perPoint("hoverBorderWidth", b.hoverBorderWidth)
	return p.props
}

// MarshalJSON encodes the dataset with rgba() colors. It has a value
// receiver so Bars stored by value encode too.
func (b Bar) MarshalJSON() ([]byte, error) {
	return Encode((&b).Properties(), color.FormatRGBA)
}

// SetLabel sets the label shown in the legend and tooltips. An empty label
// clears it.
func (b *Bar) SetLabel(label string) *Bar { b.setLabel(label); return b }

// ClearLabel removes the label.
func (b *Bar) ClearLabel() *Bar { b.clearLabel(); return b }

// SetData replaces the data values.
func (b *Bar) SetData(values ...float64) *Bar { b.setData(values...); return b }

// AddData appends one data value.
func (b *Bar) AddData(value float64) *Bar { b.addData(value); return b }

// SetHidden hides the dataset until its legend entry is toggled.
func (b *Bar) SetHidden(hidden bool) *Bar { b.setHidden(hidden); return b }

// ClearHidden removes the hidden flag.
func (b *Bar) ClearHidden() *Bar { b.clearHidden(); return b }

// XAxisID returns the ID of the x axis the dataset is plotted against.
func (b *Bar) XAxisID() (string, bool) { return b.xAxisID.Get() }

// SetXAxisID binds the dataset to an x axis. An empty ID clears it.
func (b *Bar) SetXAxisID(id string) *Bar { b.xAxisID = someString(id); return b }

// ClearXAxisID removes the x axis binding.
func (b *Bar) ClearXAxisID() *Bar { b.xAxisID = Opt[string]{}; return b }

// YAxisID returns the ID of the y axis the dataset is plotted against.
func (b *Bar) YAxisID() (string, bool) { return b.yAxisID.Get() }

// SetYAxisID binds the dataset to a y axis. An empty ID clears it.
func (b *Bar) SetYAxisID(id string) *Bar { b.yAxisID = someString(id); return b }

// ClearYAxisID removes the y axis binding.
func (b *Bar) ClearYAxisID() *Bar { b.yAxisID = Opt[string]{}; return b }

// BorderSkipped returns the edge drawn without a border.
func (b *Bar) BorderSkipped() (style.Edge, bool) { return b.borderSkipped.Get() }

// SetBorderSkipped sets the edge drawn without a border.
func (b *Bar) SetBorderSkipped(e style.Edge) *Bar { b.borderSkipped = Some(e); return b }

// ClearBorderSkipped removes the skipped edge.
func (b *Bar) ClearBorderSkipped() *Bar { b.borderSkipped = Opt[style.Edge]{}; return b }

// BackgroundColor returns the per-bar fill colors.
func (b *Bar) BackgroundColor() []color.Color { return b.backgroundColor.Items() }

// SetBackgroundColor replaces the per-bar fill colors.
func (b *Bar) SetBackgroundColor(cs ...color.Color) *Bar { b.backgroundColor.Set(cs...); return b }

// AddBackgroundColor appends a bar fill color.
func (b *Bar) AddBackgroundColor(c color.Color) *Bar { b.backgroundColor.Add(c); return b }

// BorderColor returns the per-bar border colors.
func (b *Bar) BorderColor() []color.Color { return b.borderColor.Items() }

// SetBorderColor replaces the per-bar border colors.
func (b *Bar) SetBorderColor(cs ...color.Color) *Bar { b.borderColor.Set(cs...); return b }

// AddBorderColor appends a bar border color.
func (b *Bar) AddBorderColor(c color.Color) *Bar { b.borderColor.Add(c); return b }

// BorderWidth returns the per-bar border widths.
func (b *Bar) BorderWidth() []int { return b.borderWidth.Items() }

// SetBorderWidth replaces the per-bar border widths in pixels.
func (b *Bar) SetBorderWidth(ws ...int) *Bar { b.borderWidth.Set(ws...); return b }

// AddBorderWidth appends a bar border width.
func (b *Bar) AddBorderWidth(w int) *Bar { b.borderWidth.Add(w); return b }

// HoverBackgroundColor returns the per-bar hover fill colors.
func (b *Bar) HoverBackgroundColor() []color.Color { return b.hoverBackgroundColor.Items() }

// SetHoverBackgroundColor replaces the per-bar hover fill colors.
func (b *Bar) SetHoverBackgroundColor(cs ...color.Color) *Bar {
	b.hoverBackgroundColor.Set(cs...)
	return b
}

// AddHoverBackgroundColor appends a hover fill color.
func (b *Bar) AddHoverBackgroundColor(c color.Color) *Bar {
	b.hoverBackgroundColor.Add(c)
	return b
}

// HoverBorderColor returns the per-bar hover border colors.
func (b *Bar) HoverBorderColor() []color.Color { return b.hoverBorderColor.Items() }

// SetHoverBorderColor replaces the per-bar hover border colors.
func (b *Bar) SetHoverBorderColor(cs ...color.Color) *Bar { b.hoverBorderColor.Set(cs...); return b }

// AddHoverBorderColor appends a hover border color.
func (b *Bar) AddHoverBorderColor(c color.Color) *Bar { b.hoverBorderColor.Add(c); return b }

// HoverBorderWidth returns the per-bar hover border widths.
func (b *Bar) HoverBorderWidth() []int { return b.hoverBorderWidth.Items() }

// SetHoverBorderWidth replaces the per-bar hover border widths.
func (b *Bar) SetHoverBorderWidth(ws ...int) *Bar { b.hoverBorderWidth.Set(ws...); return b }

// AddHoverBorderWidth appends a hover border width.
func (b *Bar) AddHoverBorderWidth(w int) *Bar { b.hoverBorderWidth.Add(w); return b }
