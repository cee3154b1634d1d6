package dataset

import (
	"github.com/matzehuels/chartkit/pkg/color"
	"github.com/matzehuels/chartkit/pkg/style"
)

// Radar is a dataset drawn by radar charts: a closed line through one point
// per axis, with optional fill and per-point styling.
type Radar struct {
	Dataset

	fill             Opt[bool]
	lineTension      Opt[float64]
	backgroundColor  Opt[color.Color]
	borderWidth      Opt[int]
	borderColor      Opt[color.Color]
	borderCapStyle   Opt[style.CapStyle]
	borderDash       List[int]
	borderDashOffset Opt[float64]
	borderJoinStyle  Opt[style.JoinStyle]

	pointBorderColor          List[color.Color]
	pointBackgroundColor      List[color.Color]
	pointBorderWidth          List[int]
	pointRadius               List[int]
	pointHoverRadius          List[int]
	hitRadius                 List[int]
	pointHoverBackgroundColor List[color.Color]
	pointHoverBorderColor     List[color.Color]
	pointHoverBorderWidth     List[int]
	pointStyle                List[style.PointStyle]
}

// NewRadar returns an empty radar dataset.
func NewRadar() *Radar { return &Radar{} }

// Kind returns [KindRadar].
func (r *Radar) Kind() Kind { return KindRadar }

// Properties returns the fields in Chart.js output order.
func (r *Radar) Properties() []Property {
	var p projection
	r.project(&p)
	p.scalar("fill", r.fill)
	p.scalar("lineTension", r.lineTension)
	p.scalar("backgroundColor", r.backgroundColor)
	p.scalar("borderWidth", r.borderWidth)
	p.scalar("borderColor", r.borderColor)
	p.scalar("borderCapStyle", r.borderCapStyle)
	p.seq("borderDash", r.borderDash)
	p.scalar("borderDashOffset", r.borderDashOffset)
	p.scalar("borderJoinStyle", r.borderJoinStyle)
	p.perPoint("pointBorderColor", r.pointBorderColor)
	p.perPoint("pointBackgroundColor", r.pointBackgroundColor)
	p.perPoint("pointBorderWidth", r.pointBorderWidth)
	p.perPoint("pointRadius", r.pointRadius)
	p.perPoint("pointHoverRadius", r.pointHoverRadius)
	p.perPoint("hitRadius", r.hitRadius)
	p.perPoint("pointHoverBackgroundColor", r.pointHoverBackgroundColor)
	p.perPoint("pointHoverBorderColor", r.pointHoverBorderColor)
	p.perPoint("pointHoverBorderWidth", r.pointHoverBorderWidth)
	p.perPoint("pointStyle", r.pointStyle)
	return p.props
}

// MarshalJSON encodes the dataset with rgba() colors. It has a value
// receiver so Radars stored by value encode too.
func (r Radar) MarshalJSON() ([]byte, error) {
	return Encode((&r).Properties(), color.FormatRGBA)
}

// SetLabel sets the label shown in the legend and tooltips. An empty label
// clears it.
func (r *Radar) SetLabel(label string) *Radar { r.setLabel(label); return r }

// ClearLabel removes the label.
func (r *Radar) ClearLabel() *Radar { r.clearLabel(); return r }

// SetData replaces the data values.
func (r *Radar) SetData(values ...float64) *Radar { r.setData(values...); return r }

// AddData appends one data value.
func (r *Radar) AddData(value float64) *Radar { r.addData(value); return r }

// SetHidden hides the dataset until its legend entry is toggled.
func (r *Radar) SetHidden(hidden bool) *Radar { r.setHidden(hidden); return r }

// ClearHidden removes the hidden flag.
func (r *Radar) ClearHidden() *Radar { r.clearHidden(); return r }

// Fill reports whether the area under the line is filled.
func (r *Radar) Fill() (bool, bool) { return r.fill.Get() }

// SetFill fills the area under the line when true.
func (r *Radar) SetFill(fill bool) *Radar { r.fill = Some(fill); return r }

// ClearFill removes the fill flag.
func (r *Radar) ClearFill() *Radar { r.fill = Opt[bool]{}; return r }

// LineTension returns the bezier curve tension.
func (r *Radar) LineTension() (float64, bool) { return r.lineTension.Get() }

// SetLineTension sets the bezier curve tension. 0 draws straight lines.
func (r *Radar) SetLineTension(t float64) *Radar { r.lineTension = Some(t); return r }

// ClearLineTension removes the line tension.
func (r *Radar) ClearLineTension() *Radar { r.lineTension = Opt[float64]{}; return r }

// BackgroundColor returns the fill color under the line.
func (r *Radar) BackgroundColor() (color.Color, bool) { return r.backgroundColor.Get() }

// SetBackgroundColor sets the fill color under the line.
func (r *Radar) SetBackgroundColor(c color.Color) *Radar { r.backgroundColor = Some(c); return r }

// ClearBackgroundColor removes the background color.
func (r *Radar) ClearBackgroundColor() *Radar { r.backgroundColor = Opt[color.Color]{}; return r }

// BorderWidth returns the line width in pixels.
func (r *Radar) BorderWidth() (int, bool) { return r.borderWidth.Get() }

// SetBorderWidth sets the line width in pixels.
func (r *Radar) SetBorderWidth(w int) *Radar { r.borderWidth = Some(w); return r }

// ClearBorderWidth removes the border width.
func (r *Radar) ClearBorderWidth() *Radar { r.borderWidth = Opt[int]{}; return r }

// BorderColor returns the line color.
func (r *Radar) BorderColor() (color.Color, bool) { return r.borderColor.Get() }

// SetBorderColor sets the line color.
func (r *Radar) SetBorderColor(c color.Color) *Radar { r.borderColor = Some(c); return r }

// ClearBorderColor removes the border color.
func (r *Radar) ClearBorderColor() *Radar { r.borderColor = Opt[color.Color]{}; return r }

// BorderCapStyle returns the line cap style.
func (r *Radar) BorderCapStyle() (style.CapStyle, bool) { return r.borderCapStyle.Get() }

// SetBorderCapStyle sets the line cap style.
func (r *Radar) SetBorderCapStyle(s style.CapStyle) *Radar { r.borderCapStyle = Some(s); return r }

// ClearBorderCapStyle removes the cap style.
func (r *Radar) ClearBorderCapStyle() *Radar { r.borderCapStyle = Opt[style.CapStyle]{}; return r }

// BorderDash returns the dash pattern.
func (r *Radar) BorderDash() []int { return r.borderDash.Items() }

// SetBorderDash replaces the dash pattern: alternating line and gap lengths
// in pixels. The pattern is stored as given; an odd-length pattern is
// repeated by the renderer, not here.
func (r *Radar) SetBorderDash(lengths ...int) *Radar { r.borderDash.Set(lengths...); return r }

// AddBorderDash appends one length to the dash pattern.
func (r *Radar) AddBorderDash(length int) *Radar { r.borderDash.Add(length); return r }

// BorderDashOffset returns the dash offset.
func (r *Radar) BorderDashOffset() (float64, bool) { return r.borderDashOffset.Get() }

// SetBorderDashOffset sets how far into the dash pattern the line starts.
func (r *Radar) SetBorderDashOffset(o float64) *Radar { r.borderDashOffset = Some(o); return r }

// ClearBorderDashOffset removes the dash offset.
func (r *Radar) ClearBorderDashOffset() *Radar { r.borderDashOffset = Opt[float64]{}; return r }

// BorderJoinStyle returns the line join style.
func (r *Radar) BorderJoinStyle() (style.JoinStyle, bool) { return r.borderJoinStyle.Get() }

// SetBorderJoinStyle sets how segments are joined.
func (r *Radar) SetBorderJoinStyle(s style.JoinStyle) *Radar { r.borderJoinStyle = Some(s); return r }

// ClearBorderJoinStyle removes the join style.
func (r *Radar) ClearBorderJoinStyle() *Radar { r.borderJoinStyle = Opt[style.JoinStyle]{}; return r }

// PointBorderColor returns the per-point border colors.
func (r *Radar) PointBorderColor() []color.Color { return r.pointBorderColor.Items() }

// SetPointBorderColor replaces the per-point border colors.
func (r *Radar) SetPointBorderColor(cs ...color.Color) *Radar { r.pointBorderColor.Set(cs...); return r }

// AddPointBorderColor appends a point border color.
func (r *Radar) AddPointBorderColor(c color.Color) *Radar { r.pointBorderColor.Add(c); return r }

// PointBackgroundColor returns the per-point fill colors.
func (r *Radar) PointBackgroundColor() []color.Color { return r.pointBackgroundColor.Items() }

// SetPointBackgroundColor replaces the per-point fill colors.
func (r *Radar) SetPointBackgroundColor(cs ...color.Color) *Radar {
	r.pointBackgroundColor.Set(cs...)
	return r
}

// AddPointBackgroundColor appends a point fill color.
func (r *Radar) AddPointBackgroundColor(c color.Color) *Radar {
	r.pointBackgroundColor.Add(c)
	return r
}

// PointBorderWidth returns the per-point border widths.
func (r *Radar) PointBorderWidth() []int { return r.pointBorderWidth.Items() }

// SetPointBorderWidth replaces the per-point border widths in pixels.
func (r *Radar) SetPointBorderWidth(ws ...int) *Radar { r.pointBorderWidth.Set(ws...); return r }

// AddPointBorderWidth appends a point border width.
func (r *Radar) AddPointBorderWidth(w int) *Radar { r.pointBorderWidth.Add(w); return r }

// PointRadius returns the per-point radii.
func (r *Radar) PointRadius() []int { return r.pointRadius.Items() }

// SetPointRadius replaces the per-point radii. A radius of 0 hides the point.
func (r *Radar) SetPointRadius(rs ...int) *Radar { r.pointRadius.Set(rs...); return r }

// AddPointRadius appends a point radius.
func (r *Radar) AddPointRadius(radius int) *Radar { r.pointRadius.Add(radius); return r }

// PointHoverRadius returns the per-point hover radii.
func (r *Radar) PointHoverRadius() []int { return r.pointHoverRadius.Items() }

// SetPointHoverRadius replaces the radii used while a point is hovered.
func (r *Radar) SetPointHoverRadius(rs ...int) *Radar { r.pointHoverRadius.Set(rs...); return r }

// AddPointHoverRadius appends a hover radius.
func (r *Radar) AddPointHoverRadius(radius int) *Radar { r.pointHoverRadius.Add(radius); return r }

// HitRadius returns the per-point hit radii.
func (r *Radar) HitRadius() []int { return r.hitRadius.Items() }

// SetHitRadius replaces the sizes of the invisible areas that react to the
// mouse around each point.
func (r *Radar) SetHitRadius(rs ...int) *Radar { r.hitRadius.Set(rs...); return r }

// AddHitRadius appends a hit radius.
func (r *Radar) AddHitRadius(radius int) *Radar { r.hitRadius.Add(radius); return r }

// PointHoverBackgroundColor returns the per-point hover fill colors.
func (r *Radar) PointHoverBackgroundColor() []color.Color {
	return r.pointHoverBackgroundColor.Items()
}

// SetPointHoverBackgroundColor replaces the per-point hover fill colors.
func (r *Radar) SetPointHoverBackgroundColor(cs ...color.Color) *Radar {
	r.pointHoverBackgroundColor.Set(cs...)
	return r
}

// AddPointHoverBackgroundColor appends a hover fill color.
func (r *Radar) AddPointHoverBackgroundColor(c color.Color) *Radar {
	r.pointHoverBackgroundColor.Add(c)
	return r
}

// PointHoverBorderColor returns the per-point hover border colors.
func (r *Radar) PointHoverBorderColor() []color.Color { return r.pointHoverBorderColor.Items() }

// SetPointHoverBorderColor replaces the per-point hover border colors.
func (r *Radar) SetPointHoverBorderColor(cs ...color.Color) *Radar {
	r.pointHoverBorderColor.Set(cs...)
	return r
}

// AddPointHoverBorderColor appends a hover border color.
func (r *Radar) AddPointHoverBorderColor(c color.Color) *Radar {
	r.pointHoverBorderColor.Add(c)
	return r
}

// PointHoverBorderWidth returns the per-point hover border widths.
func (r *Radar) PointHoverBorderWidth() []int { return r.pointHoverBorderWidth.Items() }

// SetPointHoverBorderWidth replaces the per-point hover border widths.
func (r *Radar) SetPointHoverBorderWidth(ws ...int) *Radar {
	r.pointHoverBorderWidth.Set(ws...)
	return r
}

// AddPointHoverBorderWidth appends a hover border width.
func (r *Radar) AddPointHoverBorderWidth(w int) *Radar {
	r.pointHoverBorderWidth.Add(w)
	return r
}

// PointStyle returns the per-point shapes.
func (r *Radar) PointStyle() []style.PointStyle { return r.pointStyle.Items() }

// SetPointStyle replaces the per-point shapes.
func (r *Radar) SetPointStyle(ss ...style.PointStyle) *Radar { r.pointStyle.Set(ss...); return r }

// AddPointStyle appends a point shape.
func (r *Radar) AddPointStyle(s style.PointStyle) *Radar { r.pointStyle.Add(s); return r }
