package dataset

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/chartkit/pkg/color"
	"github.com/matzehuels/chartkit/pkg/style"
)

var cmpOpts = cmp.Options{
	cmp.Comparer(func(a, b color.Color) bool { return a == b }),
	cmp.Comparer(func(a, b style.PointStyle) bool { return a == b }),
}

// seqCase exercises the set/add/get contract of one sequence field.
type seqCase struct {
	name string
	run  func(t *testing.T)
}

func radarSeq[V any](name string,
	set func(*Radar, ...V) *Radar,
	add func(*Radar, V) *Radar,
	get func(*Radar) []V,
	prior []V, next V,
) seqCase {
	return seqCase{name: name, run: func(t *testing.T) {
		r := NewRadar()

		if got := get(r); got == nil || len(got) != 0 {
			t.Fatalf("fresh %s = %#v, want empty non-nil", name, got)
		}

		if set(r, prior...) != r {
			t.Fatal("Set should return the receiver")
		}
		if diff := cmp.Diff(prior, get(r), cmpOpts); diff != "" {
			t.Errorf("after Set (-want +got):\n%s", diff)
		}

		if add(r, next) != r {
			t.Fatal("Add should return the receiver")
		}
		want := append(append([]V{}, prior...), next)
		if diff := cmp.Diff(want, get(r), cmpOpts); diff != "" {
			t.Errorf("after Add (-want +got):\n%s", diff)
		}

		set(r)
		if got := get(r); got == nil || len(got) != 0 {
			t.Errorf("after empty Set = %#v, want empty non-nil", got)
		}

		set(r, prior...)
		set(r, nil...)
		if got := get(r); len(got) != 0 {
			t.Errorf("after nil Set = %#v, want empty", got)
		}
	}}
}

func TestRadarSequences(t *testing.T) {
	red, blue := color.RGB(255, 0, 0), color.RGBA(0, 0, 255, 0.5)
	cases := []seqCase{
		radarSeq("data", (*Radar).SetData, (*Radar).AddData, (*Radar).Data, []float64{65, 59.5, 90}, 81),
		radarSeq("borderDash", (*Radar).SetBorderDash, (*Radar).AddBorderDash, (*Radar).BorderDash, []int{5, 10, 5}, 2),
		radarSeq("pointBorderColor", (*Radar).SetPointBorderColor, (*Radar).AddPointBorderColor, (*Radar).PointBorderColor, []color.Color{red, blue}, color.White),
		radarSeq("pointBackgroundColor", (*Radar).SetPointBackgroundColor, (*Radar).AddPointBackgroundColor, (*Radar).PointBackgroundColor, []color.Color{blue}, red),
		radarSeq("pointBorderWidth", (*Radar).SetPointBorderWidth, (*Radar).AddPointBorderWidth, (*Radar).PointBorderWidth, []int{1, 2}, 3),
		radarSeq("pointRadius", (*Radar).SetPointRadius, (*Radar).AddPointRadius, (*Radar).PointRadius, []int{3, 0, 3}, 4),
		radarSeq("pointHoverRadius", (*Radar).SetPointHoverRadius, (*Radar).AddPointHoverRadius, (*Radar).PointHoverRadius, []int{5}, 6),
		radarSeq("hitRadius", (*Radar).SetHitRadius, (*Radar).AddHitRadius, (*Radar).HitRadius, []int{1, 1}, 10),
		radarSeq("pointHoverBackgroundColor", (*Radar).SetPointHoverBackgroundColor, (*Radar).AddPointHoverBackgroundColor, (*Radar).PointHoverBackgroundColor, []color.Color{red, red}, blue),
		radarSeq("pointHoverBorderColor", (*Radar).SetPointHoverBorderColor, (*Radar).AddPointHoverBorderColor, (*Radar).PointHoverBorderColor, []color.Color{color.Black}, blue),
		radarSeq("pointHoverBorderWidth", (*Radar).SetPointHoverBorderWidth, (*Radar).AddPointHoverBorderWidth, (*Radar).PointHoverBorderWidth, []int{2, 2, 2}, 1),
		radarSeq("pointStyle", (*Radar).SetPointStyle, (*Radar).AddPointStyle, (*Radar).PointStyle, []style.PointStyle{style.PointRectRot, style.PointStar}, style.PointDash),
	}

	for _, c := range cases {
		t.Run(c.name, c.run)
	}
}

func TestRadarScalarOverwriteAndClear(t *testing.T) {
	r := NewRadar().SetBorderWidth(2).SetBorderWidth(5)
	if w, ok := r.BorderWidth(); !ok || w != 5 {
		t.Errorf("BorderWidth() = %v, %v; want 5, true", w, ok)
	}
	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("json.Marshal() error: %v", err)
	}
	if string(data) != `{"borderWidth":5}` {
		t.Errorf("json.Marshal() = %s, want {\"borderWidth\":5}", data)
	}

	r.ClearBorderWidth()
	if _, ok := r.BorderWidth(); ok {
		t.Error("BorderWidth should be absent after Clear")
	}
}

func TestRadarScalars(t *testing.T) {
	r := NewRadar()
	for name, absent := range map[string]bool{
		"label":            func() bool { _, ok := r.Label(); return !ok }(),
		"hidden":           func() bool { _, ok := r.Hidden(); return !ok }(),
		"fill":             func() bool { _, ok := r.Fill(); return !ok }(),
		"lineTension":      func() bool { _, ok := r.LineTension(); return !ok }(),
		"backgroundColor":  func() bool { _, ok := r.BackgroundColor(); return !ok }(),
		"borderWidth":      func() bool { _, ok := r.BorderWidth(); return !ok }(),
		"borderColor":      func() bool { _, ok := r.BorderColor(); return !ok }(),
		"borderCapStyle":   func() bool { _, ok := r.BorderCapStyle(); return !ok }(),
		"borderDashOffset": func() bool { _, ok := r.BorderDashOffset(); return !ok }(),
		"borderJoinStyle":  func() bool { _, ok := r.BorderJoinStyle(); return !ok }(),
	} {
		if !absent {
			t.Errorf("fresh %s should be absent", name)
		}
	}

	bg := color.RGBA(179, 181, 198, 0.2)
	r.SetLabel("Series A").
		SetHidden(false).
		SetFill(false).
		SetLineTension(0).
		SetBackgroundColor(bg).
		SetBorderColor(color.Red).
		SetBorderCapStyle(style.CapRound).
		SetBorderDashOffset(1.5).
		SetBorderJoinStyle(style.JoinBevel)

	if v, ok := r.Label(); !ok || v != "Series A" {
		t.Errorf("Label() = %q, %v", v, ok)
	}
	if v, ok := r.Hidden(); !ok || v {
		t.Errorf("Hidden() = %v, %v; want false, true", v, ok)
	}
	if v, ok := r.Fill(); !ok || v {
		t.Errorf("Fill() = %v, %v; want false, true", v, ok)
	}
	if v, ok := r.LineTension(); !ok || v != 0 {
		t.Errorf("LineTension() = %v, %v; want 0, true", v, ok)
	}
	if v, ok := r.BackgroundColor(); !ok || v != bg {
		t.Errorf("BackgroundColor() = %v, %v", v, ok)
	}
	if v, ok := r.BorderColor(); !ok || v != color.Red {
		t.Errorf("BorderColor() = %v, %v", v, ok)
	}
	if v, ok := r.BorderCapStyle(); !ok || v != style.CapRound {
		t.Errorf("BorderCapStyle() = %v, %v", v, ok)
	}
	if v, ok := r.BorderDashOffset(); !ok || v != 1.5 {
		t.Errorf("BorderDashOffset() = %v, %v", v, ok)
	}
	if v, ok := r.BorderJoinStyle(); !ok || v != style.JoinBevel {
		t.Errorf("BorderJoinStyle() = %v, %v", v, ok)
	}

	r.ClearLabel().ClearHidden().ClearFill().ClearLineTension().
		ClearBackgroundColor().ClearBorderColor().ClearBorderCapStyle().
		ClearBorderDashOffset().ClearBorderJoinStyle()

	if props := r.Properties(); len(props) != 0 {
		t.Errorf("Properties() after clearing = %v, want none", props)
	}
}

func TestRadarMarshalEmpty(t *testing.T) {
	data, err := json.Marshal(NewRadar())
	if err != nil {
		t.Fatalf("json.Marshal() error: %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("json.Marshal(NewRadar()) = %s, want {}", data)
	}
}

func TestRadarMarshalLabelAndPointStyle(t *testing.T) {
	r := NewRadar().SetLabel("Series A").AddPointStyle(style.PointCircle)

	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("json.Marshal() error: %v", err)
	}
	want := `{"label":"Series A","pointStyle":["circle"]}`
	if string(data) != want {
		t.Errorf("json.Marshal() = %s, want %s", data, want)
	}
}

func TestRadarMarshalAllFields(t *testing.T) {
	r := NewRadar().
		SetLabel("s").
		SetData(1, 2).
		SetHidden(true).
		SetFill(true).
		SetLineTension(0.1).
		SetBackgroundColor(color.RGBA(1, 2, 3, 0.5)).
		SetBorderWidth(2).
		SetBorderColor(color.RGB(4, 5, 6)).
		SetBorderCapStyle(style.CapSquare).
		SetBorderDash(5, 3).
		SetBorderDashOffset(0.5).
		SetBorderJoinStyle(style.JoinRound).
		AddPointBorderColor(color.Black).
		AddPointBackgroundColor(color.White).
		AddPointBorderWidth(1).
		AddPointRadius(3).
		AddPointHoverRadius(4).
		AddHitRadius(5).
		AddPointHoverBackgroundColor(color.Red).
		AddPointHoverBorderColor(color.Blue).
		AddPointHoverBorderWidth(6).
		AddPointStyle(style.PointCrossRot)

	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("json.Marshal() error: %v", err)
	}
	want := `{"label":"s","data":[1,2],"hidden":true,"fill":true,"lineTension":0.1,` +
		`"backgroundColor":"rgba(1,2,3,0.5)","borderWidth":2,"borderColor":"rgba(4,5,6,1)",` +
		`"borderCapStyle":"square","borderDash":[5,3],"borderDashOffset":0.5,"borderJoinStyle":"round",` +
		`"pointBorderColor":["rgba(0,0,0,1)"],"pointBackgroundColor":["rgba(255,255,255,1)"],` +
		`"pointBorderWidth":[1],"pointRadius":[3],"pointHoverRadius":[4],"hitRadius":[5],` +
		`"pointHoverBackgroundColor":["rgba(255,0,0,1)"],"pointHoverBorderColor":["rgba(0,0,255,1)"],` +
		`"pointHoverBorderWidth":[6],"pointStyle":["crossRot"]}`
	if string(data) != want {
		t.Errorf("json.Marshal() =\n%s\nwant\n%s", data, want)
	}
}

func TestRadarChainIndependentOfOrder(t *testing.T) {
	a := NewRadar().
		SetLabel("x").
		SetFill(true).
		AddPointRadius(2).
		SetBorderDash(1, 2, 3).
		SetBorderJoinStyle(style.JoinMiter)
	b := NewRadar().
		SetBorderJoinStyle(style.JoinMiter).
		SetBorderDash(1, 2, 3).
		AddPointRadius(2).
		SetFill(true).
		SetLabel("x")

	ja, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("json.Marshal() error: %v", err)
	}
	jb, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("json.Marshal() error: %v", err)
	}
	if string(ja) != string(jb) {
		t.Errorf("chains differ:\n%s\n%s", ja, jb)
	}
	if got := a.BorderDash(); len(got) != 3 || got[2] != 3 {
		t.Errorf("BorderDash() = %v, want [1 2 3]", got)
	}
}

func TestRadarFieldsAreIndependent(t *testing.T) {
	r := NewRadar().SetFill(true)
	if _, ok := r.BackgroundColor(); ok {
		t.Error("SetFill should not set a background color")
	}
	r.AddPointRadius(3)
	if len(r.PointHoverRadius()) != 0 || len(r.HitRadius()) != 0 {
		t.Error("AddPointRadius should not touch other radius fields")
	}
}

func TestRadarOddDashStoredLiterally(t *testing.T) {
	r := NewRadar().SetBorderDash(5, 10, 15)
	if diff := cmp.Diff([]int{5, 10, 15}, r.BorderDash()); diff != "" {
		t.Errorf("BorderDash() (-want +got):\n%s", diff)
	}
}

func TestRadarKind(t *testing.T) {
	var p Projector = NewRadar()
	if p.Kind() != KindRadar {
		t.Errorf("Kind() = %v, want %v", p.Kind(), KindRadar)
	}
}

func TestRadarInstancesIndependent(t *testing.T) {
	a := NewRadar().AddData(1)
	b := NewRadar().AddData(2)
	if a.Data()[0] != 1 || b.Data()[0] != 2 || len(a.Data()) != 1 {
		t.Errorf("instances share state: a=%v b=%v", a.Data(), b.Data())
	}
}

func TestRadarZeroValueChains(t *testing.T) {
	var zero Radar
	r := zero.SetLabel("a").SetFill(true).AddData(1).SetHidden(false)
	if r != &zero {
		t.Fatal("chain on a zero value should return its address")
	}

	fresh := new(Radar).ClearLabel().SetData(2, 3).AddPointStyle(style.PointStar)
	data, err := json.Marshal(fresh)
	if err != nil {
		t.Fatalf("json.Marshal() error: %v", err)
	}
	if want := `{"data":[2,3],"pointStyle":["star"]}`; string(data) != want {
		t.Errorf("json.Marshal() = %s, want %s", data, want)
	}
	if v, ok := zero.Fill(); !ok || !v {
		t.Errorf("Fill() = %v, %v; want true, true", v, ok)
	}
}

func TestRadarCopyIsIndependent(t *testing.T) {
	orig := NewRadar().SetLabel("orig").SetData(1, 2).AddPointRadius(3)
	cp := *orig

	if got := cp.SetLabel("copy").SetFill(true).AddData(9).AddPointRadius(4); got != &cp {
		t.Fatal("chain on a copy should return the copy")
	}
	orig.AddData(7).AddPointRadius(5)

	if v, _ := orig.Label(); v != "orig" {
		t.Errorf("original Label() = %q, want orig", v)
	}
	if _, ok := orig.Fill(); ok {
		t.Error("original Fill should be absent")
	}
	if v, ok := cp.Fill(); !ok || !v {
		t.Errorf("copy Fill() = %v, %v; want true, true", v, ok)
	}
	if diff := cmp.Diff([]float64{1, 2, 7}, orig.Data()); diff != "" {
		t.Errorf("original Data() (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{1, 2, 9}, cp.Data()); diff != "" {
		t.Errorf("copy Data() (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{3, 5}, orig.PointRadius()); diff != "" {
		t.Errorf("original PointRadius() (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{3, 4}, cp.PointRadius()); diff != "" {
		t.Errorf("copy PointRadius() (-want +got):\n%s", diff)
	}
}

func TestRadarMarshalByValue(t *testing.T) {
	r := *NewRadar().SetLabel("Series A").AddPointStyle(style.PointCircle)
	want := `{"label":"Series A","pointStyle":["circle"]}`

	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("json.Marshal() error: %v", err)
	}
	if string(data) != want {
		t.Errorf("json.Marshal(value) = %s, want %s", data, want)
	}

	wrapped, err := json.Marshal(struct{ Datasets []Radar }{[]Radar{r}})
	if err != nil {
		t.Fatalf("json.Marshal() error: %v", err)
	}
	if got := `{"Datasets":[` + want + `]}`; string(wrapped) != got {
		t.Errorf("json.Marshal(slice) = %s, want %s", wrapped, got)
	}
}

func TestRadarEmptyLabelIsAbsent(t *testing.T) {
	r := NewRadar().SetLabel("x").SetLabel("")
	if v, ok := r.Label(); ok {
		t.Errorf("Label() = %q, true; want absent", v)
	}
	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("json.Marshal() error: %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("json.Marshal() = %s, want {}", data)
	}
}
