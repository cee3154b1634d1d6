package dataset

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/chartkit/pkg/color"
	"github.com/matzehuels/chartkit/pkg/style"
)

func TestBarChainMixesSharedAndKindMethods(t *testing.T) {
	b := NewBar().
		SetLabel("Visitors").
		SetXAxisID("x").
		AddData(12).
		AddBackgroundColor(color.Red).
		AddData(19).
		AddBackgroundColor(color.Blue).
		SetBorderSkipped(style.EdgeLeft)

	if v, ok := b.Label(); !ok || v != "Visitors" {
		t.Errorf("Label() = %q, %v", v, ok)
	}
	if diff := cmp.Diff([]float64{12, 19}, b.Data()); diff != "" {
		t.Errorf("Data() (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]color.Color{color.Red, color.Blue}, b.BackgroundColor(), cmpOpts); diff != "" {
		t.Errorf("BackgroundColor() (-want +got):\n%s", diff)
	}
	if v, ok := b.BorderSkipped(); !ok || v != style.EdgeLeft {
		t.Errorf("BorderSkipped() = %v, %v", v, ok)
	}
	if b.Kind() != KindBar {
		t.Errorf("Kind() = %v, want %v", b.Kind(), KindBar)
	}
}

func TestBarMarshal(t *testing.T) {
	tests := []struct {
		name string
		bar  *Bar
		want string
	}{
		{
			name: "empty",
			bar:  NewBar(),
			want: `{}`,
		},
		{
			name: "axes and skipped edge",
			bar:  NewBar().SetXAxisID("x1").SetYAxisID("y1").SetBorderSkipped(style.EdgeTop),
			want: `{"xAxisID":"x1","yAxisID":"y1","borderSkipped":"top"}`,
		},
		{
			name: "per bar styling",
			bar: NewBar().
				SetData(3, 4).
				SetBorderColor(color.Black, color.White).
				SetBorderWidth(1, 2).
				AddHoverBackgroundColor(color.RGBA(1, 1, 1, 0.5)).
				AddHoverBorderColor(color.Black).
				AddHoverBorderWidth(3),
			want: `{"data":[3,4],"borderColor":["rgba(0,0,0,1)","rgba(255,255,255,1)"],"borderWidth":[1,2],` +
				`"hoverBackgroundColor":["rgba(1,1,1,0.5)"],"hoverBorderColor":["rgba(0,0,0,1)"],"hoverBorderWidth":[3]}`,
		},
		{
			name: "cleared",
			bar:  NewBar().SetXAxisID("x").ClearXAxisID().SetYAxisID("y").ClearYAxisID().SetBorderSkipped(style.EdgeRight).ClearBorderSkipped().SetBorderWidth(1).SetBorderWidth(),
			want: `{}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.bar)
			if err != nil {
				t.Fatalf("json.Marshal() error: %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("json.Marshal() = %s, want %s", data, tt.want)
			}
		})
	}
}

func TestBarAlignedProperties(t *testing.T) {
	b := NewBar().SetData(1, 2).SetXAxisID("x").AddBorderWidth(1)

	aligned := map[string]bool{}
	for _, p := range b.Properties() {
		aligned[p.Key] = p.Aligned
	}
	if aligned["data"] || aligned["xAxisID"] {
		t.Error("data and xAxisID should not be marked aligned")
	}
	if !aligned["borderWidth"] {
		t.Error("borderWidth should be marked aligned")
	}
}

func TestBarZeroValueAndCopy(t *testing.T) {
	var b Bar
	b.SetLabel("a").AddBorderWidth(1).SetXAxisID("x")

	cp := b
	cp.AddData(5).SetXAxisID("").AddBorderWidth(2)

	if _, ok := cp.XAxisID(); ok {
		t.Error("empty XAxisID should clear the field")
	}
	if v, ok := b.XAxisID(); !ok || v != "x" {
		t.Errorf("original XAxisID() = %q, %v", v, ok)
	}
	if got := b.BorderWidth(); len(got) != 1 {
		t.Errorf("original BorderWidth() = %v, want [1]", got)
	}

	data, err := json.Marshal(cp)
	if err != nil {
		t.Fatalf("json.Marshal() error: %v", err)
	}
	if want := `{"label":"a","data":[5],"borderWidth":[1,2]}`; string(data) != want {
		t.Errorf("json.Marshal(value) = %s, want %s", data, want)
	}
}
