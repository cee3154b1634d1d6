// Package pkg holds the chartkit libraries.
//
// # Overview
//
// Chartkit models Chart.js dataset configuration as typed Go values and
// renders it to the JSON the charting engine consumes. Properties that were
// never set are left out, so the engine applies its own defaults.
//
// The packages, from the bottom up:
//
//  1. [color] and [style] - value types: RGBA colors and closed token sets
//     such as point styles
//  2. [dataset] - the fluent dataset model (Radar, Bar) and its property
//     projection
//  3. [chart] - a chart document: type, labels, and datasets
//  4. [sink] - JSON rendering with per-document color formats
//  5. [io] - TOML chart documents in, JSON files out
//
// [errors] carries the error codes shared by all of them.
//
// # Quick Start
//
//	r := dataset.NewRadar().
//	    SetLabel("Series A").
//	    SetData(65, 59, 90).
//	    SetBorderColor(color.RGBA(179, 181, 198, 1)).
//	    SetPointStyle(style.PointCircle, style.PointStar, style.PointRect)
//
//	c := chart.New(dataset.KindRadar).
//	    SetLabels("Eating", "Drinking", "Sleeping").
//	    AddDataset(r)
//
//	data, err := sink.RenderJSON(c)
//
// [color]: https://pkg.go.dev/github.com/matzehuels/chartkit/pkg/color
// [style]: https://pkg.go.dev/github.com/matzehuels/chartkit/pkg/style
// [dataset]: https://pkg.go.dev/github.com/matzehuels/chartkit/pkg/dataset
// [chart]: https://pkg.go.dev/github.com/matzehuels/chartkit/pkg/chart
// [sink]: https://pkg.go.dev/github.com/matzehuels/chartkit/pkg/sink
// [io]: https://pkg.go.dev/github.com/matzehuels/chartkit/pkg/io
// [errors]: https://pkg.go.dev/github.com/matzehuels/chartkit/pkg/errors
package pkg
