// Package io loads chart documents from TOML and writes rendered charts as
// JSON.
//
// # Overview
//
// The core packages build chart values in memory and never touch files.
// This package is the file-facing layer used by the CLI:
//
//   - Describing a chart by hand in a readable format (TOML)
//   - Rendering that description into the Chart.js JSON configuration
//   - Round-tripping through files and arbitrary readers/writers
//
// # TOML Format
//
// A document has a chart type, optional labels, and an array of datasets:
//
//	type = "radar"
//	labels = ["Eating", "Drinking", "Sleeping"]
//
//	[[datasets]]
//	label = "Series A"
//	data = [65, 59, 90]
//	fill = true
//	backgroundColor = "rgba(179,181,198,0.2)"
//	borderColor = "#b3b5c6"
//	borderDash = [5, 5]
//	pointStyle = ["circle", "star", "rect"]
//
// Dataset keys are the Chart.js property names, so a document reads like the
// JSON it produces. Every key is optional. Keys are checked against the
// chart type: a bar-only key such as borderSkipped in a radar document is an
// error, as is any unknown key.
//
// Supported chart types:
//   - radar: label, data, hidden, fill, lineTension, backgroundColor,
//     borderWidth, borderColor, borderCapStyle, borderDash, borderDashOffset,
//     borderJoinStyle, pointBorderColor, pointBackgroundColor,
//     pointBorderWidth, pointRadius, pointHoverRadius, hitRadius,
//     pointHoverBackgroundColor, pointHoverBorderColor,
//     pointHoverBorderWidth, pointStyle
//   - bar: label, data, hidden, xAxisID, yAxisID, backgroundColor,
//     borderColor, borderWidth, borderSkipped, hoverBackgroundColor,
//     hoverBorderColor, hoverBorderWidth
//
// # Import
//
// Use [ImportTOML] to read a chart from a file path, or [ReadTOML] to read
// from any io.Reader:
//
//	c, err := io.ImportTOML("radar.toml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Export
//
// Use [ExportJSON] to write a chart to a file, or [WriteJSON] to write to any
// io.Writer. Both accept the rendering options of the sink package:
//
//	err := io.ExportJSON(c, "radar.json", sink.WithColorFormat(color.FormatHex))
//
// # Concurrency
//
// Every call builds an independent chart. Writing only reads the chart.
package io
