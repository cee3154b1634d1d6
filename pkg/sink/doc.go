// Package sink renders charts and datasets into the JSON documents consumed
// by the Chart.js engine.
//
// # Overview
//
// A "sink" is the last step of the pipeline: it takes a populated
// [chart.Chart] (or a single dataset) and produces bytes. The core packages
// only build values; everything format-specific lives here.
//
// # JSON Output
//
// [RenderJSON] produces a full chart configuration:
//
//	{
//	  "type": "radar",
//	  "data": {
//	    "labels": ["Eating", "Drinking"],
//	    "datasets": [
//	      {"label": "Series A", "data": [65, 59], "pointStyle": ["circle", "star"]}
//	    ]
//	  }
//	}
//
// [RenderDatasetJSON] produces just the dataset object. In both cases absent
// fields and empty sequences are left out entirely.
//
// # Options
//
//   - [WithColorFormat]: rgba() strings (default), hex strings, or {r,g,b,a}
//     objects. The choice applies to every color in the document.
//   - [WithCompact]: single-line output instead of two-space indentation.
//
// # Concurrency
//
// Rendering only reads the chart. It is safe to render the same chart from
// several goroutines as long as nobody mutates it meanwhile.
package sink
