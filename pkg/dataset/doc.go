// Package dataset models chart datasets: one data series plus its styling,
// ready to be serialized into the JSON shape the Chart.js engine expects.
//
// # Fields
//
// Every dataset field is one of two shapes:
//
//   - A scalar ([Opt]) is absent until set and holds exactly one value once
//     set. Accessors return (value, ok); Clear mutators make it absent again.
//   - A sequence ([List]) is an ordered list whose element i applies to data
//     point i. It is never nil: it starts empty, Set replaces its contents
//     with a copy of the arguments (no arguments empties it), and Add appends
//     one element. Accessors return a copy.
//
// Mutators touch only the field they name and never fail. Text scalars
// (label, axis IDs) treat the empty string as absent.
//
// # Kinds
//
// [Dataset] holds the fields every kind shares (label, data, hidden) and is
// embedded by the concrete kinds [Radar] and [Bar]. Each kind exposes the
// shared mutators with its own return type, as required by [Builder], so
// chains never lose their type:
//
//	r := dataset.NewRadar().
//	    SetLabel("Series A").
//	    SetData(65, 59, 90).
//	    SetBorderColor(color.RGB(179, 181, 198)).
//	    AddPointStyle(style.PointStar)
//
// The zero value of a kind is an empty dataset, and a dataset copied by value
// is independent of the original.
//
// # Serialization
//
// Properties projects a dataset into ordered [Property] values under the
// engine's exact property names. A field is included iff it is present
// (scalars) or non-empty (sequences), so a fresh dataset projects to nothing
// and encodes as {}. [Encode] writes the projection as a JSON object with a
// chosen [color.Format]; each kind's MarshalJSON uses rgba() colors.
//
// # Concurrency
//
// Datasets are plain mutable values with no internal locking. Callers that
// share one across goroutines must synchronize access themselves.
package dataset
