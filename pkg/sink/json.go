package sink

import (
	"bytes"
	"encoding/json"

	"github.com/matzehuels/chartkit/pkg/chart"
	"github.com/matzehuels/chartkit/pkg/color"
	"github.com/matzehuels/chartkit/pkg/dataset"
	"github.com/matzehuels/chartkit/pkg/errors"
)

// JSONOption configures JSON rendering via [RenderJSON] and [RenderDatasetJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	colors  color.Format
	compact bool
}

// WithColorFormat selects how every color in the document is written.
// The default is [color.FormatRGBA].
func WithColorFormat(f color.Format) JSONOption { return func(r *jsonRenderer) { r.colors = f } }

// WithCompact disables indentation.
func WithCompact() JSONOption { return func(r *jsonRenderer) { r.compact = true } }

func newRenderer(opts []JSONOption) jsonRenderer {
	r := jsonRenderer{colors: color.FormatRGBA}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

type jsonOutput struct {
	Type string   `json:"type"`
	Data jsonData `json:"data"`
}

type jsonData struct {
	Labels   []string          `json:"labels,omitempty"`
	Datasets []json.RawMessage `json:"datasets"`
}

// RenderJSON exports a chart as a Chart.js configuration document:
//
//	{"type": "radar", "data": {"labels": [...], "datasets": [...]}}
//
// Labels are omitted when the chart has none; datasets is always present.
// Each dataset is written with the inclusion rule of [dataset.Encode].
//
// RenderJSON validates the chart first and returns its error, so a document
// mixing dataset kinds is never produced. It does not modify c.
func RenderJSON(c *chart.Chart, opts ...JSONOption) ([]byte, error) {
	r := newRenderer(opts)
	if err := c.Validate(); err != nil {
		return nil, err
	}

	out := jsonOutput{
		Type: string(c.Type()),
		Data: jsonData{
			Labels:   c.Labels(),
			Datasets: make([]json.RawMessage, 0, len(c.Datasets())),
		},
	}
	for i, d := range c.Datasets() {
		raw, err := dataset.Encode(d.Properties(), r.colors)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "dataset %d", i)
		}
		out.Data.Datasets = append(out.Data.Datasets, raw)
	}

	return r.marshal(out)
}

// RenderDatasetJSON exports a single dataset object.
func RenderDatasetJSON(d dataset.Projector, opts ...JSONOption) ([]byte, error) {
	r := newRenderer(opts)
	raw, err := dataset.Encode(d.Properties(), r.colors)
	if err != nil {
		return nil, err
	}
	if r.compact {
		return raw, nil
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "indent dataset")
	}
	return buf.Bytes(), nil
}

func (r jsonRenderer) marshal(v any) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if r.compact {
		data, err = json.Marshal(v)
	} else {
		data, err = json.MarshalIndent(v, "", "  ")
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "marshal chart")
	}
	return data, nil
}
