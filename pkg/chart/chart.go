// Package chart assembles datasets into a chart document: the chart type,
// the category labels along the index axis, and the ordered datasets.
//
// A Chart is only a container. It does not render; see the sink package for
// turning it into JSON.
package chart

import (
	"github.com/matzehuels/chartkit/pkg/dataset"
	"github.com/matzehuels/chartkit/pkg/errors"
)

// Chart is a chart document.
type Chart struct {
	typ      dataset.Kind
	labels   dataset.List[string]
	datasets []dataset.Projector
}

// New returns an empty chart of the given type.
func New(typ dataset.Kind) *Chart {
	return &Chart{typ: typ}
}

// Type returns the chart type.
func (c *Chart) Type() dataset.Kind { return c.typ }

// Labels returns the category labels in order.
func (c *Chart) Labels() []string { return c.labels.Items() }

// SetLabels replaces the category labels.
func (c *Chart) SetLabels(labels ...string) *Chart {
	c.labels.Set(labels...)
	return c
}

// AddLabel appends one category label.
func (c *Chart) AddLabel(label string) *Chart {
	c.labels.Add(label)
	return c
}

// Datasets returns the datasets in order. The slice is a copy; the datasets
// themselves are shared with the chart.
func (c *Chart) Datasets() []dataset.Projector {
	out := make([]dataset.Projector, len(c.datasets))
	copy(out, c.datasets)
	return out
}

// AddDataset appends a dataset. Nil datasets are ignored.
func (c *Chart) AddDataset(d dataset.Projector) *Chart {
	if d != nil {
		c.datasets = append(c.datasets, d)
	}
	return c
}

// Validate checks that every dataset can be drawn by the chart type.
func (c *Chart) Validate() error {
	if _, err := dataset.ParseKind(string(c.typ)); err != nil {
		return err
	}
	for i, d := range c.datasets {
		if d.Kind() != c.typ {
			return errors.New(errors.ErrCodeInvalidKind, "dataset %d is %s, chart is %s", i, d.Kind(), c.typ)
		}
	}
	return nil
}

// Misalignment describes a per-point sequence whose length differs from the
// number of data values in its dataset. The engine falls back to defaults
// for points past the end of a short sequence and ignores extra elements.
type Misalignment struct {
	Dataset int    // Index of the dataset in the chart
	Key     string // Property name
	Len     int    // Sequence length
	Data    int    // Number of data values
}

// Misaligned reports every per-point sequence whose length does not match
// its dataset's data length. It is advisory: the document is still valid.
func (c *Chart) Misaligned() []Misalignment {
	var out []Misalignment
	for i, d := range c.datasets {
		props := d.Properties()
		n := 0
		for _, p := range props {
			if p.Key == "data" {
				n = p.Len
			}
		}
		for _, p := range props {
			if p.Aligned && p.Len != n {
				out = append(out, Misalignment{Dataset: i, Key: p.Key, Len: p.Len, Data: n})
			}
		}
	}
	return out
}
