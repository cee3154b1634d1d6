package io

import (
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/chartkit/pkg/chart"
	"github.com/matzehuels/chartkit/pkg/sink"
)

// WriteJSON renders c with [sink.RenderJSON] and writes it to w followed by
// a newline.
func WriteJSON(c *chart.Chart, w io.Writer, opts ...sink.JSONOption) error {
	data, err := sink.RenderJSON(c, opts...)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// ExportJSON writes the rendered chart to a file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(c *chart.Chart, path string, opts ...sink.JSONOption) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(c, f, opts...)
}
