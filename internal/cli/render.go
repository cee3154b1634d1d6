package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/chartkit/pkg/chart"
	"github.com/matzehuels/chartkit/pkg/color"
	chartio "github.com/matzehuels/chartkit/pkg/io"
	"github.com/matzehuels/chartkit/pkg/sink"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output      string // output file path; stdout when empty
	colorFormat string // color encoding: "rgba", "hex", or "object"
	compact     bool   // write JSON without indentation
}

// renderCommand creates the render command for producing Chart.js JSON.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{colorFormat: color.FormatRGBA.String()}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a chart document to Chart.js JSON",
		Long: `Render a TOML chart document to a Chart.js configuration.

Properties that were never set are left out of the output, so the charting
engine applies its own defaults for them.`,
		Example: `  chartkit render radar.toml
  chartkit render radar.toml -o radar.json --color-format hex`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&opts.colorFormat, "color-format", opts.colorFormat, "color encoding: rgba, hex, object")
	cmd.Flags().BoolVar(&opts.compact, "compact", false, "write compact JSON")

	return cmd
}

func (c *CLI) runRender(w io.Writer, path string, opts renderOpts) error {
	format, err := color.ParseFormat(opts.colorFormat)
	if err != nil {
		return err
	}

	ch, err := c.loadChart(path)
	if err != nil {
		return err
	}

	jsonOpts := []sink.JSONOption{sink.WithColorFormat(format)}
	if opts.compact {
		jsonOpts = append(jsonOpts, sink.WithCompact())
	}

	if opts.output == "" {
		return chartio.WriteJSON(ch, w, jsonOpts...)
	}

	prog := newProgress(c.Logger)
	if err := chartio.ExportJSON(ch, opts.output, jsonOpts...); err != nil {
		return err
	}
	prog.done("Rendered " + string(ch.Type()) + " chart")
	printSuccess(w, "Rendered %d dataset(s)", len(ch.Datasets()))
	printFile(w, opts.output)
	return nil
}

// loadChart imports a chart document and logs advisory misalignments.
func (c *CLI) loadChart(path string) (*chart.Chart, error) {
	prog := newProgress(c.Logger)
	ch, err := chartio.ImportTOML(path)
	if err != nil {
		return nil, err
	}
	prog.done(fmt.Sprintf("Loaded %s", path))

	c.Logger.Debug("chart", "type", ch.Type(), "labels", len(ch.Labels()), "datasets", len(ch.Datasets()))
	for _, m := range ch.Misaligned() {
		c.Logger.Warn("per-point sequence does not match data", "dataset", m.Dataset, "key", m.Key, "len", m.Len, "data", m.Data)
	}
	return ch, nil
}
