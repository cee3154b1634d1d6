package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/chartkit/pkg/chart"
)

// inspectCommand creates the inspect command, which lists every property set
// on each dataset of a chart document.
func (c *CLI) inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [file]",
		Short: "Show the properties set on each dataset",
		Long: `Show the properties set on each dataset of a chart document.

Colors are previewed as terminal swatches. Per-point sequences whose length
differs from the number of data values are flagged.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ch, err := c.loadChart(args[0])
			if err != nil {
				return err
			}
			printChart(cmd.OutOrStdout(), ch)
			return nil
		},
	}
}

func printChart(w io.Writer, ch *chart.Chart) {
	datasets := ch.Datasets()
	printTitle(w, "%s chart", ch.Type())
	fmt.Fprintln(w, StyleDim.Render(fmt.Sprintf("%d labels · %d datasets", len(ch.Labels()), len(datasets))))

	for i, d := range datasets {
		fmt.Fprintln(w)
		props := d.Properties()
		name := "(unlabeled)"
		for _, p := range props {
			if p.Key == "label" {
				name = fmt.Sprint(p.Value)
			}
		}
		printTitle(w, "Dataset %d  %s", i, name)
		if len(props) == 0 {
			fmt.Fprintln(w, "  "+StyleDim.Render("no properties set"))
		}
		for _, p := range props {
			printKeyValue(w, p.Key, formatValue(p.Value))
		}
	}

	if mis := ch.Misaligned(); len(mis) > 0 {
		fmt.Fprintln(w)
		for _, m := range mis {
			printWarning(w, "dataset %d: %s has %d values for %d data points", m.Dataset, m.Key, m.Len, m.Data)
		}
	}
}
