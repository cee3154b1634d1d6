package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/chartkit/pkg/color"
	"github.com/matzehuels/chartkit/pkg/dataset"
	"github.com/matzehuels/chartkit/pkg/style"
)

// stylesCommand creates the styles command, which lists the accepted tokens
// for every enumerated property.
func (c *CLI) stylesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "List accepted chart types, style tokens, and color formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printDomains(cmd.OutOrStdout())
			return nil
		},
	}
}

func printDomains(w io.Writer) {
	printTitle(w, "Chart types")
	printKeyValue(w, "type", join(dataset.Kinds()))

	printTitle(w, "Style tokens")
	printKeyValue(w, "borderCapStyle", join(style.CapStyles()))
	printKeyValue(w, "borderJoinStyle", join(style.JoinStyles()))
	printKeyValue(w, "pointStyle", join(style.PointStyles()))
	printKeyValue(w, "borderSkipped", join(style.Edges()))

	printTitle(w, "Color formats")
	printKeyValue(w, "--color-format", join([]color.Format{color.FormatRGBA, color.FormatHex, color.FormatObject}))
}

// join renders values in declaration order; the first is the default.
func join[T any](vs []T) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = fmt.Sprint(v)
	}
	return StyleValue.Render(strings.Join(parts, ", "))
}
