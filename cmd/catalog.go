package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/conneroisu/viewforge/internal/engine"
)

var catalogCmd = &cobra.Command{
	Use:     "catalog <type>",
	Aliases: []string{"c"},
	Short:   "Show the attributes a view type accepts",
	Long: `Show every attribute a view type accepts, including inherited ones, with
the value type, the declaring type, and any allowed values or numeric range.

Examples:
  viewforge catalog Knob
  viewforge catalog Slider -o yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runCatalog,
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	catalog, err := a.engine.AttributeCatalog(args[0])
	if err != nil {
		return err
	}

	return render(cmd.OutOrStdout(), outputFormat(a), catalog, func(tw *tabwriter.Writer) {
		fmt.Fprintln(tw, "NAME\tTYPE\tOWNER\tCONSTRAINT")
		for _, info := range catalog.Attributes {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", info.Name, info.Type, info.Owner, constraint(info))
		}
	})
}

func constraint(info engine.AttributeInfo) string {
	switch {
	case len(info.Values) > 0:
		return strings.Join(info.Values, " | ")
	case info.HasRange:
		return "[" + strconv.FormatFloat(info.Min, 'g', -1, 64) + ", " + strconv.FormatFloat(info.Max, 'g', -1, 64) + "]"
	default:
		return "-"
	}
}
