package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"l"},
	Short:   "List registered view types",
	Long: `List every registered view type with its base type and the number of
attributes it declares itself.

Examples:
  viewforge list                 # All types as a table
  viewforge list --base Control  # Only Control and its descendants
  viewforge list -o json         # Output as JSON`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var listBase string

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVarP(&listBase, "base", "b", "", "only list this type and types derived from it")
}

type typeRow struct {
	Tag        string `json:"tag" yaml:"tag"`
	Base       string `json:"base,omitempty" yaml:"base,omitempty"`
	Name       string `json:"name" yaml:"name"`
	Attributes int    `json:"attributes" yaml:"attributes"`
}

func runList(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	if listBase != "" {
		if _, ok := a.registry.Lookup(listBase); !ok {
			return fmt.Errorf("unknown base type %q", listBase)
		}
	}

	tags := a.registry.Tags(listBase)
	rows := make([]typeRow, 0, len(tags))
	for _, tag := range tags {
		b, _ := a.registry.Lookup(tag)
		rows = append(rows, typeRow{
			Tag:        tag,
			Base:       b.BaseTag(),
			Name:       b.DisplayName(),
			Attributes: len(b.AttributeNames()),
		})
	}

	return render(cmd.OutOrStdout(), outputFormat(a), rows, func(tw *tabwriter.Writer) {
		fmt.Fprintln(tw, "TAG\tBASE\tNAME\tATTRIBUTES")
		for _, row := range rows {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", row.Tag, dash(row.Base), row.Name, row.Attributes)
		}
		fmt.Fprintf(tw, "\nTotal: %d types\n", len(rows))
	})
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
