package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/conneroisu/viewforge/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: `Display the version, git commit, build time, Go version and platform.

Examples:
  viewforge version            # Short version
  viewforge version --detailed # Every field
  viewforge version -o json    # Output as JSON`,
	Args: cobra.NoArgs,
	RunE: runVersion,
}

var versionDetailed bool

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolVar(&versionDetailed, "detailed", false, "show detailed version information")
}

func runVersion(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("output")
	format = strings.ToLower(format)
	info := version.Get()
	if format == "" || format == "table" {
		if versionDetailed {
			fmt.Fprintln(cmd.OutOrStdout(), info.Detailed())
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "viewforge %s\n", version.Short())
		}
		return nil
	}
	return render(cmd.OutOrStdout(), format, info, func(*tabwriter.Writer) {})
}
