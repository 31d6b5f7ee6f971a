package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	verrors "github.com/conneroisu/viewforge/internal/errors"
	"github.com/conneroisu/viewforge/internal/layout"
	"github.com/conneroisu/viewforge/internal/logging"
	"github.com/conneroisu/viewforge/internal/view"
)

var buildCmd = &cobra.Command{
	Use:     "build <layout.yml>",
	Aliases: []string{"b"},
	Short:   "Build a layout and print its description",
	Long: `Build every view in a layout document, then read the built tree back
into attribute form. Values are normalized (clamped, canonical spelling) and
attributes no builder recognizes are carried through unchanged.

Examples:
  viewforge build panel.yml
  viewforge build panel.yml -r resources.yml -o yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	doc, err := layout.LoadFile(args[0])
	if err != nil {
		return err
	}

	roots, issues := layout.Build(ctx, a.engine, doc, a.resources)
	reportIssues(ctx, a.logger, issues)

	if err := printTree(ctx, cmd.OutOrStdout(), a, roots); err != nil {
		return err
	}
	if issues.HasErrors() {
		return fmt.Errorf("%s: %d issues, some views could not be built", args[0], issues.Len())
	}
	return nil
}

// printTree describes roots and writes them in the configured format.
func printTree(ctx context.Context, w io.Writer, a *app, roots []view.View) error {
	described, err := layout.Describe(ctx, a.engine, roots, a.resources)
	if err != nil {
		return err
	}
	if outputFormat(a) == "yaml" {
		return described.Encode(w)
	}
	return render(w, outputFormat(a), described, func(tw *tabwriter.Writer) {
		fmt.Fprintln(tw, "PATH\tCLASS\tATTRIBUTES")
		writeRows(tw, described.Views, "views")
	})
}

func writeRows(tw *tabwriter.Writer, nodes []layout.Node, prefix string) {
	for i, node := range nodes {
		path := fmt.Sprintf("%s[%d]", prefix, i)
		pairs := make([]string, 0, node.Attributes.Len())
		for _, name := range node.Attributes.Names() {
			value, _ := node.Attributes.Get(name)
			pairs = append(pairs, name+"="+value)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", path, node.Class, strings.Join(pairs, "; "))
		writeRows(tw, node.Children, path+".children")
	}
}

func reportIssues(ctx context.Context, logger logging.Logger, issues *verrors.Collector) {
	for _, issue := range issues.Issues() {
		fields := []interface{}{"path", issue.Path, "class", issue.Class}
		if issue.Severity == verrors.ErrorSeverityError {
			logger.Error(ctx, issue.Cause, issue.Message, fields...)
		} else {
			logger.Warn(ctx, issue.Cause, issue.Message, fields...)
		}
	}
}
