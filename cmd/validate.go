package cmd

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	verrors "github.com/conneroisu/viewforge/internal/errors"
	"github.com/conneroisu/viewforge/internal/layout"
)

var validateCmd = &cobra.Command{
	Use:   "validate <layout.yml>...",
	Short: "Check layouts for views that cannot be built",
	Long: `Build each layout and report unknown view types, broken inheritance
chains, patches a builder rejected, and children given to non-containers.
Exits non-zero if any view could not be built.

Examples:
  viewforge validate panel.yml
  viewforge validate screens/*.yml -o json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

type issueRow struct {
	File     string `json:"file" yaml:"file"`
	Path     string `json:"path" yaml:"path"`
	Class    string `json:"class" yaml:"class"`
	Severity string `json:"severity" yaml:"severity"`
	Message  string `json:"message" yaml:"message"`
}

func runValidate(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	rows := make([]issueRow, 0)
	failed := false
	for _, path := range args {
		doc, err := layout.LoadFile(path)
		if err != nil {
			rows = append(rows, issueRow{File: path, Severity: verrors.ErrorSeverityError.String(), Message: err.Error()})
			failed = true
			continue
		}
		_, issues := layout.Build(ctx, a.engine, doc, a.resources)
		failed = failed || issues.HasErrors()
		for _, issue := range issues.Issues() {
			message := issue.Message
			if issue.Cause != nil {
				message += ": " + issue.Cause.Error()
			}
			rows = append(rows, issueRow{
				File:     path,
				Path:     issue.Path,
				Class:    issue.Class,
				Severity: issue.Severity.String(),
				Message:  message,
			})
		}
	}

	err = render(cmd.OutOrStdout(), outputFormat(a), rows, func(tw *tabwriter.Writer) {
		if len(rows) == 0 {
			fmt.Fprintf(tw, "%d layouts OK\n", len(args))
			return
		}
		fmt.Fprintln(tw, "FILE\tPATH\tCLASS\tSEVERITY\tMESSAGE")
		for _, row := range rows {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", row.File, dash(row.Path), dash(row.Class), row.Severity, row.Message)
		}
	})
	if err != nil {
		return err
	}
	if failed {
		return fmt.Errorf("validation failed")
	}
	return nil
}
