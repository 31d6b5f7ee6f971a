package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var outputFormats = []string{"table", "json", "yaml"}

func init() {
	rootCmd.PersistentFlags().StringP("output", "o", "", "output format (table|json|yaml)")
	_ = viper.BindPFlag("output.format", rootCmd.PersistentFlags().Lookup("output"))
	AddFlagValidation(rootCmd.PersistentFlags(), "output", func(format string) error {
		return ValidateFormat(format, outputFormats)
	})
}

// AddFlagValidation wraps a flag so that invalid values are rejected while
// the command line is parsed.
func AddFlagValidation(flags *pflag.FlagSet, flagName string, validator func(string) error) {
	flag := flags.Lookup(flagName)
	if flag == nil {
		return
	}
	flag.Value = &validatingValue{Value: flag.Value, validator: validator}
}

type validatingValue struct {
	pflag.Value
	validator func(string) error
}

func (v *validatingValue) Set(val string) error {
	if v.validator != nil {
		if err := v.validator(val); err != nil {
			return err
		}
	}
	return v.Value.Set(val)
}

// ValidateFormat accepts "" or any of allowed, ignoring case, and suggests the
// closest match otherwise.
func ValidateFormat(format string, allowed []string) error {
	if format == "" {
		return nil
	}
	lower := strings.ToLower(format)
	for _, a := range allowed {
		if lower == a {
			return nil
		}
	}
	for _, a := range allowed {
		if strings.HasPrefix(a, lower) && lower != "" {
			return fmt.Errorf("invalid format %q, did you mean %q?", format, a)
		}
	}
	return fmt.Errorf("invalid format %q, must be one of: %s", format, strings.Join(allowed, ", "))
}

// outputFormat returns the configured output format.
func outputFormat(a *app) string {
	return strings.ToLower(a.config.Output.Format)
}

// render writes data as JSON or YAML, or calls table for the table format.
func render(w io.Writer, format string, data interface{}, table func(tw *tabwriter.Writer)) error {
	switch format {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(data)
	case "yaml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(data); err != nil {
			return err
		}
		return encoder.Close()
	case "table", "":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		table(tw)
		return tw.Flush()
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

