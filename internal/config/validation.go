package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/conneroisu/viewforge/internal/logging"
)

// ValidationError represents a configuration validation error with suggestions
type ValidationError struct {
	Field       string
	Value       interface{}
	Message     string
	Suggestions []string
}

func (ve *ValidationError) Error() string {
	return fmt.Sprintf("validation error in %s: %s", ve.Field, ve.Message)
}

// ValidationResult holds the result of configuration validation
type ValidationResult struct {
	Valid    bool
	Errors   []ValidationError
	Warnings []ValidationError
}

// HasErrors returns true if there are any validation errors
func (vr *ValidationResult) HasErrors() bool {
	return len(vr.Errors) > 0
}

// HasWarnings returns true if there are any validation warnings
func (vr *ValidationResult) HasWarnings() bool {
	return len(vr.Warnings) > 0
}

// String returns a formatted string of all validation issues
func (vr *ValidationResult) String() string {
	var builder strings.Builder

	if len(vr.Errors) > 0 {
		builder.WriteString("Validation errors:\n")
		for _, err := range vr.Errors {
			builder.WriteString(fmt.Sprintf("  - %s: %s\n", err.Field, err.Message))
			for _, suggestion := range err.Suggestions {
				builder.WriteString(fmt.Sprintf("    hint: %s\n", suggestion))
			}
		}
		builder.WriteString("\n")
	}

	if len(vr.Warnings) > 0 {
		builder.WriteString("Validation warnings:\n")
		for _, warning := range vr.Warnings {
			builder.WriteString(fmt.Sprintf("  - %s: %s\n", warning.Field, warning.Message))
			for _, suggestion := range warning.Suggestions {
				builder.WriteString(fmt.Sprintf("    hint: %s\n", suggestion))
			}
		}
	}

	return builder.String()
}

var (
	logFormats    = []string{"auto", "text", "json"}
	outputFormats = []string{"table", "json", "yaml"}
)

const maxDebounce = 10 * time.Second

// Validate checks every section and collects errors and warnings.
func Validate(config *Config) *ValidationResult {
	result := &ValidationResult{
		Valid:    true,
		Errors:   []ValidationError{},
		Warnings: []ValidationError{},
	}

	if _, err := logging.ParseLevel(config.Log.Level); err != nil {
		result.Errors = append(result.Errors, ValidationError{
			Field:       "log.level",
			Value:       config.Log.Level,
			Message:     err.Error(),
			Suggestions: []string{"use one of debug, info, warn, error"},
		})
	}
	if !contains(logFormats, config.Log.Format) {
		result.Errors = append(result.Errors, ValidationError{
			Field:       "log.format",
			Value:       config.Log.Format,
			Message:     fmt.Sprintf("unknown log format %q", config.Log.Format),
			Suggestions: []string{"use one of " + strings.Join(logFormats, ", ")},
		})
	}
	if !contains(outputFormats, config.Output.Format) {
		result.Errors = append(result.Errors, ValidationError{
			Field:       "output.format",
			Value:       config.Output.Format,
			Message:     fmt.Sprintf("unknown output format %q", config.Output.Format),
			Suggestions: []string{"use one of " + strings.Join(outputFormats, ", ")},
		})
	}

	switch {
	case config.Watch.Debounce < 0:
		result.Errors = append(result.Errors, ValidationError{
			Field:   "watch.debounce",
			Value:   config.Watch.Debounce,
			Message: "debounce cannot be negative",
		})
	case config.Watch.Debounce > maxDebounce:
		result.Warnings = append(result.Warnings, ValidationError{
			Field:       "watch.debounce",
			Value:       config.Watch.Debounce,
			Message:     "debounce is unusually long",
			Suggestions: []string{"values between 50ms and 1s work well for editors"},
		})
	}

	if config.Resources.Path != "" {
		if strings.Contains(config.Resources.Path, "\x00") {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "resources.path",
				Value:   config.Resources.Path,
				Message: "path contains a NUL byte",
			})
		} else if !pathExists(config.Resources.Path) {
			result.Warnings = append(result.Warnings, ValidationError{
				Field:       "resources.path",
				Value:       config.Resources.Path,
				Message:     "resource file does not exist",
				Suggestions: []string{"symbolic names will not resolve until the file is created"},
			})
		}
	}

	result.Valid = !result.HasErrors()
	return result
}

// pathExists checks if a path exists
func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// contains checks if a slice contains a string
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
