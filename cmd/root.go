// Package cmd provides the viewforge command-line interface.
//
// Configuration sources, highest priority first:
//
//  1. Command-line flags (--config, --log-level, --output)
//  2. VIEWFORGE_CONFIG_FILE: path to a configuration file
//  3. Individual environment variables (VIEWFORGE_LOG_LEVEL, VIEWFORGE_ENGINE_ABORT_ON_MISMATCH, ...)
//  4. .viewforge.yml in the current directory
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/conneroisu/viewforge/internal/config"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "viewforge",
	Short: "Build and describe declarative view trees",
	Long: `viewforge builds view trees from YAML layouts, reads them back into
attribute form, and reports which attributes each view type understands.

Quick Start:
  viewforge list                         List registered view types
  viewforge catalog Knob                 Show every attribute a Knob accepts
  viewforge build layout.yml -r res.yml  Build a layout and print its description
  viewforge validate layout.yml          Report build problems without output
  viewforge watch layout.yml             Rebuild whenever the layout changes`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .viewforge.yml, can also use VIEWFORGE_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().String("log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringP("resources", "r", "", "resource table (colors, fonts, bitmaps, tags, variables)")
	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("resources.path", rootCmd.PersistentFlags().Lookup("resources"))
}

// initConfig selects the configuration file and enables VIEWFORGE_
// environment overrides. A missing file is not an error.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv("VIEWFORGE_CONFIG_FILE"); envConfigFile != "" {
		viper.SetConfigFile(envConfigFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".viewforge")
	}

	viper.SetEnvPrefix("VIEWFORGE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	setDefaults(viper.GetViper())

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// setDefaults registers every key so environment overrides reach Unmarshal.
func setDefaults(v *viper.Viper) {
	defaults := config.Default()
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.format", defaults.Log.Format)
	v.SetDefault("resources.path", defaults.Resources.Path)
	v.SetDefault("engine.remember_symbolic", defaults.Engine.RememberSymbolic)
	v.SetDefault("engine.abort_on_mismatch", defaults.Engine.AbortOnMismatch)
	v.SetDefault("engine.disabled_types", []string{})
	v.SetDefault("watch.debounce", defaults.Watch.Debounce)
	v.SetDefault("output.format", defaults.Output.Format)
}
