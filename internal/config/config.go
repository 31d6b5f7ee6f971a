// Package config provides configuration management for viewforge using
// Viper for loading from files, environment variables, and command-line
// flags.
//
// The configuration system supports YAML files (.viewforge.yml), environment
// variable overrides with the VIEWFORGE_ prefix, defaults and validation. It
// manages logging, the resource tables handed to builders, engine policy, the
// layout watcher and CLI output.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/conneroisu/viewforge/internal/logging"
)

type Config struct {
	Log       LogConfig       `mapstructure:"log" yaml:"log"`
	Resources ResourcesConfig `mapstructure:"resources" yaml:"resources"`
	Engine    EngineConfig    `mapstructure:"engine" yaml:"engine"`
	Watch     WatchConfig     `mapstructure:"watch" yaml:"watch"`
	Output    OutputConfig    `mapstructure:"output" yaml:"output"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

type ResourcesConfig struct {
	// Path of a YAML resource table; empty means no named resources.
	Path string `mapstructure:"path" yaml:"path"`
}

type EngineConfig struct {
	RememberSymbolic bool `mapstructure:"remember_symbolic" yaml:"remember_symbolic"`
	AbortOnMismatch  bool `mapstructure:"abort_on_mismatch" yaml:"abort_on_mismatch"`
	// DisabledTypes are removed from the registry together with every type
	// derived from them.
	DisabledTypes []string `mapstructure:"disabled_types" yaml:"disabled_types"`
}

type WatchConfig struct {
	Debounce time.Duration `mapstructure:"debounce" yaml:"debounce"`
}

type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format"`
}

// Defaults.
const (
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "auto"
	DefaultOutputFormat = "table"
	DefaultDebounce     = 200 * time.Millisecond
)

// Load reads the configuration from the global viper instance.
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom reads the configuration from v, applies defaults for unset keys
// and validates the result.
func LoadFrom(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if config.Log.Level == "" {
		config.Log.Level = DefaultLogLevel
	}
	if config.Log.Format == "" {
		config.Log.Format = DefaultLogFormat
	}
	if config.Output.Format == "" {
		config.Output.Format = DefaultOutputFormat
	}
	if !v.IsSet("watch.debounce") {
		config.Watch.Debounce = DefaultDebounce
	}
	if !v.IsSet("engine.remember_symbolic") {
		config.Engine.RememberSymbolic = true
	}

	if result := Validate(&config); result.HasErrors() {
		return nil, fmt.Errorf("invalid configuration: %w", &result.Errors[0])
	}
	return &config, nil
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Log:    LogConfig{Level: DefaultLogLevel, Format: DefaultLogFormat},
		Engine: EngineConfig{RememberSymbolic: true},
		Watch:  WatchConfig{Debounce: DefaultDebounce},
		Output: OutputConfig{Format: DefaultOutputFormat},
	}
}

// LoggerConfig converts the log section into a logger configuration.
func (c *Config) LoggerConfig() *logging.LoggerConfig {
	lc := logging.DefaultConfig()
	if level, err := logging.ParseLevel(c.Log.Level); err == nil {
		lc.Level = level
	}
	lc.Format = logging.Format(c.Log.Format)
	return lc
}
