package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/conneroisu/viewforge/internal/builders"
	"github.com/conneroisu/viewforge/internal/config"
	"github.com/conneroisu/viewforge/internal/description"
	"github.com/conneroisu/viewforge/internal/engine"
	verrors "github.com/conneroisu/viewforge/internal/errors"
	"github.com/conneroisu/viewforge/internal/logging"
	"github.com/conneroisu/viewforge/internal/registry"
)

// app is the wiring shared by every command: a sealed registry holding the
// stock builders, an engine configured from the config file, and the
// resource table.
type app struct {
	config    *config.Config
	logger    logging.Logger
	registry  *registry.Registry
	engine    *engine.Engine
	resources *description.Resources
}

func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.LoadFrom(viper.GetViper())
	if err != nil {
		return nil, err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	lc := cfg.LoggerConfig()
	lc.Output = cmd.ErrOrStderr()
	logger := logging.NewLogger(lc)

	reg, err := newRegistry(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	resources, err := loadResources(cfg.Resources.Path)
	if err != nil {
		return nil, err
	}

	return &app{
		config:   cfg,
		logger:   logger,
		registry: reg,
		engine: engine.New(reg,
			engine.WithLogger(logger),
			engine.WithRememberSymbolic(cfg.Engine.RememberSymbolic),
			engine.WithAbortOnMismatch(cfg.Engine.AbortOnMismatch),
		),
		resources: resources,
	}, nil
}

// newRegistry registers the stock builders, removes the disabled types and
// seals the result. Registration events are logged at debug level.
func newRegistry(ctx context.Context, cfg *config.Config, logger logging.Logger) (*registry.Registry, error) {
	reg := registry.New(registry.WithLogger(logger))
	events := reg.Watch()

	if err := builders.RegisterAll(reg); err != nil {
		return nil, err
	}
	if err := disableTypes(reg, cfg.Engine.DisabledTypes); err != nil {
		return nil, err
	}
	reg.Seal()

	reg.UnWatch(events)
	for event := range events {
		logger.Debug(ctx, "builder "+event.Type.String(), "tag", event.Tag, "base", event.Builder.BaseTag())
	}

	if err := reg.Validate(); err != nil {
		return nil, err
	}
	return reg, nil
}

// disableTypes unregisters each tag and everything derived from it.
func disableTypes(reg *registry.Registry, tags []string) error {
	for _, disabled := range tags {
		if _, ok := reg.Lookup(disabled); !ok {
			return verrors.NewConfigError(verrors.ErrCodeConfigInvalid,
				fmt.Sprintf("engine.disabled_types: unknown type %q", disabled))
		}
		for _, tag := range reg.Tags(disabled) {
			if _, err := reg.Unregister(tag); err != nil {
				return err
			}
		}
	}
	return nil
}

func loadResources(path string) (*description.Resources, error) {
	if path == "" {
		return description.NewResources(), nil
	}
	return description.LoadFile(path)
}
