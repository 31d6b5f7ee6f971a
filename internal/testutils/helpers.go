// Package testutils holds fixtures shared by the package tests: an engine
// over the stock builders, a small resource table and temp files.
package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/conneroisu/viewforge/internal/builders"
	"github.com/conneroisu/viewforge/internal/description"
	"github.com/conneroisu/viewforge/internal/engine"
	"github.com/conneroisu/viewforge/internal/registry"
	"github.com/conneroisu/viewforge/internal/types"
)

// Colors in the table returned by NewResources.
var (
	PanelColor  = types.Color{R: 0x20, G: 0x20, B: 0x20, A: 0xff}
	AccentColor = types.Color{R: 0xff, G: 0x88, B: 0x00, A: 0xff}
)

// GainTag is the control tag bound to the name "Gain".
const GainTag int32 = 1

// NewRegistry returns a sealed registry holding every stock builder.
func NewRegistry(t testing.TB) *registry.Registry {
	t.Helper()
	reg := registry.New()
	require.NoError(t, builders.RegisterAll(reg))
	reg.Seal()
	require.NoError(t, reg.Validate())
	return reg
}

// NewEngine returns an engine over NewRegistry.
func NewEngine(t testing.TB, opts ...engine.Option) *engine.Engine {
	t.Helper()
	return engine.New(NewRegistry(t), opts...)
}

// NewResources returns a resource table with the colors "panel" and
// "accent", the control tag "Gain" and the variable "margin".
func NewResources() *description.Resources {
	res := description.NewResources()
	res.SetColor("panel", PanelColor)
	res.SetColor("accent", AccentColor)
	res.SetControlTag("Gain", GainTag)
	res.SetVariable("margin", "10, 10")
	return res
}

// WriteFile writes content to name inside dir and returns the path. An
// empty dir means a fresh temp directory.
func WriteFile(t testing.TB, dir, name, content string) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
