// Package description defines the resource-resolution boundary builders use
// to turn symbolic attribute text into concrete resources, and to turn
// resources back into names when an object is described.
//
// A Description is shared and mutable: builders may register synthesized
// gradients into it while applying attributes. It provides no locking;
// callers that build concurrently must serialize access themselves.
package description

import (
	"strconv"

	"github.com/conneroisu/viewforge/internal/types"
)

// NoTag is returned by ControlTag for names that do not resolve.
const NoTag int32 = -1

// Description resolves symbolic names to resources and back.
type Description interface {
	Color(name string) (types.Color, bool)
	Font(name string) (*types.Font, bool)
	Bitmap(name string) (*types.Bitmap, bool)
	Gradient(name string) (*types.Gradient, bool)

	// RegisterGradient adds or replaces a named gradient.
	RegisterGradient(name string, g *types.Gradient)

	ColorName(c types.Color) (string, bool)
	FontName(f *types.Font) (string, bool)
	BitmapName(b *types.Bitmap) (string, bool)
	GradientName(g *types.Gradient) (string, bool)

	// ControlTag resolves a tag name, or returns NoTag.
	ControlTag(name string) int32
	ControlTagName(tag int32) (string, bool)
	// Listener returns the listener bound to a tag name, or nil.
	Listener(name string) types.Listener
}

// VariableResolver is implemented by descriptions that define named
// variables usable in place of attribute text.
type VariableResolver interface {
	Variable(name string) (string, bool)
}

// UniqueGradientName returns base if no gradient of that name exists,
// otherwise the first of "base 2", "base 3", ... that is unused.
func UniqueGradientName(desc Description, base string) string {
	name := base
	for i := 2; ; i++ {
		if _, exists := desc.Gradient(name); !exists {
			return name
		}
		name = base + " " + strconv.Itoa(i)
	}
}

// AddGradient registers g under a unique name derived from base unless an
// equal gradient is already registered. It returns the name g is known by
// and the registered instance.
func AddGradient(desc Description, g *types.Gradient, base string) (string, *types.Gradient) {
	if name, ok := desc.GradientName(g); ok {
		if existing, ok := desc.Gradient(name); ok {
			return name, existing
		}
	}
	name := UniqueGradientName(desc, base)
	desc.RegisterGradient(name, g)
	return name, g
}
