package description

import (
	"sort"

	"github.com/conneroisu/viewforge/internal/types"
)

// Resources is an in-memory Description backed by name tables.
// Reverse lookups pick the lexicographically smallest name when several
// names map to the same resource.
type Resources struct {
	colors    map[string]types.Color
	fonts     map[string]*types.Font
	bitmaps   map[string]*types.Bitmap
	gradients map[string]*types.Gradient
	tags      map[string]int32
	listeners map[string]types.Listener
	variables map[string]string
}

// NewResources creates an empty resource table.
func NewResources() *Resources {
	return &Resources{
		colors:    make(map[string]types.Color),
		fonts:     make(map[string]*types.Font),
		bitmaps:   make(map[string]*types.Bitmap),
		gradients: make(map[string]*types.Gradient),
		tags:      make(map[string]int32),
		listeners: make(map[string]types.Listener),
		variables: make(map[string]string),
	}
}

// SetColor adds or replaces a named color.
func (r *Resources) SetColor(name string, c types.Color) { r.colors[name] = c }

// SetFont adds or replaces a named font.
func (r *Resources) SetFont(name string, f *types.Font) { r.fonts[name] = f }

// SetBitmap adds or replaces a named bitmap.
func (r *Resources) SetBitmap(name string, b *types.Bitmap) { r.bitmaps[name] = b }

// SetControlTag adds or replaces a named control tag.
func (r *Resources) SetControlTag(name string, tag int32) { r.tags[name] = tag }

// SetListener binds a listener to a control tag name.
func (r *Resources) SetListener(name string, l types.Listener) { r.listeners[name] = l }

// SetVariable adds or replaces a named variable.
func (r *Resources) SetVariable(name, value string) { r.variables[name] = value }

// Color implements Description. Hex literals resolve without a table entry.
func (r *Resources) Color(name string) (types.Color, bool) {
	if c, ok := r.colors[name]; ok {
		return c, true
	}
	return types.ParseHexColor(name)
}

// Font implements Description.
func (r *Resources) Font(name string) (*types.Font, bool) {
	f, ok := r.fonts[name]
	return f, ok
}

// Bitmap implements Description.
func (r *Resources) Bitmap(name string) (*types.Bitmap, bool) {
	b, ok := r.bitmaps[name]
	return b, ok
}

// Gradient implements Description.
func (r *Resources) Gradient(name string) (*types.Gradient, bool) {
	g, ok := r.gradients[name]
	return g, ok
}

// RegisterGradient implements Description.
func (r *Resources) RegisterGradient(name string, g *types.Gradient) {
	r.gradients[name] = g
}

// ColorName implements Description.
func (r *Resources) ColorName(c types.Color) (string, bool) {
	return firstName(r.colors, func(v types.Color) bool { return v == c })
}

// FontName implements Description.
func (r *Resources) FontName(f *types.Font) (string, bool) {
	if f == nil {
		return "", false
	}
	return firstName(r.fonts, func(v *types.Font) bool { return v == f || *v == *f })
}

// BitmapName implements Description.
func (r *Resources) BitmapName(b *types.Bitmap) (string, bool) {
	if b == nil {
		return "", false
	}
	return firstName(r.bitmaps, func(v *types.Bitmap) bool { return v == b })
}

// GradientName implements Description. Gradients match structurally, so a
// migrated gradient equal to a registered one resolves to its name.
func (r *Resources) GradientName(g *types.Gradient) (string, bool) {
	if g == nil {
		return "", false
	}
	return firstName(r.gradients, func(v *types.Gradient) bool { return v.Equal(g) })
}

// ControlTag implements Description.
func (r *Resources) ControlTag(name string) int32 {
	if tag, ok := r.tags[name]; ok {
		return tag
	}
	return NoTag
}

// ControlTagName implements Description.
func (r *Resources) ControlTagName(tag int32) (string, bool) {
	return firstName(r.tags, func(v int32) bool { return v == tag })
}

// Listener implements Description.
func (r *Resources) Listener(name string) types.Listener {
	return r.listeners[name]
}

// Variable implements VariableResolver.
func (r *Resources) Variable(name string) (string, bool) {
	v, ok := r.variables[name]
	return v, ok
}

// GradientNames returns every gradient name in order.
func (r *Resources) GradientNames() []string {
	return sortedKeys(r.gradients)
}

func firstName[V any](m map[string]V, match func(V) bool) (string, bool) {
	for _, name := range sortedKeys(m) {
		if match(m[name]) {
			return name, true
		}
	}
	return "", false
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
