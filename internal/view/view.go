// Package view defines the objects builders construct. Every object embeds
// Base, which carries the type tag it was built from and two side stores:
// extras (attributes no builder recognized) and remembered symbolic text.
//
// Builders narrow a View to the state they configure through the capability
// interfaces in this package (ControlView, KnobView, ...) instead of relying
// on the concrete type, so application-defined types that embed a known kind
// are configured by that kind's builders.
package view

import (
	"github.com/conneroisu/viewforge/internal/attrstore"
	"github.com/conneroisu/viewforge/internal/types"
)

// View is implemented by every constructed object.
type View interface {
	ViewBase() *Base
}

// Base is the state shared by every view kind.
type Base struct {
	Frame              types.Rect
	Opacity            float64
	Transparent        bool
	MouseEnabled       bool
	WantsFocus         bool
	Background         *types.Bitmap
	DisabledBackground *types.Bitmap
	Autosize           Autosize
	Tooltip            string
	CustomViewName     string
	SubController      string
	Label              string

	class      string
	extras     attrstore.Store
	remembered attrstore.Store
	resolved   attrstore.Store
}

// NewBase creates base state with the given frame and default flags.
func NewBase(frame types.Rect) Base {
	return Base{
		Frame:        frame,
		Opacity:      1,
		MouseEnabled: true,
	}
}

// ViewBase implements View.
func (b *Base) ViewBase() *Base { return b }

// Class returns the type tag the object was built from, or "".
func (b *Base) Class() string { return b.class }

// SetClass records the type tag. The construction engine calls this.
func (b *Base) SetClass(tag string) { b.class = tag }

// Extras holds attributes no builder in the object's chain recognized.
func (b *Base) Extras() *attrstore.Store { return &b.extras }

// Remembered holds the verbatim text of symbolic attributes.
func (b *Base) Remembered() *attrstore.Store { return &b.remembered }

// Remember records text as the source of an attribute whose canonical
// rendering right after it was applied is resolved.
func (b *Base) Remember(name, text, resolved string) {
	b.remembered.Set(name, text)
	b.resolved.Set(name, resolved)
}

// RememberedText returns the remembered source text of name as long as the
// attribute still renders as current. A changed value invalidates it.
func (b *Base) RememberedText(name, current string) (string, bool) {
	text, ok := b.remembered.Get(name)
	if !ok {
		return "", false
	}
	if resolved, _ := b.resolved.Get(name); resolved != current {
		return "", false
	}
	return text, true
}

// Forget drops the remembered text of name.
func (b *Base) Forget(name string) {
	b.remembered.Delete(name)
	b.resolved.Delete(name)
}

// Container is a view that holds child views.
type Container struct {
	Base
	BackgroundColor types.Color
	DrawStyle       DrawStyle

	children []View
}

// NewContainer creates an empty container.
func NewContainer() *Container {
	return &Container{
		Base:      NewBase(types.Rect{Right: 100, Bottom: 100}),
		DrawStyle: DrawStyleFilled,
	}
}

// ContainerState implements ContainerView.
func (c *Container) ContainerState() *Container { return c }

// AddChild appends a child view.
func (c *Container) AddChild(v View) { c.children = append(c.children, v) }

// Children returns the child views in insertion order.
func (c *Container) Children() []View {
	out := make([]View, len(c.children))
	copy(out, c.children)
	return out
}

// ReplaceChild swaps the child at index i.
func (c *Container) ReplaceChild(i int, v View) {
	if i >= 0 && i < len(c.children) {
		c.children[i] = v
	}
}

// TruncateChildren drops every child from index n on.
func (c *Container) TruncateChildren(n int) {
	if n >= 0 && n < len(c.children) {
		c.children = c.children[:n]
	}
}

// ContainerView is implemented by views that hold children.
type ContainerView interface {
	View
	ContainerState() *Container
}

// GradientView fills its frame with a gradient.
type GradientView struct {
	Base
	Style           GradientStyle
	Gradient        *types.Gradient
	Angle           float64
	RadialCenter    types.Point
	RadialRadius    float64
	FrameColor      types.Color
	RoundRectRadius float64
	FrameWidth      float64
	Antialiased     bool
}

// NewGradientView creates a gradient view with linear defaults.
func NewGradientView() *GradientView {
	return &GradientView{
		Base:            NewBase(types.Rect{Right: 100, Bottom: 100}),
		Style:           GradientLinear,
		RadialCenter:    types.Point{X: 0.5, Y: 0.5},
		RadialRadius:    1,
		RoundRectRadius: 5,
		FrameWidth:      1,
		Antialiased:     true,
	}
}

// GradientState implements GradientViewer.
func (g *GradientView) GradientState() *GradientView { return g }

// GradientViewer is implemented by gradient views.
type GradientViewer interface {
	View
	GradientState() *GradientView
}
