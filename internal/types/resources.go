package types

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an 8-bit RGBA color.
type Color struct {
	R uint8
	G uint8
	B uint8
	A uint8
}

// Transparent is the fully transparent color an empty color attribute maps to.
var Transparent = Color{}

// ParseHexColor parses "#rrggbbaa" or "#rrggbb" (opaque).
func ParseHexColor(s string) (Color, bool) {
	if !strings.HasPrefix(s, "#") {
		return Color{}, false
	}
	hex := s[1:]
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, false
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return Color{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, true
}

// Hex formats the color as "#rrggbbaa".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// Font describes a platform font by family, size and style.
type Font struct {
	Family string
	Size   float64
	Bold   bool
	Italic bool
}

// Bitmap is a decoded image resource. Decoding is owned by the drawing
// backend; only identity and geometry matter here.
type Bitmap struct {
	Path   string
	Width  float64
	Height float64
}

// ColorStop is a single stop in a gradient.
type ColorStop struct {
	Offset float64
	Color  Color
}

// Gradient is an ordered list of color stops.
type Gradient struct {
	Stops []ColorStop
}

// NewTwoStopGradient creates a gradient between two colors.
func NewTwoStopGradient(startOffset, endOffset float64, start, end Color) *Gradient {
	return &Gradient{Stops: []ColorStop{
		{Offset: startOffset, Color: start},
		{Offset: endOffset, Color: end},
	}}
}

// Equal reports whether two gradients have identical stops.
func (g *Gradient) Equal(other *Gradient) bool {
	if g == nil || other == nil {
		return g == other
	}
	if len(g.Stops) != len(other.Stops) {
		return false
	}
	for i := range g.Stops {
		if g.Stops[i] != other.Stops[i] {
			return false
		}
	}
	return true
}

// Listener receives value changes from controls bound to a control tag.
type Listener interface {
	ValueChanged(tag int32, value float64)
}
