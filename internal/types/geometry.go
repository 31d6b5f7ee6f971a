// Package types provides the value types shared by the attribute codec, the
// resource description and the view model. It sits at the bottom of the
// import graph to avoid circular dependencies between packages.
package types

// Point is a 2D coordinate or extent.
type Point struct {
	X float64
	Y float64
}

// Rect is an axis-aligned rectangle in left/top/right/bottom form.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// RectFromOriginSize creates a rect positioned at origin with the given size.
func RectFromOriginSize(origin, size Point) Rect {
	return Rect{
		Left:   origin.X,
		Top:    origin.Y,
		Right:  origin.X + size.X,
		Bottom: origin.Y + size.Y,
	}
}

// Origin returns the top-left corner.
func (r Rect) Origin() Point {
	return Point{X: r.Left, Y: r.Top}
}

// Size returns the width and height as a point.
func (r Rect) Size() Point {
	return Point{X: r.Width(), Y: r.Height()}
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the vertical extent.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}
