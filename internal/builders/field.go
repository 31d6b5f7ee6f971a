package builders

import (
	"math"

	"github.com/conneroisu/viewforge/internal/attributes"
	"github.com/conneroisu/viewforge/internal/description"
	"github.com/conneroisu/viewforge/internal/types"
)

// field binds one attribute name to a piece of state reachable from T.
// apply only runs when the attribute is present; it leaves the state alone
// when the text does not parse.
type field[T any] struct {
	name   string
	typ    types.AttrType
	apply  func(t T, text string, desc description.Description)
	read   func(t T, desc description.Description) (string, bool)
	values []string
	ranged bool
	lo, hi float64
}

func boolField[T any](name string, ptr func(T) *bool) field[T] {
	return field[T]{
		name: name,
		typ:  types.AttrBool,
		apply: func(t T, text string, _ description.Description) {
			if b, ok := attributes.ParseBool(text); ok {
				*ptr(t) = b
			}
		},
		read: func(t T, _ description.Description) (string, bool) {
			return attributes.FormatBool(*ptr(t)), true
		},
	}
}

func floatField[T any](name string, ptr func(T) *float64) field[T] {
	return field[T]{
		name: name,
		typ:  types.AttrFloat,
		apply: func(t T, text string, _ description.Description) {
			if d, ok := attributes.ParseDouble(text); ok {
				*ptr(t) = d
			}
		},
		read: func(t T, _ description.Description) (string, bool) {
			return attributes.FormatDouble(*ptr(t)), true
		},
	}
}

// rangedField clamps parsed values into [lo, hi].
func rangedField[T any](name string, lo, hi float64, ptr func(T) *float64) field[T] {
	f := floatField(name, ptr)
	f.apply = func(t T, text string, _ description.Description) {
		if d, ok := attributes.ParseDouble(text); ok {
			*ptr(t) = clamp(d, lo, hi)
		}
	}
	f.ranged, f.lo, f.hi = true, lo, hi
	return f
}

// angleField stores degrees from [0, 360] as radians and reads them back
// rounded to five fractional digits.
func angleField[T any](name string, ptr func(T) *float64) field[T] {
	return field[T]{
		name: name,
		typ:  types.AttrFloat,
		apply: func(t T, text string, _ description.Description) {
			if d, ok := attributes.ParseDouble(text); ok {
				*ptr(t) = clamp(d, 0, 360) * math.Pi / 180
			}
		},
		read: func(t T, _ description.Description) (string, bool) {
			return attributes.FormatDoublePrecision(*ptr(t)*180/math.Pi, 5), true
		},
		ranged: true,
		lo:     0,
		hi:     360,
	}
}

func intField[T any](name string, ptr func(T) *int32) field[T] {
	return field[T]{
		name: name,
		typ:  types.AttrInt,
		apply: func(t T, text string, _ description.Description) {
			if i, ok := attributes.ParseInt(text); ok {
				*ptr(t) = i
			}
		},
		read: func(t T, _ description.Description) (string, bool) {
			return attributes.FormatInt(*ptr(t)), true
		},
	}
}

func stringField[T any](name string, ptr func(T) *string) field[T] {
	return field[T]{
		name: name,
		typ:  types.AttrString,
		apply: func(t T, text string, _ description.Description) {
			*ptr(t) = text
		},
		read: func(t T, _ description.Description) (string, bool) {
			return *ptr(t), true
		},
	}
}

func stringArrayField[T any](name string, ptr func(T) *[]string) field[T] {
	return field[T]{
		name: name,
		typ:  types.AttrString,
		apply: func(t T, text string, _ description.Description) {
			*ptr(t) = attributes.ParseStringArray(text)
		},
		read: func(t T, _ description.Description) (string, bool) {
			return attributes.FormatStringArray(*ptr(t)), true
		},
	}
}

func pointField[T any](name string, ptr func(T) *types.Point) field[T] {
	return field[T]{
		name: name,
		typ:  types.AttrPoint,
		apply: func(t T, text string, _ description.Description) {
			if p, ok := attributes.ParsePoint(text); ok {
				*ptr(t) = p
			}
		},
		read: func(t T, _ description.Description) (string, bool) {
			return attributes.FormatPoint(*ptr(t)), true
		},
	}
}

func listField[T any, E ~string](name string, values []string, ptr func(T) *E) field[T] {
	return field[T]{
		name:   name,
		typ:    types.AttrList,
		values: values,
		apply: func(t T, text string, _ description.Description) {
			for _, v := range values {
				if v == text {
					*ptr(t) = E(text)
					return
				}
			}
		},
		read: func(t T, _ description.Description) (string, bool) {
			return string(*ptr(t)), true
		},
	}
}

func colorField[T any](name string, ptr func(T) *types.Color) field[T] {
	return field[T]{
		name: name,
		typ:  types.AttrColor,
		apply: func(t T, text string, desc description.Description) {
			if c, ok := resolveColor(text, desc); ok {
				*ptr(t) = c
			}
		},
		read: func(t T, desc description.Description) (string, bool) {
			return colorText(*ptr(t), desc), true
		},
	}
}

func fontField[T any](name string, ptr func(T) **types.Font) field[T] {
	return field[T]{
		name: name,
		typ:  types.AttrFont,
		apply: func(t T, text string, desc description.Description) {
			if f, ok := desc.Font(text); ok {
				*ptr(t) = f
			}
		},
		read: func(t T, desc description.Description) (string, bool) {
			f := *ptr(t)
			if f == nil {
				return "", false
			}
			return desc.FontName(f)
		},
	}
}

// bitmapField treats the empty string as "no bitmap".
func bitmapField[T any](name string, ptr func(T) **types.Bitmap) field[T] {
	return field[T]{
		name: name,
		typ:  types.AttrBitmap,
		apply: func(t T, text string, desc description.Description) {
			if text == "" {
				*ptr(t) = nil
				return
			}
			if b, ok := desc.Bitmap(text); ok {
				*ptr(t) = b
			}
		},
		read: func(t T, desc description.Description) (string, bool) {
			b := *ptr(t)
			if b == nil {
				return "", true
			}
			return desc.BitmapName(b)
		},
	}
}

func gradientField[T any](name string, ptr func(T) **types.Gradient) field[T] {
	return field[T]{
		name: name,
		typ:  types.AttrGradient,
		apply: func(t T, text string, desc description.Description) {
			if g, ok := desc.Gradient(text); ok {
				*ptr(t) = g
			}
		},
		read: func(t T, desc description.Description) (string, bool) {
			g := *ptr(t)
			if g == nil {
				return "", false
			}
			return desc.GradientName(g)
		},
	}
}

// resolveColor accepts a color name, a hex literal, or "" for transparent.
func resolveColor(text string, desc description.Description) (types.Color, bool) {
	if text == "" {
		return types.Transparent, true
	}
	if c, ok := desc.Color(text); ok {
		return c, true
	}
	return types.ParseHexColor(text)
}

func colorText(c types.Color, desc description.Description) string {
	if name, ok := desc.ColorName(c); ok {
		return name
	}
	return c.Hex()
}

func clamp(d, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, d))
}
