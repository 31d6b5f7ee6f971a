package types

// AttrType classifies an attribute for editing tools.
type AttrType int

const (
	AttrUnknown AttrType = iota
	AttrBool
	AttrInt
	AttrFloat
	AttrString
	AttrColor
	AttrFont
	AttrBitmap
	AttrPoint
	AttrRect
	AttrTag
	AttrList
	AttrGradient
)

// String returns the string representation of the attribute type
func (t AttrType) String() string {
	switch t {
	case AttrBool:
		return "bool"
	case AttrInt:
		return "int"
	case AttrFloat:
		return "float"
	case AttrString:
		return "string"
	case AttrColor:
		return "color"
	case AttrFont:
		return "font"
	case AttrBitmap:
		return "bitmap"
	case AttrPoint:
		return "point"
	case AttrRect:
		return "rect"
	case AttrTag:
		return "tag"
	case AttrList:
		return "list"
	case AttrGradient:
		return "gradient"
	default:
		return "unknown"
	}
}

// IsSymbolic reports whether values of this type are usually symbolic names
// resolved through a resource description.
func (t AttrType) IsSymbolic() bool {
	switch t {
	case AttrColor, AttrFont, AttrTag, AttrGradient:
		return true
	default:
		return false
	}
}

// MarshalText renders the type name in JSON and YAML output.
func (t AttrType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// ParseAttrType is the inverse of String. Unrecognized names are AttrUnknown.
func ParseAttrType(s string) AttrType {
	for t := AttrBool; t <= AttrGradient; t++ {
		if t.String() == s {
			return t
		}
	}
	return AttrUnknown
}

// UnmarshalText accepts the names produced by MarshalText.
func (t *AttrType) UnmarshalText(text []byte) error {
	*t = ParseAttrType(string(text))
	return nil
}
