package attributes

import (
	"math"
	"strconv"
	"strings"

	"github.com/conneroisu/viewforge/internal/types"
)

const (
	True  = "true"
	False = "false"
)

// ParseBool accepts only the case-sensitive literals "true" and "false".
func ParseBool(s string) (bool, bool) {
	switch s {
	case True:
		return true, true
	case False:
		return false, true
	default:
		return false, false
	}
}

// FormatBool renders a boolean attribute.
func FormatBool(b bool) string {
	if b {
		return True
	}
	return False
}

// ParseDouble parses a finite decimal number, ignoring surrounding spaces.
func ParseDouble(s string) (float64, bool) {
	d, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(d) || math.IsInf(d, 0) {
		return 0, false
	}
	return d, true
}

// FormatDouble renders the shortest text that parses back to d.
func FormatDouble(d float64) string {
	return strconv.FormatFloat(d, 'g', -1, 64)
}

// FormatDoublePrecision renders d rounded to at most digits fractional digits.
func FormatDoublePrecision(d float64, digits int) string {
	s := strconv.FormatFloat(d, 'f', digits, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

// ParseInt parses a base-10 32-bit integer, ignoring surrounding spaces.
func ParseInt(s string) (int32, bool) {
	i, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(i), true
}

// FormatInt renders an integer attribute.
func FormatInt(i int32) string {
	return strconv.FormatInt(int64(i), 10)
}

// ParsePoint parses "x, y". Both components may be integers or floats.
func ParsePoint(s string) (types.Point, bool) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return types.Point{}, false
	}
	x, ok := ParseDouble(parts[0])
	if !ok {
		return types.Point{}, false
	}
	y, ok := ParseDouble(parts[1])
	if !ok {
		return types.Point{}, false
	}
	return types.Point{X: x, Y: y}, true
}

// FormatPoint renders "x, y".
func FormatPoint(p types.Point) string {
	return FormatDouble(p.X) + ", " + FormatDouble(p.Y)
}

// ParseRect parses "left,top,right,bottom".
func ParseRect(s string) (types.Rect, bool) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return types.Rect{}, false
	}
	var v [4]float64
	for i, part := range parts {
		d, ok := ParseDouble(part)
		if !ok {
			return types.Rect{}, false
		}
		v[i] = d
	}
	return types.Rect{Left: v[0], Top: v[1], Right: v[2], Bottom: v[3]}, true
}

// FormatRect renders "left,top,right,bottom".
func FormatRect(r types.Rect) string {
	return strings.Join([]string{
		FormatDouble(r.Left),
		FormatDouble(r.Top),
		FormatDouble(r.Right),
		FormatDouble(r.Bottom),
	}, ",")
}

// ParseStringArray splits a comma-joined list. A trailing empty item is
// dropped and the empty string yields no items.
func ParseStringArray(s string) []string {
	if s == "" {
		return []string{}
	}
	items := strings.Split(s, ",")
	if items[len(items)-1] == "" {
		items = items[:len(items)-1]
	}
	return items
}

// FormatStringArray joins values with commas.
func FormatStringArray(values []string) string {
	return strings.Join(values, ",")
}
