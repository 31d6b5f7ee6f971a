// Package attributes implements the sparse, immutable text attribute set used
// both as construction input and as introspection output.
//
// A Set maps attribute names to raw text. Typed accessors parse the text on
// every call and never mutate the set. An accessor that finds the name but
// cannot parse its text reports the attribute as absent: malformed values are
// indistinguishable from missing ones, so stale or newer text never aborts
// construction. Absence always means "leave the current value unchanged".
package attributes

import (
	"sort"

	"github.com/conneroisu/viewforge/internal/types"
)

// Set is an immutable name->text bag. The zero value is an empty set.
type Set struct {
	values map[string]string
}

// New creates a set from a map. The map is copied.
func New(values map[string]string) Set {
	m := make(map[string]string, len(values))
	for k, v := range values {
		m[k] = v
	}
	return Set{values: m}
}

// FromPairs creates a set from alternating name, value arguments. A trailing
// name without a value is ignored.
func FromPairs(pairs ...string) Set {
	m := make(map[string]string, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		m[pairs[i]] = pairs[i+1]
	}
	return Set{values: m}
}

// Empty returns a set with no attributes.
func Empty() Set {
	return Set{}
}

// Len returns the number of attributes.
func (s Set) Len() int {
	return len(s.values)
}

// Get returns the raw text for name.
func (s Set) Get(name string) (string, bool) {
	v, ok := s.values[name]
	return v, ok
}

// Has reports whether name is present.
func (s Set) Has(name string) bool {
	_, ok := s.values[name]
	return ok
}

// Names returns all attribute names in lexicographic order.
func (s Set) Names() []string {
	names := make([]string, 0, len(s.values))
	for name := range s.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Map returns a copy of the underlying values.
func (s Set) Map() map[string]string {
	m := make(map[string]string, len(s.values))
	for k, v := range s.values {
		m[k] = v
	}
	return m
}

// With returns a copy of the set with name set to value.
func (s Set) With(name, value string) Set {
	m := s.Map()
	m[name] = value
	return Set{values: m}
}

// Without returns a copy of the set with name removed.
func (s Set) Without(name string) Set {
	if !s.Has(name) {
		return s
	}
	m := s.Map()
	delete(m, name)
	return Set{values: m}
}

// Merge returns a copy of s overlaid with every entry of other.
func (s Set) Merge(other Set) Set {
	m := s.Map()
	for k, v := range other.values {
		m[k] = v
	}
	return Set{values: m}
}

// Point parses name as "x, y".
func (s Set) Point(name string) (types.Point, bool) {
	v, ok := s.values[name]
	if !ok {
		return types.Point{}, false
	}
	return ParsePoint(v)
}

// Rect parses name as "l,t,r,b".
func (s Set) Rect(name string) (types.Rect, bool) {
	v, ok := s.values[name]
	if !ok {
		return types.Rect{}, false
	}
	return ParseRect(v)
}

// Bool parses name as the literal "true" or "false".
func (s Set) Bool(name string) (bool, bool) {
	v, ok := s.values[name]
	if !ok {
		return false, false
	}
	return ParseBool(v)
}

// Double parses name as a decimal number.
func (s Set) Double(name string) (float64, bool) {
	v, ok := s.values[name]
	if !ok {
		return 0, false
	}
	return ParseDouble(v)
}

// Int parses name as a base-10 32-bit integer.
func (s Set) Int(name string) (int32, bool) {
	v, ok := s.values[name]
	if !ok {
		return 0, false
	}
	return ParseInt(v)
}

// StringArray splits name on commas.
func (s Set) StringArray(name string) ([]string, bool) {
	v, ok := s.values[name]
	if !ok {
		return nil, false
	}
	return ParseStringArray(v), true
}
