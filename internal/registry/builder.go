// Package registry maps type tags to builders and resolves the inheritance
// chain of a tag from its root ancestor down to the tag itself.
package registry

import (
	"github.com/conneroisu/viewforge/internal/attributes"
	"github.com/conneroisu/viewforge/internal/description"
	"github.com/conneroisu/viewforge/internal/types"
	"github.com/conneroisu/viewforge/internal/view"
)

// Builder knows one type tag: how to instantiate it, which attributes it
// owns, and how to move those attributes into and out of an object.
//
// Apply and ReadAttribute see only the attributes the builder itself
// declares; inherited attributes belong to the ancestor builders.
type Builder interface {
	// TypeTag is the unique tag this builder handles.
	TypeTag() string
	// BaseTag is the parent tag, or "" for a root builder.
	BaseTag() string
	// DisplayName is a human-readable name for tools.
	DisplayName() string

	// Instantiate creates a fresh object with default state, or nil.
	Instantiate(attrs attributes.Set, desc description.Description) view.View
	// Apply configures every declared attribute present in attrs. It returns
	// false if the object is not of the builder's kind.
	Apply(v view.View, attrs attributes.Set, desc description.Description) bool

	// AttributeNames lists the declared attributes in declaration order.
	AttributeNames() []string
	// AttributeType reports the type of a declared attribute.
	AttributeType(name string) types.AttrType
	// ReadAttribute renders the current value of a declared attribute.
	ReadAttribute(v view.View, name string, desc description.Description) (string, bool)
}

// ValueLister is implemented by builders that restrict some attributes to a
// fixed set of words.
type ValueLister interface {
	AllowedValues(name string) []string
}

// RangeProvider is implemented by builders that bound numeric attributes.
type RangeProvider interface {
	ValueRange(name string) (lo, hi float64, ok bool)
}

// LegacyConsumer is implemented by builders that accept obsolete attribute
// names. Consumed names are read during Apply but never described, never
// listed in a catalog and never stored as unknown.
type LegacyConsumer interface {
	ConsumedAttributeNames() []string
}
