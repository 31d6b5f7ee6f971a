package engine

import (
	"context"

	"github.com/conneroisu/viewforge/internal/attributes"
	"github.com/conneroisu/viewforge/internal/description"
	verrors "github.com/conneroisu/viewforge/internal/errors"
	"github.com/conneroisu/viewforge/internal/registry"
	"github.com/conneroisu/viewforge/internal/types"
	"github.com/conneroisu/viewforge/internal/view"
)

// Describe reads the current state of v back as text using the chain of tag.
// Every declared attribute that renders a value is included, followed by the
// attributes kept on the object because no builder declared them, and the
// object's class.
func (e *Engine) Describe(ctx context.Context, v view.View, tag string, desc description.Description) (attributes.Set, error) {
	if v == nil || v.ViewBase() == nil {
		return attributes.Empty(), verrors.NewInternalError(verrors.ErrCodeNilObject, "cannot describe a nil object", nil).WithClass(tag)
	}
	desc = orEmpty(desc)

	chain, err := e.chain(ctx, tag)
	if err != nil {
		return attributes.Empty(), err
	}

	base := v.ViewBase()
	out := make(map[string]string)
	for i := len(chain) - 1; i >= 0; i-- {
		b := chain[i]
		for _, name := range b.AttributeNames() {
			if _, done := out[name]; done {
				continue
			}
			text, ok := b.ReadAttribute(v, name, desc)
			if !ok {
				continue
			}
			if e.rememberSymbolic {
				if remembered, ok := base.RememberedText(name, text); ok {
					text = remembered
				}
			}
			out[name] = text
		}
	}
	for _, r := range base.Extras().Records() {
		if _, taken := out[r.Name]; !taken {
			out[r.Name] = r.Value
		}
	}

	class := base.Class()
	if class == "" {
		class = tag
	}
	out[ClassAttribute] = class
	return attributes.New(out), nil
}

// DescribeView describes v using the tag it was built from.
func (e *Engine) DescribeView(ctx context.Context, v view.View, desc description.Description) (attributes.Set, error) {
	if v == nil || v.ViewBase() == nil {
		return attributes.Empty(), verrors.NewInternalError(verrors.ErrCodeNilObject, "cannot describe a nil object", nil)
	}
	tag := v.ViewBase().Class()
	if tag == "" {
		return attributes.Empty(), verrors.NewValidationError(verrors.ErrCodeValidation, "object has no recorded class")
	}
	return e.Describe(ctx, v, tag, desc)
}

// AttributeInfo describes one attribute in a catalog.
type AttributeInfo struct {
	Name     string         `json:"name" yaml:"name"`
	Type     types.AttrType `json:"type" yaml:"type"`
	Owner    string         `json:"owner" yaml:"owner"`
	Values   []string       `json:"values,omitempty" yaml:"values,omitempty"`
	HasRange bool           `json:"has_range,omitempty" yaml:"has_range,omitempty"`
	Min      float64        `json:"min,omitempty" yaml:"min,omitempty"`
	Max      float64        `json:"max,omitempty" yaml:"max,omitempty"`
}

// Catalog is the union of the attributes declared along a chain, in
// declaration order from the root down.
type Catalog struct {
	Tag        string          `json:"tag" yaml:"tag"`
	Attributes []AttributeInfo `json:"attributes" yaml:"attributes"`
}

// Lookup finds an attribute by name.
func (c Catalog) Lookup(name string) (AttributeInfo, bool) {
	for _, info := range c.Attributes {
		if info.Name == name {
			return info, true
		}
	}
	return AttributeInfo{}, false
}

// Names returns the attribute names in catalog order.
func (c Catalog) Names() []string {
	names := make([]string, len(c.Attributes))
	for i, info := range c.Attributes {
		names[i] = info.Name
	}
	return names
}

// AttributeCatalog lists every attribute an object of kind tag accepts. If a
// name were declared at two levels, the more derived declaration wins.
func (e *Engine) AttributeCatalog(tag string) (Catalog, error) {
	chain, err := e.registry.Chain(tag)
	if err != nil {
		return Catalog{}, err
	}

	catalog := Catalog{Tag: tag}
	index := make(map[string]int)
	for _, b := range chain {
		for _, name := range b.AttributeNames() {
			info := attributeInfo(b, name)
			if i, seen := index[name]; seen {
				catalog.Attributes[i] = info
				continue
			}
			index[name] = len(catalog.Attributes)
			catalog.Attributes = append(catalog.Attributes, info)
		}
	}
	return catalog, nil
}

func attributeInfo(b registry.Builder, name string) AttributeInfo {
	info := AttributeInfo{
		Name:  name,
		Type:  b.AttributeType(name),
		Owner: b.TypeTag(),
	}
	if vl, ok := b.(registry.ValueLister); ok {
		info.Values = vl.AllowedValues(name)
	}
	if rp, ok := b.(registry.RangeProvider); ok {
		info.Min, info.Max, info.HasRange = rp.ValueRange(name)
	}
	return info
}
