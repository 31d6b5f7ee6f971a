package builders

import (
	"github.com/conneroisu/viewforge/internal/attributes"
	"github.com/conneroisu/viewforge/internal/description"
	"github.com/conneroisu/viewforge/internal/types"
	"github.com/conneroisu/viewforge/internal/view"
)

// kind is a table-driven builder. T is the state the builder configures,
// reached from an object through narrow.
type kind[T any] struct {
	tag, base, display string

	create   func() view.View
	narrow   func(view.View) (T, bool)
	fields   []field[T]
	index    map[string]int
	consumed []string
	finish   func(t T, attrs attributes.Set, desc description.Description)
}

func define[T any](
	tag, base, display string,
	create func() view.View,
	narrow func(view.View) (T, bool),
	fields ...field[T],
) *kind[T] {
	k := &kind[T]{
		tag:     tag,
		base:    base,
		display: display,
		create:  create,
		narrow:  narrow,
		fields:  fields,
		index:   make(map[string]int, len(fields)),
	}
	for i, f := range fields {
		k.index[f.name] = i
	}
	return k
}

// consumes declares legacy names read by finish.
func (k *kind[T]) consumes(names ...string) *kind[T] {
	k.consumed = append(k.consumed, names...)
	return k
}

// then runs fn after every field has been applied.
func (k *kind[T]) then(fn func(t T, attrs attributes.Set, desc description.Description)) *kind[T] {
	k.finish = fn
	return k
}

func (k *kind[T]) TypeTag() string     { return k.tag }
func (k *kind[T]) BaseTag() string     { return k.base }
func (k *kind[T]) DisplayName() string { return k.display }

func (k *kind[T]) Instantiate(attributes.Set, description.Description) view.View {
	if k.create == nil {
		return nil
	}
	return k.create()
}

func (k *kind[T]) Apply(v view.View, attrs attributes.Set, desc description.Description) bool {
	if v == nil {
		return false
	}
	t, ok := k.narrow(v)
	if !ok {
		return false
	}
	for _, f := range k.fields {
		if text, present := attrs.Get(f.name); present {
			f.apply(t, text, desc)
		}
	}
	if k.finish != nil {
		k.finish(t, attrs, desc)
	}
	return true
}

func (k *kind[T]) AttributeNames() []string {
	names := make([]string, len(k.fields))
	for i, f := range k.fields {
		names[i] = f.name
	}
	return names
}

func (k *kind[T]) AttributeType(name string) types.AttrType {
	if i, ok := k.index[name]; ok {
		return k.fields[i].typ
	}
	return types.AttrUnknown
}

func (k *kind[T]) ReadAttribute(v view.View, name string, desc description.Description) (string, bool) {
	i, ok := k.index[name]
	if !ok || v == nil {
		return "", false
	}
	t, ok := k.narrow(v)
	if !ok {
		return "", false
	}
	return k.fields[i].read(t, desc)
}

func (k *kind[T]) AllowedValues(name string) []string {
	if i, ok := k.index[name]; ok && len(k.fields[i].values) > 0 {
		out := make([]string, len(k.fields[i].values))
		copy(out, k.fields[i].values)
		return out
	}
	return nil
}

func (k *kind[T]) ValueRange(name string) (float64, float64, bool) {
	if i, ok := k.index[name]; ok && k.fields[i].ranged {
		return k.fields[i].lo, k.fields[i].hi, true
	}
	return 0, 0, false
}

func (k *kind[T]) ConsumedAttributeNames() []string {
	out := make([]string, len(k.consumed))
	copy(out, k.consumed)
	return out
}
