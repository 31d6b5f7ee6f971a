// Package engine drives construction and introspection of views through the
// builder chains held in a registry.
//
// Build instantiates the leaf of a chain and applies every builder from the
// root down to the leaf. Attributes no builder in the chain declares are kept
// verbatim on the object and reproduced by Describe, so a build followed by a
// describe never drops text the current builders do not understand.
package engine

import (
	"context"

	"github.com/conneroisu/viewforge/internal/attributes"
	"github.com/conneroisu/viewforge/internal/description"
	verrors "github.com/conneroisu/viewforge/internal/errors"
	"github.com/conneroisu/viewforge/internal/logging"
	"github.com/conneroisu/viewforge/internal/registry"
	"github.com/conneroisu/viewforge/internal/view"
)

// ClassAttribute is the reserved attribute carrying an object's type tag.
// Describe emits it; application ignores it.
const ClassAttribute = "class"

// Engine builds, patches and describes views. It holds no per-object state
// and may be shared by concurrent callers once its registry is sealed, as
// long as they serialize access to any Description they share.
type Engine struct {
	registry         *registry.Registry
	logger           logging.Logger
	rememberSymbolic bool
	abortOnMismatch  bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine logger.
func WithLogger(l logging.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l.WithComponent("engine")
		}
	}
}

// WithRememberSymbolic controls whether symbolic attribute text is kept on
// objects and preferred by Describe. It is on by default.
func WithRememberSymbolic(on bool) Option {
	return func(e *Engine) { e.rememberSymbolic = on }
}

// WithAbortOnMismatch stops applying a chain at the first builder that
// rejects the object. By default the remaining builders still run.
func WithAbortOnMismatch(on bool) Option {
	return func(e *Engine) { e.abortOnMismatch = on }
}

// New creates an engine over reg.
func New(reg *registry.Registry, opts ...Option) *Engine {
	e := &Engine{
		registry:         reg,
		logger:           logging.Nop(),
		rememberSymbolic: true,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Registry returns the registry the engine resolves tags in.
func (e *Engine) Registry() *registry.Registry { return e.registry }

// Build creates a view of kind tag configured from attrs.
//
// An unregistered tag fails with an unknown-type error and no object. When a
// builder in the chain rejects the object, Build still returns the object
// together with a chain-mismatch error; the object is partially configured.
func (e *Engine) Build(ctx context.Context, tag string, attrs attributes.Set, desc description.Description) (view.View, error) {
	desc = orEmpty(desc)

	chain, err := e.chain(ctx, tag)
	if err != nil {
		return nil, err
	}

	evaluated, _ := evaluate(attrs, desc)
	v := chain[len(chain)-1].Instantiate(evaluated, desc)
	if v == nil || v.ViewBase() == nil {
		err := verrors.NewInternalError(verrors.ErrCodeNilObject, "builder produced no object", nil).WithClass(tag)
		e.logger.Error(ctx, err, "instantiate failed", "tag", tag)
		return nil, err
	}
	v.ViewBase().SetClass(tag)

	if rejected := e.applyChain(ctx, v, chain, attrs, desc, true); rejected != "" {
		return v, verrors.NewChainMismatchError(tag, rejected)
	}
	return v, nil
}

// ApplyPatch re-applies attrs to an object built for tag. Attributes absent
// from attrs keep their current values. It reports false if tag does not
// resolve or a builder rejected the object.
func (e *Engine) ApplyPatch(ctx context.Context, v view.View, tag string, attrs attributes.Set, desc description.Description) bool {
	if v == nil || v.ViewBase() == nil {
		return false
	}
	chain, err := e.chain(ctx, tag)
	if err != nil {
		return false
	}
	if v.ViewBase().Class() == "" {
		v.ViewBase().SetClass(tag)
	}
	return e.applyChain(ctx, v, chain, attrs, orEmpty(desc), true) == ""
}

// ApplyFromAncestor configures an object the registry has no builder for,
// using the chain of its nearest registered ancestor. Attributes outside
// that chain are left to the caller and are not kept on the object. An
// object already recorded as a registered type must derive from ancestorTag.
func (e *Engine) ApplyFromAncestor(ctx context.Context, v view.View, ancestorTag string, attrs attributes.Set, desc description.Description) bool {
	if v == nil || v.ViewBase() == nil {
		return false
	}
	chain, err := e.chain(ctx, ancestorTag)
	if err != nil {
		return false
	}
	class := v.ViewBase().Class()
	if _, registered := e.registry.Lookup(class); registered && !e.registry.IsA(class, ancestorTag) {
		e.logger.Warn(ctx, verrors.NewChainError(verrors.ErrCodeNotAncestor, "object does not derive from ancestor").WithClass(class),
			"ancestor type rejected", "class", class, "ancestor", ancestorTag)
		return false
	}
	if class == "" {
		v.ViewBase().SetClass(ancestorTag)
	}
	return e.applyChain(ctx, v, chain, attrs, orEmpty(desc), false) == ""
}

func (e *Engine) chain(ctx context.Context, tag string) ([]registry.Builder, error) {
	chain, err := e.registry.Chain(tag)
	if err == nil {
		return chain, nil
	}
	if verrors.IsUnknownType(err) {
		e.logger.Warn(ctx, err, "unknown view type", "tag", tag)
	} else {
		e.logger.Error(ctx, err, "cannot resolve builder chain", "tag", tag)
	}
	return nil, err
}

// applyChain runs every builder root to leaf and returns the tag of the first
// builder that rejected the object, or "".
func (e *Engine) applyChain(
	ctx context.Context,
	v view.View,
	chain []registry.Builder,
	attrs attributes.Set,
	desc description.Description,
	keepUnknown bool,
) string {
	evaluated, substituted := evaluate(attrs, desc)

	rejected := ""
	applied := make([]registry.Builder, 0, len(chain))
	for _, b := range chain {
		if !b.Apply(v, evaluated, desc) {
			e.logger.Warn(ctx, nil, "builder rejected object",
				"tag", v.ViewBase().Class(), "builder", b.TypeTag())
			if rejected == "" {
				rejected = b.TypeTag()
			}
			if e.abortOnMismatch {
				break
			}
			continue
		}
		applied = append(applied, b)
	}

	if e.rememberSymbolic {
		e.remember(v, applied, attrs, substituted, desc)
	}

	for _, name := range attrs.Names() {
		if consumedBy(chain, name) {
			e.logger.Debug(ctx, "migrated legacy attribute", "tag", v.ViewBase().Class(), "attribute", name)
		}
	}

	claimed := claimedNames(chain)
	if keepUnknown {
		extras := v.ViewBase().Extras()
		for _, name := range attrs.Names() {
			if claimed[name] {
				continue
			}
			text, _ := attrs.Get(name)
			extras.Set(name, text)
		}
	}
	return rejected
}

// remember keeps the verbatim text of symbolic and variable-substituted
// attributes next to their canonical rendering. A plain literal replaces any
// text remembered earlier.
func (e *Engine) remember(
	v view.View,
	applied []registry.Builder,
	attrs attributes.Set,
	substituted map[string]bool,
	desc description.Description,
) {
	base := v.ViewBase()
	for _, b := range applied {
		for _, name := range b.AttributeNames() {
			text, present := attrs.Get(name)
			if !present {
				continue
			}
			if !b.AttributeType(name).IsSymbolic() && !substituted[name] {
				base.Forget(name)
				continue
			}
			current, ok := b.ReadAttribute(v, name, desc)
			if !ok {
				base.Forget(name)
				continue
			}
			base.Remember(name, text, current)
		}
	}
}

func claimedNames(chain []registry.Builder) map[string]bool {
	claimed := map[string]bool{ClassAttribute: true}
	for _, b := range chain {
		for _, name := range b.AttributeNames() {
			claimed[name] = true
		}
		if lc, ok := b.(registry.LegacyConsumer); ok {
			for _, name := range lc.ConsumedAttributeNames() {
				claimed[name] = true
			}
		}
	}
	return claimed
}

func consumedBy(chain []registry.Builder, name string) bool {
	for _, b := range chain {
		lc, ok := b.(registry.LegacyConsumer)
		if !ok {
			continue
		}
		for _, consumed := range lc.ConsumedAttributeNames() {
			if consumed == name {
				return true
			}
		}
	}
	return false
}

// evaluate replaces every value that names a description variable with the
// variable's text. It returns the evaluated set and the names it changed.
func evaluate(attrs attributes.Set, desc description.Description) (attributes.Set, map[string]bool) {
	resolver, ok := desc.(description.VariableResolver)
	if !ok {
		return attrs, nil
	}
	var substituted map[string]bool
	evaluated := attrs
	for _, name := range attrs.Names() {
		text, _ := attrs.Get(name)
		value, isVar := resolver.Variable(text)
		if !isVar {
			continue
		}
		if substituted == nil {
			substituted = make(map[string]bool)
		}
		substituted[name] = true
		evaluated = evaluated.With(name, value)
	}
	return evaluated, substituted
}

func orEmpty(desc description.Description) description.Description {
	if desc == nil {
		return description.NewResources()
	}
	return desc
}
