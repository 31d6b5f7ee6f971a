package engine

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/viewforge/internal/attributes"
	"github.com/conneroisu/viewforge/internal/builders"
	"github.com/conneroisu/viewforge/internal/description"
	verrors "github.com/conneroisu/viewforge/internal/errors"
	"github.com/conneroisu/viewforge/internal/registry"
	"github.com/conneroisu/viewforge/internal/types"
	"github.com/conneroisu/viewforge/internal/view"
)

// probe is a minimal object for hand-written chains.
type probe struct {
	view.Base
	angle float64
}

type probeBuilder struct {
	tag, base string
	names     []string
	reject    bool
	calls     *[]string
	apply     func(p *probe, attrs attributes.Set)
	read      func(p *probe, name string) (string, bool)
}

func (b *probeBuilder) TypeTag() string     { return b.tag }
func (b *probeBuilder) BaseTag() string     { return b.base }
func (b *probeBuilder) DisplayName() string { return b.tag }

func (b *probeBuilder) Instantiate(attributes.Set, description.Description) view.View {
	return &probe{Base: view.NewBase(types.Rect{})}
}

func (b *probeBuilder) Apply(v view.View, attrs attributes.Set, _ description.Description) bool {
	if b.calls != nil {
		*b.calls = append(*b.calls, b.tag)
	}
	p, ok := v.(*probe)
	if !ok || b.reject {
		return false
	}
	if b.apply != nil {
		b.apply(p, attrs)
	}
	return true
}

func (b *probeBuilder) AttributeNames() []string { return b.names }

func (b *probeBuilder) AttributeType(name string) types.AttrType {
	switch name {
	case "origin":
		return types.AttrPoint
	case "angle":
		return types.AttrFloat
	default:
		return types.AttrString
	}
}

func (b *probeBuilder) ReadAttribute(v view.View, name string, _ description.Description) (string, bool) {
	p, ok := v.(*probe)
	if !ok || b.read == nil {
		return "", false
	}
	return b.read(p, name)
}

func (b *probeBuilder) ValueRange(name string) (float64, float64, bool) {
	if name == "angle" {
		return 0, 360, true
	}
	return 0, 0, false
}

func scenarioBuilders(calls *[]string) (*probeBuilder, *probeBuilder) {
	base := &probeBuilder{
		tag:   "Base",
		names: []string{"origin"},
		calls: calls,
		apply: func(p *probe, attrs attributes.Set) {
			if pt, ok := attrs.Point("origin"); ok {
				p.Frame = types.RectFromOriginSize(pt, p.Frame.Size())
			}
		},
		read: func(p *probe, name string) (string, bool) {
			return attributes.FormatPoint(p.Frame.Origin()), name == "origin"
		},
	}
	knob := &probeBuilder{
		tag:   "Knob",
		base:  "Base",
		names: []string{"angle"},
		calls: calls,
		apply: func(p *probe, attrs attributes.Set) {
			if d, ok := attrs.Double("angle"); ok {
				p.angle = max(0, min(360, d))
			}
		},
		read: func(p *probe, name string) (string, bool) {
			return attributes.FormatDouble(p.angle), name == "angle"
		},
	}
	return base, knob
}

func scenarioEngine(t *testing.T, calls *[]string, opts ...Option) *Engine {
	t.Helper()
	reg := registry.New()
	base, knob := scenarioBuilders(calls)
	require.NoError(t, reg.Register(knob))
	require.NoError(t, reg.Register(base))
	reg.Seal()
	return New(reg, opts...)
}

func stockEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	reg := registry.New()
	require.NoError(t, builders.RegisterAll(reg))
	reg.Seal()
	return New(reg, opts...)
}

func TestBuild_Scenario(t *testing.T) {
	ctx := context.Background()
	e := scenarioEngine(t, nil)

	v, err := e.Build(ctx, "Knob", attributes.FromPairs(
		"origin", "10, 20",
		"angle", "400",
		"mystery", "x",
	), nil)
	require.NoError(t, err)

	p := v.(*probe)
	assert.Equal(t, types.Point{X: 10, Y: 20}, p.Frame.Origin())
	assert.Equal(t, 360.0, p.angle, "out-of-range values are clamped")

	stored, ok := p.Extras().Get("mystery")
	require.True(t, ok)
	assert.Equal(t, "x", stored)

	described, err := e.Describe(ctx, v, "Knob", nil)
	require.NoError(t, err)
	want := map[string]string{
		"origin":  "10, 20",
		"angle":   "360",
		"mystery": "x",
		"class":   "Knob",
	}
	if diff := cmp.Diff(want, described.Map()); diff != "" {
		t.Errorf("Describe() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_UnknownType(t *testing.T) {
	e := stockEngine(t)
	v, err := e.Build(context.Background(), "NoSuchTag", attributes.FromPairs("origin", "1, 2"), nil)
	assert.Nil(t, v)
	require.Error(t, err)
	assert.True(t, verrors.IsUnknownType(err))
	assert.True(t, verrors.IsRecoverable(err))
}

func TestApply_RootToLeafOrder(t *testing.T) {
	var calls []string
	e := scenarioEngine(t, &calls)

	v, err := e.Build(context.Background(), "Knob", attributes.Empty(), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Base", "Knob"}, calls)

	calls = nil
	assert.True(t, e.ApplyPatch(context.Background(), v, "Knob", attributes.Empty(), nil))
	assert.Equal(t, []string{"Base", "Knob"}, calls)
}

func mismatchEngine(t *testing.T, calls *[]string, opts ...Option) *Engine {
	t.Helper()
	base, knob := scenarioBuilders(calls)
	picky := &probeBuilder{tag: "Picky", base: "Base", reject: true, calls: calls}
	knob.base = "Picky"

	reg := registry.New()
	require.NoError(t, reg.Register(base))
	require.NoError(t, reg.Register(picky))
	require.NoError(t, reg.Register(knob))
	return New(reg, opts...)
}

func TestChainMismatch_ContinuesByDefault(t *testing.T) {
	var calls []string
	e := mismatchEngine(t, &calls)

	v, err := e.Build(context.Background(), "Knob", attributes.FromPairs("angle", "45"), nil)
	require.Error(t, err)
	assert.True(t, verrors.IsChainMismatch(err))
	require.NotNil(t, v, "the partially configured object is still returned")
	assert.Equal(t, []string{"Base", "Picky", "Knob"}, calls)
	assert.Equal(t, 45.0, v.(*probe).angle)

	assert.False(t, e.ApplyPatch(context.Background(), v, "Knob", attributes.Empty(), nil))
}

func TestChainMismatch_Abort(t *testing.T) {
	var calls []string
	e := mismatchEngine(t, &calls, WithAbortOnMismatch(true))

	v, err := e.Build(context.Background(), "Knob", attributes.FromPairs("angle", "45"), nil)
	require.Error(t, err)
	assert.True(t, verrors.IsChainMismatch(err))
	assert.Equal(t, []string{"Base", "Picky"}, calls)
	assert.Equal(t, 0.0, v.(*probe).angle)
}

func TestRegistry_DuplicateTagLastWins(t *testing.T) {
	reg := registry.New()
	base, knob := scenarioBuilders(nil)
	replacement := &probeBuilder{tag: "Knob", base: "Base", names: []string{"angle", "spin"}}
	require.NoError(t, reg.Register(base))
	require.NoError(t, reg.Register(knob))
	require.NoError(t, reg.Register(replacement))

	catalog, err := New(reg).AttributeCatalog("Knob")
	require.NoError(t, err)
	assert.Equal(t, []string{"origin", "angle", "spin"}, catalog.Names())
}

func TestApplyPatch_SparseAndIdempotent(t *testing.T) {
	ctx := context.Background()
	e := stockEngine(t)
	res := description.NewResources()
	attrs := attributes.FromPairs("origin", "5, 6", "angle-range", "180", "zoom-factor", "2")

	v, err := e.Build(ctx, builders.TagKnob, attrs, res)
	require.NoError(t, err)
	once, err := e.Describe(ctx, v, builders.TagKnob, res)
	require.NoError(t, err)

	require.True(t, e.ApplyPatch(ctx, v, builders.TagKnob, attrs, res))
	require.True(t, e.ApplyPatch(ctx, v, builders.TagKnob, attrs, res))
	twice, err := e.Describe(ctx, v, builders.TagKnob, res)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(once.Map(), twice.Map()))

	require.True(t, e.ApplyPatch(ctx, v, builders.TagKnob, attributes.Empty(), res))
	after, err := e.Describe(ctx, v, builders.TagKnob, res)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(once.Map(), after.Map()))

	require.True(t, e.ApplyPatch(ctx, v, builders.TagKnob, attributes.FromPairs("zoom-factor", "3"), res))
	patched, err := e.Describe(ctx, v, builders.TagKnob, res)
	require.NoError(t, err)
	assert.Equal(t, "3", mustGet(t, patched, "zoom-factor"))
	assert.Equal(t, "5, 6", mustGet(t, patched, "origin"), "unmentioned attributes are untouched")
}

func mustGet(t *testing.T, s attributes.Set, name string) string {
	t.Helper()
	v, ok := s.Get(name)
	require.True(t, ok, "missing %q", name)
	return v
}

func TestUnknownAttributes(t *testing.T) {
	ctx := context.Background()
	e := stockEngine(t)

	v, err := e.Build(ctx, builders.TagSlider, attributes.FromPairs(
		"zzz-custom", "42",
		"class", "ignored",
		"orientation", "vertical",
	), nil)
	require.NoError(t, err)

	assert.Equal(t, 1, v.ViewBase().Extras().Len(), "class is reserved, not unknown")
	described, err := e.DescribeView(ctx, v, nil)
	require.NoError(t, err)
	assert.Equal(t, "42", mustGet(t, described, "zzz-custom"))
	assert.Equal(t, builders.TagSlider, mustGet(t, described, "class"))

	require.True(t, e.ApplyPatch(ctx, v, builders.TagSlider, attributes.FromPairs("zzz-custom", "43"), nil))
	described, err = e.DescribeView(ctx, v, nil)
	require.NoError(t, err)
	assert.Equal(t, "43", mustGet(t, described, "zzz-custom"))
}

func TestApplyFromAncestor(t *testing.T) {
	type fancyKnob struct {
		view.Knob
		Glow string
	}
	ctx := context.Background()
	e := stockEngine(t)
	f := &fancyKnob{Knob: *view.NewKnob()}

	ok := e.ApplyFromAncestor(ctx, f, builders.TagKnob, attributes.FromPairs(
		"origin", "3, 4",
		"angle-range", "90",
		"fancy-glow", "on",
	), nil)
	require.True(t, ok)
	assert.Equal(t, types.Point{X: 3, Y: 4}, f.Frame.Origin())
	assert.Equal(t, 0, f.Extras().Len(), "names beyond the ancestor stay with the caller")
	assert.Equal(t, builders.TagKnob, f.Class())

	described, err := e.DescribeView(ctx, f, nil)
	require.NoError(t, err)
	assert.Equal(t, "90", mustGet(t, described, "angle-range"))
	assert.False(t, described.Has("fancy-glow"))

	assert.False(t, e.ApplyFromAncestor(ctx, f, "Missing", attributes.Empty(), nil))
	assert.False(t, e.ApplyFromAncestor(ctx, view.NewContainer(), builders.TagKnob, attributes.Empty(), nil))
}

func TestApplyFromAncestor_RecordedClassMustDerive(t *testing.T) {
	ctx := context.Background()
	e := stockEngine(t)

	slider, err := e.Build(ctx, builders.TagSlider, attributes.Empty(), nil)
	require.NoError(t, err)
	assert.False(t, e.ApplyFromAncestor(ctx, slider, builders.TagKnob, attributes.FromPairs("origin", "5, 5"), nil),
		"a Slider is not a Knob")
	assert.Equal(t, types.Point{}, slider.ViewBase().Frame.Origin())

	anim, err := e.Build(ctx, builders.TagAnimKnob, attributes.Empty(), nil)
	require.NoError(t, err)
	require.True(t, e.ApplyFromAncestor(ctx, anim, builders.TagKnob, attributes.FromPairs("angle-range", "90"), nil))
	assert.Equal(t, builders.TagAnimKnob, anim.ViewBase().Class(), "the recorded class is kept")
}

func TestRememberedSymbolicValues(t *testing.T) {
	ctx := context.Background()
	res := description.NewResources()
	red := types.Color{R: 255, A: 255}
	res.SetColor("red", red)
	res.SetColor("warning", red)

	e := stockEngine(t)
	v, err := e.Build(ctx, builders.TagParamDisplay, attributes.FromPairs("font-color", "warning"), res)
	require.NoError(t, err)
	described, err := e.DescribeView(ctx, v, res)
	require.NoError(t, err)
	assert.Equal(t, "warning", mustGet(t, described, "font-color"), "the name used is kept over the canonical one")

	v.(*view.ParamDisplay).FontColor = types.Color{G: 255, A: 255}
	described, err = e.DescribeView(ctx, v, res)
	require.NoError(t, err)
	assert.Equal(t, "#00ff00ff", mustGet(t, described, "font-color"), "a changed value invalidates the remembered name")

	plain := stockEngine(t, WithRememberSymbolic(false))
	v, err = plain.Build(ctx, builders.TagParamDisplay, attributes.FromPairs("font-color", "warning"), res)
	require.NoError(t, err)
	described, err = plain.DescribeView(ctx, v, res)
	require.NoError(t, err)
	assert.Equal(t, "red", mustGet(t, described, "font-color"))
}

func TestVariables(t *testing.T) {
	ctx := context.Background()
	res := description.NewResources()
	res.SetVariable("margin", "10, 10")

	e := stockEngine(t)
	v, err := e.Build(ctx, builders.TagView, attributes.FromPairs("origin", "margin"), res)
	require.NoError(t, err)
	assert.Equal(t, types.Point{X: 10, Y: 10}, v.ViewBase().Frame.Origin())

	described, err := e.DescribeView(ctx, v, res)
	require.NoError(t, err)
	assert.Equal(t, "margin", mustGet(t, described, "origin"))

	require.True(t, e.ApplyPatch(ctx, v, builders.TagView, attributes.FromPairs("origin", "1, 2"), res))
	described, err = e.DescribeView(ctx, v, res)
	require.NoError(t, err)
	assert.Equal(t, "1, 2", mustGet(t, described, "origin"), "a literal replaces the variable")
}

func TestLegacyGradientThroughEngine(t *testing.T) {
	ctx := context.Background()
	res := description.NewResources()
	e := stockEngine(t)

	legacy := attributes.FromPairs("gradient-start-color", "#ff0000ff", "gradient-end-color", "#0000ffff")
	v, err := e.Build(ctx, builders.TagGradientView, legacy, res)
	require.NoError(t, err)
	assert.Equal(t, 0, v.ViewBase().Extras().Len(), "consumed names are not unknown")

	described, err := e.DescribeView(ctx, v, res)
	require.NoError(t, err)
	assert.Equal(t, "GradientView", mustGet(t, described, "gradient"))
	assert.False(t, described.Has("gradient-start-color"))

	require.True(t, e.ApplyPatch(ctx, v, builders.TagGradientView, legacy, res))
	assert.Equal(t, []string{"GradientView"}, res.GradientNames())
}

func TestAttributeCatalog(t *testing.T) {
	e := stockEngine(t)

	catalog, err := e.AttributeCatalog(builders.TagAnimKnob)
	require.NoError(t, err)

	chain, err := e.Registry().Chain(builders.TagAnimKnob)
	require.NoError(t, err)
	var union []string
	for _, b := range chain {
		union = append(union, b.AttributeNames()...)
	}
	assert.Equal(t, union, catalog.Names())

	info, ok := catalog.Lookup("angle-start")
	require.True(t, ok)
	assert.Equal(t, builders.TagKnob, info.Owner)
	assert.Equal(t, types.AttrFloat, info.Type)
	assert.True(t, info.HasRange)
	assert.Equal(t, 360.0, info.Max)

	info, ok = catalog.Lookup("origin")
	require.True(t, ok)
	assert.Equal(t, builders.TagView, info.Owner)

	slider, err := e.AttributeCatalog(builders.TagSlider)
	require.NoError(t, err)
	info, ok = slider.Lookup("orientation")
	require.True(t, ok)
	assert.Equal(t, []string{"horizontal", "vertical"}, info.Values)

	_, err = e.AttributeCatalog("NoSuchTag")
	assert.True(t, verrors.IsUnknownType(err))
}

func TestDescribeErrors(t *testing.T) {
	ctx := context.Background()
	e := stockEngine(t)

	_, err := e.Describe(ctx, nil, builders.TagView, nil)
	assert.Error(t, err)

	_, err = e.DescribeView(ctx, view.NewKnob(), nil)
	assert.Error(t, err, "an object never built has no class")

	_, err = e.Describe(ctx, view.NewKnob(), "NoSuchTag", nil)
	assert.True(t, verrors.IsUnknownType(err))
}
