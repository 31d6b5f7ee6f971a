package registry

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/viewforge/internal/attributes"
	"github.com/conneroisu/viewforge/internal/description"
	verrors "github.com/conneroisu/viewforge/internal/errors"
	"github.com/conneroisu/viewforge/internal/logging"
	"github.com/conneroisu/viewforge/internal/types"
	"github.com/conneroisu/viewforge/internal/view"
)

type stubBuilder struct {
	tag, base, display string
}

func (s stubBuilder) TypeTag() string     { return s.tag }
func (s stubBuilder) BaseTag() string     { return s.base }
func (s stubBuilder) DisplayName() string { return s.display }

func (s stubBuilder) Instantiate(attributes.Set, description.Description) view.View {
	return view.NewContainer()
}

func (s stubBuilder) Apply(view.View, attributes.Set, description.Description) bool { return true }
func (s stubBuilder) AttributeNames() []string                                      { return nil }
func (s stubBuilder) AttributeType(string) types.AttrType                           { return types.AttrUnknown }

func (s stubBuilder) ReadAttribute(view.View, string, description.Description) (string, bool) {
	return "", false
}

func chainTags(chain []Builder) []string {
	tags := make([]string, len(chain))
	for i, b := range chain {
		tags[i] = b.TypeTag()
	}
	return tags
}

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	r := New()
	require.NoError(t, r.Register(stubBuilder{tag: "View", display: "View"}))
	require.NoError(t, r.Register(stubBuilder{tag: "Control", base: "View", display: "Control"}))
	require.NoError(t, r.Register(stubBuilder{tag: "Knob", base: "Control", display: "Knob"}))
	require.NoError(t, r.Register(stubBuilder{tag: "AnimKnob", base: "Knob", display: "Animation Knob"}))
	return r
}

func TestRegistry_Chain(t *testing.T) {
	r := newTestRegistry(t)

	chain, err := r.Chain("AnimKnob")
	require.NoError(t, err)
	assert.Equal(t, []string{"View", "Control", "Knob", "AnimKnob"}, chainTags(chain))

	chain, err = r.Chain("View")
	require.NoError(t, err)
	assert.Equal(t, []string{"View"}, chainTags(chain))

	_, err = r.Chain("Missing")
	assert.True(t, verrors.IsUnknownType(err))
}

func TestRegistry_ChainErrors(t *testing.T) {
	r := New()
	require.NoError(t, r.Register(stubBuilder{tag: "Orphan", base: "Nowhere"}))
	_, err := r.Chain("Orphan")
	require.Error(t, err)
	var ve *verrors.ViewforgeError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, verrors.ErrCodeMissingBase, ve.Code)

	require.NoError(t, r.Register(stubBuilder{tag: "A", base: "B"}))
	require.NoError(t, r.Register(stubBuilder{tag: "B", base: "A"}))
	_, err = r.Chain("A")
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, verrors.ErrCodeChainCycle, ve.Code)
	assert.Contains(t, ve.Message, "A -> B -> A")

	assert.Error(t, r.Register(stubBuilder{tag: "Self", base: "Self"}))
	assert.Error(t, r.Register(nil))
	assert.Error(t, r.Register(stubBuilder{}))
	assert.Error(t, r.Validate())
}

func TestRegistry_IsA(t *testing.T) {
	r := newTestRegistry(t)

	assert.True(t, r.IsA("AnimKnob", "View"))
	assert.True(t, r.IsA("Knob", "Knob"))
	assert.False(t, r.IsA("Missing", "View"))
	assert.False(t, r.IsA("Control", "Knob"))
}

func TestRegistry_DuplicateLastWins(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewLogger(&logging.LoggerConfig{
		Level:  logging.LevelDebug,
		Format: logging.FormatJSON,
		Output: &buf,
	})
	r := New(WithLogger(logger))
	events := r.Watch()

	require.NoError(t, r.Register(stubBuilder{tag: "View", display: "first"}))
	require.NoError(t, r.Register(stubBuilder{tag: "View", display: "second"}))

	name, ok := r.DisplayName("View")
	require.True(t, ok)
	assert.Equal(t, "second", name)
	assert.Equal(t, 1, r.Count())
	assert.Contains(t, buf.String(), "duplicate type tag")

	assert.Equal(t, EventTypeAdded, (<-events).Type)
	assert.Equal(t, EventTypeUpdated, (<-events).Type)
	r.UnWatch(events)
}

func TestRegistry_Seal(t *testing.T) {
	r := newTestRegistry(t)
	r.Seal()
	assert.True(t, r.Sealed())

	err := r.Register(stubBuilder{tag: "Late"})
	assert.True(t, errors.Is(err, ErrSealed))

	_, err = r.Unregister("Knob")
	assert.True(t, errors.Is(err, ErrSealed))

	_, ok := r.Lookup("Knob")
	assert.True(t, ok, "reads keep working after Seal")
}

func TestRegistry_Unregister(t *testing.T) {
	r := newTestRegistry(t)
	events := r.Watch()

	removed, err := r.Unregister("AnimKnob")
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, EventTypeRemoved, (<-events).Type)

	removed, err = r.Unregister("AnimKnob")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestRegistry_Tags(t *testing.T) {
	r := newTestRegistry(t)
	require.NoError(t, r.Register(stubBuilder{tag: "Broken", base: "Missing"}))

	assert.Equal(t, []string{"AnimKnob", "Broken", "Control", "Knob", "View"}, r.Tags(""))
	assert.Equal(t, []string{"AnimKnob", "Knob"}, r.Tags("Knob"))
	assert.Equal(t, []string{"AnimKnob", "Control", "Knob", "View"}, r.Tags("View"))

	_, ok := r.DisplayName("Missing")
	assert.False(t, ok)
}

func TestEventTypeString(t *testing.T) {
	assert.Equal(t, "added", EventTypeAdded.String())
	assert.Equal(t, "removed", EventTypeRemoved.String())
	assert.Equal(t, "unknown", EventType(9).String())
}
