package attributes

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/conneroisu/viewforge/internal/types"
)

func TestSet_Immutability(t *testing.T) {
	source := map[string]string{"origin": "1, 2"}
	set := New(source)
	source["origin"] = "9, 9"

	v, ok := set.Get("origin")
	require.True(t, ok)
	assert.Equal(t, "1, 2", v)

	derived := set.With("size", "3, 4")
	assert.False(t, set.Has("size"))
	assert.True(t, derived.Has("size"))

	m := set.Map()
	m["origin"] = "changed"
	v, _ = set.Get("origin")
	assert.Equal(t, "1, 2", v)
}

func TestSet_ZeroValue(t *testing.T) {
	var set Set
	assert.Equal(t, 0, set.Len())
	_, ok := set.Get("anything")
	assert.False(t, ok)
	assert.Empty(t, set.Names())
	assert.True(t, set.With("a", "b").Has("a"))
}

func TestSet_FromPairs(t *testing.T) {
	set := FromPairs("a", "1", "b", "2", "dangling")
	assert.Equal(t, []string{"a", "b"}, set.Names())
}

func TestSet_WithoutAndMerge(t *testing.T) {
	base := FromPairs("a", "1", "b", "2")
	assert.Equal(t, []string{"b"}, base.Without("a").Names())
	assert.Equal(t, base, base.Without("missing"))

	merged := base.Merge(FromPairs("b", "3", "c", "4"))
	if diff := cmp.Diff(map[string]string{"a": "1", "b": "3", "c": "4"}, merged.Map()); diff != "" {
		t.Errorf("merge mismatch (-want +got):\n%s", diff)
	}
}

func TestSet_TypedAccessors(t *testing.T) {
	set := FromPairs(
		"point", "10, 20.5",
		"rect", "1,2,3,4",
		"rect-spaced", "1, 2, 3, 4",
		"yes", "true",
		"no", "false",
		"upper", "TRUE",
		"double", " 0.25 ",
		"int", "-42",
		"list", "one,two,three",
		"bad-point", "10; 20",
		"three-point", "1, 2, 3",
		"bad-double", "fast",
		"bad-int", "4.5",
	)

	p, ok := set.Point("point")
	require.True(t, ok)
	assert.Equal(t, types.Point{X: 10, Y: 20.5}, p)

	r, ok := set.Rect("rect")
	require.True(t, ok)
	assert.Equal(t, types.Rect{Left: 1, Top: 2, Right: 3, Bottom: 4}, r)
	r, ok = set.Rect("rect-spaced")
	require.True(t, ok)
	assert.Equal(t, 4.0, r.Bottom)

	b, ok := set.Bool("yes")
	assert.True(t, ok)
	assert.True(t, b)
	b, ok = set.Bool("no")
	assert.True(t, ok)
	assert.False(t, b)

	d, ok := set.Double("double")
	assert.True(t, ok)
	assert.Equal(t, 0.25, d)

	i, ok := set.Int("int")
	assert.True(t, ok)
	assert.Equal(t, int32(-42), i)

	list, ok := set.StringArray("list")
	assert.True(t, ok)
	assert.Equal(t, []string{"one", "two", "three"}, list)

	t.Run("malformed text reads as absent", func(t *testing.T) {
		_, ok := set.Bool("upper")
		assert.False(t, ok)
		_, ok = set.Point("bad-point")
		assert.False(t, ok)
		_, ok = set.Point("three-point")
		assert.False(t, ok)
		_, ok = set.Double("bad-double")
		assert.False(t, ok)
		_, ok = set.Int("bad-int")
		assert.False(t, ok)
		_, ok = set.Rect("point")
		assert.False(t, ok)
	})

	t.Run("missing name reads as absent", func(t *testing.T) {
		_, ok := set.Point("nope")
		assert.False(t, ok)
		_, ok = set.StringArray("nope")
		assert.False(t, ok)
	})
}

func TestGrammar_Formatting(t *testing.T) {
	assert.Equal(t, "10, 20", FormatPoint(types.Point{X: 10, Y: 20}))
	assert.Equal(t, "0.5, -1.25", FormatPoint(types.Point{X: 0.5, Y: -1.25}))
	assert.Equal(t, "1,2,3,4", FormatRect(types.Rect{Left: 1, Top: 2, Right: 3, Bottom: 4}))
	assert.Equal(t, "true", FormatBool(true))
	assert.Equal(t, "false", FormatBool(false))
	assert.Equal(t, "17", FormatInt(17))
	assert.Equal(t, "a,b", FormatStringArray([]string{"a", "b"}))
	assert.Equal(t, "45", FormatDoublePrecision(44.999999999, 5))
	assert.Equal(t, "0", FormatDoublePrecision(-0.000000001, 5))
	assert.Equal(t, "1.5", FormatDoublePrecision(1.5, 5))
}

func TestGrammar_StringArrayEdges(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{}},
		{"a", []string{"a"}},
		{"a,", []string{"a"}},
		{"a,,b", []string{"a", "", "b"}},
		{",a", []string{"", "a"}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseStringArray(tt.in))
		})
	}
}

func TestGrammar_RejectsNonFinite(t *testing.T) {
	for _, s := range []string{"NaN", "inf", "-Inf"} {
		_, ok := ParseDouble(s)
		assert.False(t, ok, s)
	}
}

func TestSet_YAML(t *testing.T) {
	src := []byte("origin: 10, 20\nvisible: true\nangle: 45\ntooltip:\n")
	var set Set
	require.NoError(t, yaml.Unmarshal(src, &set))

	want := map[string]string{
		"origin":  "10, 20",
		"visible": "true",
		"angle":   "45",
		"tooltip": "",
	}
	if diff := cmp.Diff(want, set.Map()); diff != "" {
		t.Errorf("decoded set mismatch (-want +got):\n%s", diff)
	}

	out, err := yaml.Marshal(set)
	require.NoError(t, err)

	var back Set
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, set.Map(), back.Map())

	var bad Set
	assert.Error(t, yaml.Unmarshal([]byte("- a\n- b\n"), &bad))
	assert.Error(t, yaml.Unmarshal([]byte("a: [1, 2]\n"), &bad))
}

func TestSet_YAMLOmitEmpty(t *testing.T) {
	type node struct {
		Class      string `yaml:"class"`
		Attributes Set    `yaml:"attributes,omitempty"`
	}

	out, err := yaml.Marshal(node{Class: "Knob", Attributes: FromPairs("origin", "10, 20", "mystery", "x")})
	require.NoError(t, err)
	assert.Contains(t, string(out), "origin:")
	assert.Contains(t, string(out), "mystery: x")

	var decoded node
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	if diff := cmp.Diff(map[string]string{"origin": "10, 20", "mystery": "x"}, decoded.Attributes.Map()); diff != "" {
		t.Errorf("attributes changed across encode (-want +got):\n%s", diff)
	}

	out, err = yaml.Marshal(node{Class: "View"})
	require.NoError(t, err)
	assert.NotContains(t, string(out), "attributes")
	assert.True(t, Empty().IsZero())
	assert.False(t, FromPairs("a", "").IsZero())
}
