package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
		ok   bool
	}{
		{"#ff000080", Color{R: 255, A: 128}, true},
		{"#00ff00", Color{G: 255, A: 255}, true},
		{"#ABCDEF12", Color{R: 0xab, G: 0xcd, B: 0xef, A: 0x12}, true},
		{"ff0000ff", Color{}, false},
		{"#fff", Color{}, false},
		{"#gg000000", Color{}, false},
		{"", Color{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseHexColor(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestColorHexRoundTrip(t *testing.T) {
	c := Color{R: 1, G: 2, B: 3, A: 4}
	assert.Equal(t, "#01020304", c.Hex())
	back, ok := ParseHexColor(c.Hex())
	require.True(t, ok)
	assert.Equal(t, c, back)
}

func TestRectGeometry(t *testing.T) {
	r := RectFromOriginSize(Point{X: 10, Y: 20}, Point{X: 30, Y: 40})
	assert.Equal(t, Rect{Left: 10, Top: 20, Right: 40, Bottom: 60}, r)
	assert.Equal(t, Point{X: 10, Y: 20}, r.Origin())
	assert.Equal(t, Point{X: 30, Y: 40}, r.Size())
}

func TestGradientEqual(t *testing.T) {
	a := NewTwoStopGradient(0, 1, Color{A: 255}, Color{R: 255, A: 255})
	b := NewTwoStopGradient(0, 1, Color{A: 255}, Color{R: 255, A: 255})
	c := NewTwoStopGradient(0.5, 1, Color{A: 255}, Color{R: 255, A: 255})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
	var nilGradient *Gradient
	assert.True(t, nilGradient.Equal(nil))
}

func TestAttrType(t *testing.T) {
	assert.Equal(t, "point", AttrPoint.String())
	assert.Equal(t, "unknown", AttrType(99).String())
	assert.True(t, AttrColor.IsSymbolic())
	assert.True(t, AttrTag.IsSymbolic())
	assert.False(t, AttrFloat.IsSymbolic())
}

func TestAttrTypeMarshalText(t *testing.T) {
	text, err := AttrGradient.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "gradient", string(text))
}

func TestParseAttrType(t *testing.T) {
	for typ := AttrBool; typ <= AttrGradient; typ++ {
		assert.Equal(t, typ, ParseAttrType(typ.String()))
	}
	assert.Equal(t, AttrUnknown, ParseAttrType("matrix"))

	var decoded AttrType
	require.NoError(t, decoded.UnmarshalText([]byte("color")))
	assert.Equal(t, AttrColor, decoded)
}
