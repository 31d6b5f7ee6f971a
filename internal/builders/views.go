package builders

import (
	"github.com/conneroisu/viewforge/internal/attributes"
	"github.com/conneroisu/viewforge/internal/description"
	"github.com/conneroisu/viewforge/internal/types"
	"github.com/conneroisu/viewforge/internal/view"
)

func viewBuilder() *kind[*view.Base] {
	return define(TagView, "", "View",
		func() view.View {
			b := view.NewBase(types.Rect{Right: 100, Bottom: 100})
			return &b
		},
		func(v view.View) (*view.Base, bool) {
			b := v.ViewBase()
			return b, b != nil
		},
		field[*view.Base]{
			name: "origin",
			typ:  types.AttrPoint,
			apply: func(b *view.Base, text string, _ description.Description) {
				if p, ok := attributes.ParsePoint(text); ok {
					b.Frame = types.RectFromOriginSize(p, b.Frame.Size())
				}
			},
			read: func(b *view.Base, _ description.Description) (string, bool) {
				return attributes.FormatPoint(b.Frame.Origin()), true
			},
		},
		field[*view.Base]{
			name: "size",
			typ:  types.AttrPoint,
			apply: func(b *view.Base, text string, _ description.Description) {
				if p, ok := attributes.ParsePoint(text); ok {
					b.Frame = types.RectFromOriginSize(b.Frame.Origin(), p)
				}
			},
			read: func(b *view.Base, _ description.Description) (string, bool) {
				return attributes.FormatPoint(b.Frame.Size()), true
			},
		},
		rangedField("opacity", 0, 1, func(b *view.Base) *float64 { return &b.Opacity }),
		boolField("transparent", func(b *view.Base) *bool { return &b.Transparent }),
		boolField("mouse-enabled", func(b *view.Base) *bool { return &b.MouseEnabled }),
		boolField("wants-focus", func(b *view.Base) *bool { return &b.WantsFocus }),
		bitmapField("bitmap", func(b *view.Base) **types.Bitmap { return &b.Background }),
		bitmapField("disabled-bitmap", func(b *view.Base) **types.Bitmap { return &b.DisabledBackground }),
		field[*view.Base]{
			name: "autosize",
			typ:  types.AttrString,
			apply: func(b *view.Base, text string, _ description.Description) {
				b.Autosize = view.ParseAutosize(text)
			},
			read: func(b *view.Base, _ description.Description) (string, bool) {
				return b.Autosize.String(), true
			},
		},
		stringField("tooltip", func(b *view.Base) *string { return &b.Tooltip }),
		stringField("custom-view-name", func(b *view.Base) *string { return &b.CustomViewName }),
		stringField("sub-controller", func(b *view.Base) *string { return &b.SubController }),
		stringField("uidesc-label", func(b *view.Base) *string { return &b.Label }),
	)
}

func containerBuilder() *kind[*view.Container] {
	return define(TagContainer, TagView, "View Container",
		func() view.View { return view.NewContainer() },
		func(v view.View) (*view.Container, bool) {
			c, ok := v.(view.ContainerView)
			if !ok {
				return nil, false
			}
			return c.ContainerState(), true
		},
		colorField("background-color", func(c *view.Container) *types.Color { return &c.BackgroundColor }),
		listField("background-color-draw-style", view.DrawStyles,
			func(c *view.Container) *view.DrawStyle { return &c.DrawStyle }),
	)
}

// Legacy two-color gradient attributes migrated into a named gradient.
const (
	legacyStartColor  = "gradient-start-color"
	legacyEndColor    = "gradient-end-color"
	legacyStartOffset = "gradient-start-color-offset"
	legacyEndOffset   = "gradient-end-color-offset"
)

func gradientViewBuilder() *kind[*view.GradientView] {
	return define(TagGradientView, TagView, "Gradient View",
		func() view.View { return view.NewGradientView() },
		func(v view.View) (*view.GradientView, bool) {
			g, ok := v.(view.GradientViewer)
			if !ok {
				return nil, false
			}
			return g.GradientState(), true
		},
		listField("gradient-style", view.GradientStyles,
			func(g *view.GradientView) *view.GradientStyle { return &g.Style }),
		gradientField("gradient", func(g *view.GradientView) **types.Gradient { return &g.Gradient }),
		rangedField("gradient-angle", 0, 360, func(g *view.GradientView) *float64 { return &g.Angle }),
		pointField("radial-center", func(g *view.GradientView) *types.Point { return &g.RadialCenter }),
		floatField("radial-radius", func(g *view.GradientView) *float64 { return &g.RadialRadius }),
		colorField("frame-color", func(g *view.GradientView) *types.Color { return &g.FrameColor }),
		floatField("round-rect-radius", func(g *view.GradientView) *float64 { return &g.RoundRectRadius }),
		floatField("frame-width", func(g *view.GradientView) *float64 { return &g.FrameWidth }),
		boolField("draw-antialiased", func(g *view.GradientView) *bool { return &g.Antialiased }),
	).consumes(legacyStartColor, legacyEndColor, legacyStartOffset, legacyEndOffset).
		then(migrateLegacyGradient)
}

// migrateLegacyGradient turns the old start/end color attributes into a
// gradient registered in desc. An explicit gradient attribute wins.
func migrateLegacyGradient(g *view.GradientView, attrs attributes.Set, desc description.Description) {
	if attrs.Has("gradient") {
		return
	}
	startText, hasStart := attrs.Get(legacyStartColor)
	endText, hasEnd := attrs.Get(legacyEndColor)
	if !hasStart && !hasEnd {
		return
	}

	start := types.Color{A: 255}
	end := types.Color{R: 255, G: 255, B: 255, A: 255}
	startOffset, endOffset := 0.0, 1.0
	if g.Gradient != nil && len(g.Gradient.Stops) >= 2 {
		first, last := g.Gradient.Stops[0], g.Gradient.Stops[len(g.Gradient.Stops)-1]
		start, end = first.Color, last.Color
		startOffset, endOffset = first.Offset, last.Offset
	}
	if c, ok := resolveColor(startText, desc); ok && hasStart {
		start = c
	}
	if c, ok := resolveColor(endText, desc); ok && hasEnd {
		end = c
	}
	if d, ok := attrs.Double(legacyStartOffset); ok {
		startOffset = d
	}
	if d, ok := attrs.Double(legacyEndOffset); ok {
		endOffset = d
	}

	_, g.Gradient = description.AddGradient(desc,
		types.NewTwoStopGradient(startOffset, endOffset, start, end), TagGradientView)
}
