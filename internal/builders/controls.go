package builders

import (
	"github.com/conneroisu/viewforge/internal/attributes"
	"github.com/conneroisu/viewforge/internal/description"
	"github.com/conneroisu/viewforge/internal/types"
	"github.com/conneroisu/viewforge/internal/view"
)

func controlBuilder() *kind[*view.Control] {
	return define(TagControl, TagView, "Control",
		func() view.View { return view.NewControl() },
		func(v view.View) (*view.Control, bool) {
			c, ok := v.(view.ControlView)
			if !ok {
				return nil, false
			}
			return c.ControlState(), true
		},
		field[*view.Control]{
			name:  "control-tag",
			typ:   types.AttrTag,
			apply: applyControlTag,
			read: func(c *view.Control, desc description.Description) (string, bool) {
				if c.Tag == description.NoTag {
					return "", true
				}
				if name, ok := desc.ControlTagName(c.Tag); ok {
					return name, true
				}
				return attributes.FormatInt(c.Tag), true
			},
		},
		floatField("default-value", func(c *view.Control) *float64 { return &c.Default }),
		floatField("min-value", func(c *view.Control) *float64 { return &c.Min }),
		floatField("max-value", func(c *view.Control) *float64 { return &c.Max }),
		floatField("wheel-inc-value", func(c *view.Control) *float64 { return &c.WheelInc }),
		pointField("background-offset", func(c *view.Control) *types.Point { return &c.BackgroundOffset }),
	).then(func(c *view.Control, _ attributes.Set, _ description.Description) {
		c.SetValue(c.Value)
	})
}

// applyControlTag resolves a tag name, falling back to a numeric literal.
// The empty string unbinds the control.
func applyControlTag(c *view.Control, text string, desc description.Description) {
	if text == "" {
		c.Tag = description.NoTag
		c.Listener = nil
		return
	}
	tag := desc.ControlTag(text)
	if tag == description.NoTag {
		n, ok := attributes.ParseInt(text)
		if !ok {
			return
		}
		tag = n
	}
	c.Tag = tag
	c.Listener = desc.Listener(text)
}

func knobBuilder() *kind[*view.Knob] {
	return define(TagKnob, TagControl, "Knob",
		func() view.View { return view.NewKnob() },
		func(v view.View) (*view.Knob, bool) {
			k, ok := v.(view.KnobView)
			if !ok {
				return nil, false
			}
			return k.KnobState(), true
		},
		angleField("angle-start", func(k *view.Knob) *float64 { return &k.StartAngle }),
		angleField("angle-range", func(k *view.Knob) *float64 { return &k.RangeAngle }),
		floatField("value-inset", func(k *view.Knob) *float64 { return &k.InsetValue }),
		floatField("zoom-factor", func(k *view.Knob) *float64 { return &k.ZoomFactor }),
		colorField("corona-color", func(k *view.Knob) *types.Color { return &k.CoronaColor }),
		colorField("handle-color", func(k *view.Knob) *types.Color { return &k.HandleColor }),
		bitmapField("handle-bitmap", func(k *view.Knob) **types.Bitmap { return &k.HandleBitmap }),
	)
}

func animKnobBuilder() *kind[*view.AnimKnob] {
	frames := multiFrame[*view.AnimKnob]{
		state:  func(a *view.AnimKnob) *view.MultiFrame { return &a.MultiFrame },
		bitmap: func(a *view.AnimKnob) *types.Bitmap { return a.Background },
	}
	fields := append(frames.fields(),
		boolField("inverse-bitmap", func(a *view.AnimKnob) *bool { return &a.InverseBitmap }))

	return define(TagAnimKnob, TagKnob, "Animation Knob",
		func() view.View { return view.NewAnimKnob() },
		func(v view.View) (*view.AnimKnob, bool) {
			a, ok := v.(view.AnimKnobView)
			if !ok {
				return nil, false
			}
			return a.AnimKnobState(), true
		},
		fields...,
	).then(frames.finish)
}

func verticalSwitchBuilder() *kind[*view.VerticalSwitch] {
	frames := multiFrame[*view.VerticalSwitch]{
		state:  func(s *view.VerticalSwitch) *view.MultiFrame { return &s.MultiFrame },
		bitmap: func(s *view.VerticalSwitch) *types.Bitmap { return s.Background },
	}

	return define(TagVerticalSwitch, TagControl, "Vertical Switch",
		func() view.View { return view.NewVerticalSwitch() },
		func(v view.View) (*view.VerticalSwitch, bool) {
			s, ok := v.(view.SwitchView)
			if !ok {
				return nil, false
			}
			return s.SwitchState(), true
		},
		frames.fields()...,
	).then(frames.finish)
}

func sliderBuilder() *kind[*view.Slider] {
	return define(TagSlider, TagControl, "Slider",
		func() view.View { return view.NewSlider() },
		func(v view.View) (*view.Slider, bool) {
			s, ok := v.(view.SliderView)
			if !ok {
				return nil, false
			}
			return s.SliderState(), true
		},
		listField("orientation", view.Orientations, func(s *view.Slider) *view.Orientation { return &s.Orientation }),
		boolField("reverse-orientation", func(s *view.Slider) *bool { return &s.Reverse }),
		listField("mode", view.SliderModes, func(s *view.Slider) *view.SliderMode { return &s.Mode }),
		bitmapField("handle-bitmap", func(s *view.Slider) **types.Bitmap { return &s.HandleBitmap }),
		pointField("handle-offset", func(s *view.Slider) *types.Point { return &s.HandleOffset }),
		pointField("bitmap-offset", func(s *view.Slider) *types.Point { return &s.BitmapOffset }),
		floatField("zoom-factor", func(s *view.Slider) *float64 { return &s.ZoomFactor }),
		boolField("transparent-handle", func(s *view.Slider) *bool { return &s.TransparentHandle }),
	)
}

func paramDisplayBuilder() *kind[*view.ParamDisplay] {
	return define(TagParamDisplay, TagControl, "Parameter Display",
		func() view.View { return view.NewParamDisplay() },
		func(v view.View) (*view.ParamDisplay, bool) {
			p, ok := v.(view.ParamDisplayView)
			if !ok {
				return nil, false
			}
			return p.ParamDisplayState(), true
		},
		fontField("font", func(p *view.ParamDisplay) **types.Font { return &p.Font }),
		colorField("font-color", func(p *view.ParamDisplay) *types.Color { return &p.FontColor }),
		colorField("back-color", func(p *view.ParamDisplay) *types.Color { return &p.BackColor }),
		colorField("frame-color", func(p *view.ParamDisplay) *types.Color { return &p.FrameColor }),
		listField("text-alignment", view.Alignments, func(p *view.ParamDisplay) *view.Alignment { return &p.Alignment }),
		floatField("round-rect-radius", func(p *view.ParamDisplay) *float64 { return &p.RoundRectRadius }),
		floatField("frame-width", func(p *view.ParamDisplay) *float64 { return &p.FrameWidth }),
		pointField("text-inset", func(p *view.ParamDisplay) *types.Point { return &p.TextInset }),
		boolField("font-antialias", func(p *view.ParamDisplay) *bool { return &p.Antialias }),
	)
}

func textLabelBuilder() *kind[*view.TextLabel] {
	return define(TagTextLabel, TagParamDisplay, "Label",
		func() view.View { return view.NewTextLabel() },
		func(v view.View) (*view.TextLabel, bool) {
			l, ok := v.(view.TextLabelView)
			if !ok {
				return nil, false
			}
			return l.TextLabelState(), true
		},
		stringField("title", func(l *view.TextLabel) *string { return &l.Title }),
		listField("truncate-mode", view.TruncateModes, func(l *view.TextLabel) *view.Truncate { return &l.Truncate }),
	)
}

func segmentButtonBuilder() *kind[*view.SegmentButton] {
	return define(TagSegmentButton, TagControl, "Segment Button",
		func() view.View { return view.NewSegmentButton() },
		func(v view.View) (*view.SegmentButton, bool) {
			s, ok := v.(view.SegmentButtonView)
			if !ok {
				return nil, false
			}
			return s.SegmentState(), true
		},
		stringArrayField("segment-names", func(s *view.SegmentButton) *[]string { return &s.Segments }),
		listField("style", view.Orientations, func(s *view.SegmentButton) *view.Orientation { return &s.Style }),
		listField("selection-mode", view.SelectionModes, func(s *view.SegmentButton) *view.SelectionMode { return &s.Selection }),
		fontField("font", func(s *view.SegmentButton) **types.Font { return &s.Font }),
		colorField("text-color", func(s *view.SegmentButton) *types.Color { return &s.TextColor }),
		listField("text-alignment", view.Alignments, func(s *view.SegmentButton) *view.Alignment { return &s.Alignment }),
		listField("truncate-mode", view.TruncateModes, func(s *view.SegmentButton) *view.Truncate { return &s.Truncate }),
		floatField("round-radius", func(s *view.SegmentButton) *float64 { return &s.RoundRadius }),
		floatField("frame-width", func(s *view.SegmentButton) *float64 { return &s.FrameWidth }),
	)
}
