package view

import (
	"math"

	"github.com/conneroisu/viewforge/internal/types"
)

// Control is a view bound to a parameter tag and value range.
type Control struct {
	Base
	Tag              int32
	Listener         types.Listener
	Value            float64
	Default          float64
	Min              float64
	Max              float64
	WheelInc         float64
	BackgroundOffset types.Point
}

// NewControl creates an unbound control with a [0,1] range.
func NewControl() *Control {
	c := &Control{}
	c.initControl()
	return c
}

func (c *Control) initControl() {
	c.Base = NewBase(types.Rect{Right: 100, Bottom: 20})
	c.Tag = -1
	c.Max = 1
	c.WheelInc = 0.1
}

// ControlState implements ControlView.
func (c *Control) ControlState() *Control { return c }

// SetValue stores v clamped into [Min, Max].
func (c *Control) SetValue(v float64) {
	c.Value = math.Max(c.Min, math.Min(c.Max, v))
}

// ControlView is implemented by every control kind.
type ControlView interface {
	View
	ControlState() *Control
}

// Knob is a rotary control.
type Knob struct {
	Control
	// StartAngle and RangeAngle are in radians.
	StartAngle   float64
	RangeAngle   float64
	InsetValue   float64
	ZoomFactor   float64
	CoronaColor  types.Color
	HandleColor  types.Color
	HandleBitmap *types.Bitmap
}

// NewKnob creates a knob sweeping 270 degrees from the lower left.
func NewKnob() *Knob {
	k := &Knob{}
	k.initKnob()
	return k
}

func (k *Knob) initKnob() {
	k.initControl()
	k.Frame = types.Rect{Right: 40, Bottom: 40}
	k.StartAngle = 3 * math.Pi / 4
	k.RangeAngle = 3 * math.Pi / 2
	k.InsetValue = 3
	k.ZoomFactor = 1.5
	k.CoronaColor = types.Color{R: 255, G: 255, B: 255, A: 200}
	k.HandleColor = types.Color{R: 255, G: 255, B: 255, A: 200}
}

// KnobState implements KnobView.
func (k *Knob) KnobState() *Knob { return k }

// KnobView is implemented by knobs and knob-derived controls.
type KnobView interface {
	ControlView
	KnobState() *Knob
}

// MultiFrame is the filmstrip state shared by controls that draw one of
// several stacked sub-images of their background bitmap.
type MultiFrame struct {
	HeightOfOneImage float64
	SubPixmaps       int32
}

// FrameState implements MultiFrameView.
func (m *MultiFrame) FrameState() *MultiFrame { return m }

// SyncFrames derives the frame height from the bitmap when only the count is
// known, and the count from the height when only the height is known.
func (m *MultiFrame) SyncFrames(bitmap *types.Bitmap) {
	if bitmap == nil || bitmap.Height <= 0 {
		return
	}
	switch {
	case m.HeightOfOneImage <= 0 && m.SubPixmaps > 0:
		m.HeightOfOneImage = bitmap.Height / float64(m.SubPixmaps)
	case m.SubPixmaps <= 0 && m.HeightOfOneImage > 0:
		m.SubPixmaps = int32(bitmap.Height / m.HeightOfOneImage)
	}
}

// MultiFrameView is implemented by controls drawn from a filmstrip.
type MultiFrameView interface {
	View
	FrameState() *MultiFrame
}

// AnimKnob is a knob drawn from a filmstrip bitmap.
type AnimKnob struct {
	Knob
	MultiFrame
	InverseBitmap bool
}

// NewAnimKnob creates a filmstrip knob.
func NewAnimKnob() *AnimKnob {
	a := &AnimKnob{}
	a.initKnob()
	return a
}

// AnimKnobState implements AnimKnobView.
func (a *AnimKnob) AnimKnobState() *AnimKnob { return a }

// AnimKnobView is implemented by filmstrip knobs.
type AnimKnobView interface {
	KnobView
	AnimKnobState() *AnimKnob
}

// VerticalSwitch is a stepped control drawn from a filmstrip bitmap.
type VerticalSwitch struct {
	Control
	MultiFrame
}

// NewVerticalSwitch creates a filmstrip switch.
func NewVerticalSwitch() *VerticalSwitch {
	s := &VerticalSwitch{}
	s.initControl()
	return s
}

// SwitchState implements SwitchView.
func (s *VerticalSwitch) SwitchState() *VerticalSwitch { return s }

// SwitchView is implemented by filmstrip switches.
type SwitchView interface {
	ControlView
	SwitchState() *VerticalSwitch
}

// Slider is a linear control.
type Slider struct {
	Control
	Orientation       Orientation
	Reverse           bool
	Mode              SliderMode
	HandleBitmap      *types.Bitmap
	HandleOffset      types.Point
	BitmapOffset      types.Point
	ZoomFactor        float64
	TransparentHandle bool
}

// NewSlider creates a horizontal slider.
func NewSlider() *Slider {
	s := &Slider{}
	s.initControl()
	s.Orientation = Horizontal
	s.Mode = SliderFreeClick
	s.ZoomFactor = 10
	s.TransparentHandle = true
	return s
}

// SliderState implements SliderView.
func (s *Slider) SliderState() *Slider { return s }

// SliderView is implemented by sliders.
type SliderView interface {
	ControlView
	SliderState() *Slider
}

// ParamDisplay renders a control value as text.
type ParamDisplay struct {
	Control
	Font            *types.Font
	FontColor       types.Color
	BackColor       types.Color
	FrameColor      types.Color
	Alignment       Alignment
	RoundRectRadius float64
	FrameWidth      float64
	TextInset       types.Point
	Antialias       bool
}

// NewParamDisplay creates a centered value display.
func NewParamDisplay() *ParamDisplay {
	p := &ParamDisplay{}
	p.initParamDisplay()
	return p
}

func (p *ParamDisplay) initParamDisplay() {
	p.initControl()
	p.FontColor = types.Color{R: 255, G: 255, B: 255, A: 255}
	p.BackColor = types.Color{A: 255}
	p.FrameColor = types.Color{A: 255}
	p.Alignment = AlignCenter
	p.RoundRectRadius = 6
	p.FrameWidth = 1
	p.Antialias = true
}

// ParamDisplayState implements ParamDisplayView.
func (p *ParamDisplay) ParamDisplayState() *ParamDisplay { return p }

// ParamDisplayView is implemented by value displays and labels.
type ParamDisplayView interface {
	ControlView
	ParamDisplayState() *ParamDisplay
}

// TextLabel is a display that shows a fixed title.
type TextLabel struct {
	ParamDisplay
	Title    string
	Truncate Truncate
}

// NewTextLabel creates an empty label.
func NewTextLabel() *TextLabel {
	l := &TextLabel{Truncate: TruncateNone}
	l.initParamDisplay()
	return l
}

// TextLabelState implements TextLabelView.
func (l *TextLabel) TextLabelState() *TextLabel { return l }

// TextLabelView is implemented by labels.
type TextLabelView interface {
	ParamDisplayView
	TextLabelState() *TextLabel
}

// SegmentButton is a row or column of selectable segments.
type SegmentButton struct {
	Control
	Segments    []string
	Style       Orientation
	Selection   SelectionMode
	Font        *types.Font
	TextColor   types.Color
	Alignment   Alignment
	Truncate    Truncate
	RoundRadius float64
	FrameWidth  float64
}

// NewSegmentButton creates a horizontal single-selection segment button.
func NewSegmentButton() *SegmentButton {
	s := &SegmentButton{}
	s.initControl()
	s.Style = Horizontal
	s.Selection = SelectSingle
	s.TextColor = types.Color{A: 255}
	s.Alignment = AlignCenter
	s.Truncate = TruncateNone
	s.RoundRadius = 5
	s.FrameWidth = 1
	return s
}

// SegmentState implements SegmentButtonView.
func (s *SegmentButton) SegmentState() *SegmentButton { return s }

// SegmentButtonView is implemented by segment buttons.
type SegmentButtonView interface {
	ControlView
	SegmentState() *SegmentButton
}
