// Package builders provides the builders for the stock view kinds and the
// explicit table used to register them.
package builders

import (
	"github.com/conneroisu/viewforge/internal/registry"
)

// Tags of the stock view kinds.
const (
	TagView           = "View"
	TagContainer      = "Container"
	TagControl        = "Control"
	TagKnob           = "Knob"
	TagAnimKnob       = "AnimKnob"
	TagSlider         = "Slider"
	TagParamDisplay   = "ParamDisplay"
	TagTextLabel      = "TextLabel"
	TagSegmentButton  = "SegmentButton"
	TagVerticalSwitch = "VerticalSwitch"
	TagGradientView   = "GradientView"
)

// All returns a fresh instance of every stock builder, roots first.
func All() []registry.Builder {
	return []registry.Builder{
		viewBuilder(),
		containerBuilder(),
		gradientViewBuilder(),
		controlBuilder(),
		knobBuilder(),
		animKnobBuilder(),
		sliderBuilder(),
		paramDisplayBuilder(),
		textLabelBuilder(),
		segmentButtonBuilder(),
		verticalSwitchBuilder(),
	}
}

// RegisterAll registers every stock builder into reg.
func RegisterAll(reg *registry.Registry) error {
	for _, b := range All() {
		if err := reg.Register(b); err != nil {
			return err
		}
	}
	return nil
}
