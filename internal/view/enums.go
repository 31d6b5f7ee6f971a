package view

import "strings"

// Autosize is a set of edges a view follows when its parent resizes.
type Autosize uint8

const (
	AutosizeLeft Autosize = 1 << iota
	AutosizeTop
	AutosizeRight
	AutosizeBottom
	AutosizeRow
	AutosizeColumn
)

var autosizeNames = []struct {
	flag Autosize
	name string
}{
	{AutosizeLeft, "left"},
	{AutosizeRight, "right"},
	{AutosizeTop, "top"},
	{AutosizeBottom, "bottom"},
	{AutosizeRow, "row"},
	{AutosizeColumn, "column"},
}

// ParseAutosize collects every edge name mentioned anywhere in s.
func ParseAutosize(s string) Autosize {
	var a Autosize
	for _, n := range autosizeNames {
		if strings.Contains(s, n.name) {
			a |= n.flag
		}
	}
	return a
}

// String renders the flags as space-separated names.
func (a Autosize) String() string {
	names := make([]string, 0, len(autosizeNames))
	for _, n := range autosizeNames {
		if a&n.flag != 0 {
			names = append(names, n.name)
		}
	}
	return strings.Join(names, " ")
}

// Orientation of sliders and segment buttons.
type Orientation string

const (
	Horizontal Orientation = "horizontal"
	Vertical   Orientation = "vertical"
)

// Orientations lists the allowed orientation values.
var Orientations = []string{string(Horizontal), string(Vertical)}

// Alignment of text within its frame.
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// Alignments lists the allowed text alignment values.
var Alignments = []string{string(AlignLeft), string(AlignCenter), string(AlignRight)}

// Truncate mode for text that does not fit.
type Truncate string

const (
	TruncateNone Truncate = "none"
	TruncateHead Truncate = "head"
	TruncateTail Truncate = "tail"
)

// TruncateModes lists the allowed truncate mode values.
var TruncateModes = []string{string(TruncateNone), string(TruncateHead), string(TruncateTail)}

// SliderMode selects how pointer input moves a slider.
type SliderMode string

const (
	SliderTouch         SliderMode = "touch"
	SliderRelativeTouch SliderMode = "relative touch"
	SliderFreeClick     SliderMode = "free click"
)

// SliderModes lists the allowed slider mode values.
var SliderModes = []string{string(SliderTouch), string(SliderRelativeTouch), string(SliderFreeClick)}

// GradientStyle selects linear or radial gradient filling.
type GradientStyle string

const (
	GradientLinear GradientStyle = "linear"
	GradientRadial GradientStyle = "radial"
)

// GradientStyles lists the allowed gradient style values.
var GradientStyles = []string{string(GradientLinear), string(GradientRadial)}

// DrawStyle selects how a container paints its background color.
type DrawStyle string

const (
	DrawStyleStroked          DrawStyle = "stroked"
	DrawStyleFilled           DrawStyle = "filled"
	DrawStyleFilledAndStroked DrawStyle = "filled and stroked"
)

// DrawStyles lists the allowed background draw style values.
var DrawStyles = []string{string(DrawStyleStroked), string(DrawStyleFilled), string(DrawStyleFilledAndStroked)}

// SelectionMode of a segment button.
type SelectionMode string

const (
	SelectSingle   SelectionMode = "single"
	SelectMultiple SelectionMode = "multiple"
)

// SelectionModes lists the allowed selection mode values.
var SelectionModes = []string{string(SelectSingle), string(SelectMultiple)}
