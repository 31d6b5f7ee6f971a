package description

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	verrors "github.com/conneroisu/viewforge/internal/errors"
	"github.com/conneroisu/viewforge/internal/types"
)

// File is the YAML layout of a resource table.
//
//	colors:
//	  accent: "#ff8800ff"
//	fonts:
//	  label: {family: Arial, size: 12, bold: true}
//	bitmaps:
//	  knob: {path: knob.png, width: 40, height: 2560}
//	gradients:
//	  Glow:
//	    - {offset: 0, color: "#000000ff"}
//	    - {offset: 1, color: accent}
//	tags:
//	  Gain: 100
//	variables:
//	  margin: "10, 10"
type File struct {
	Colors    map[string]string     `yaml:"colors"`
	Fonts     map[string]FontSpec   `yaml:"fonts"`
	Bitmaps   map[string]BitmapSpec `yaml:"bitmaps"`
	Gradients map[string][]StopSpec `yaml:"gradients"`
	Tags      map[string]int32      `yaml:"tags"`
	Variables map[string]string     `yaml:"variables"`
}

// FontSpec describes a font entry.
type FontSpec struct {
	Family string  `yaml:"family"`
	Size   float64 `yaml:"size"`
	Bold   bool    `yaml:"bold"`
	Italic bool    `yaml:"italic"`
}

// BitmapSpec describes a bitmap entry.
type BitmapSpec struct {
	Path   string  `yaml:"path"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// StopSpec describes one gradient stop. Color may be a hex literal or the
// name of an entry in the colors table.
type StopSpec struct {
	Offset float64 `yaml:"offset"`
	Color  string  `yaml:"color"`
}

// LoadFile reads a resource table from path.
func LoadFile(path string) (*Resources, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, verrors.NewIOError(verrors.ErrCodeFileNotFound, "cannot open resource file "+path, err)
	}
	defer f.Close()
	return Load(f)
}

// Load decodes a resource table.
func Load(r io.Reader) (*Resources, error) {
	var file File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && err != io.EOF {
		return nil, verrors.NewIOError(verrors.ErrCodeDecodeFailed, "cannot decode resource file", err)
	}
	return file.Resources()
}

// Resources converts the decoded file into a resource table.
func (f *File) Resources() (*Resources, error) {
	res := NewResources()

	for name, text := range f.Colors {
		c, ok := types.ParseHexColor(text)
		if !ok {
			return nil, verrors.NewValidationError(verrors.ErrCodeValidation,
				fmt.Sprintf("color %q: %q is not #rrggbb or #rrggbbaa", name, text))
		}
		res.SetColor(name, c)
	}
	for name, spec := range f.Fonts {
		res.SetFont(name, &types.Font{Family: spec.Family, Size: spec.Size, Bold: spec.Bold, Italic: spec.Italic})
	}
	for name, spec := range f.Bitmaps {
		res.SetBitmap(name, &types.Bitmap{Path: spec.Path, Width: spec.Width, Height: spec.Height})
	}
	for name, stops := range f.Gradients {
		g := &types.Gradient{Stops: make([]types.ColorStop, 0, len(stops))}
		for _, stop := range stops {
			c, ok := res.Color(stop.Color)
			if !ok {
				return nil, verrors.NewValidationError(verrors.ErrCodeValidation,
					fmt.Sprintf("gradient %q: unknown color %q", name, stop.Color))
			}
			g.Stops = append(g.Stops, types.ColorStop{Offset: stop.Offset, Color: c})
		}
		res.RegisterGradient(name, g)
	}
	for name, tag := range f.Tags {
		res.SetControlTag(name, tag)
	}
	for name, value := range f.Variables {
		res.SetVariable(name, value)
	}
	return res, nil
}
