package builders

import (
	"github.com/conneroisu/viewforge/internal/attributes"
	"github.com/conneroisu/viewforge/internal/description"
	"github.com/conneroisu/viewforge/internal/types"
	"github.com/conneroisu/viewforge/internal/view"
)

// multiFrame is the filmstrip helper composed into every builder whose
// state draws from stacked sub-images.
type multiFrame[T any] struct {
	state  func(T) *view.MultiFrame
	bitmap func(T) *types.Bitmap
}

func (m multiFrame[T]) fields() []field[T] {
	return []field[T]{
		floatField("height-of-one-image", func(t T) *float64 { return &m.state(t).HeightOfOneImage }),
		intField("sub-pixmaps", func(t T) *int32 { return &m.state(t).SubPixmaps }),
	}
}

func (m multiFrame[T]) finish(t T, _ attributes.Set, _ description.Description) {
	m.state(t).SyncFrames(m.bitmap(t))
}
