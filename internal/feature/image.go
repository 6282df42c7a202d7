package feature

import (
	"github.com/youruser/cardforge/internal/geometry"
	"github.com/youruser/cardforge/internal/style"
)

// Image renders a data-bound image inside its box. The bound value is a
// path or URL resolved through the render's resource cache.
type Image struct {
	Base
	Key      string      `json:"key" yaml:"key"`
	Fallback string      `json:"fallback" yaml:"fallback"`
	Style    style.Image `json:"style" yaml:"style"`
}

// NewImage builds an enabled image feature on layer 0, anchored top-left
// with a full-canvas box and the default image style.
func NewImage(id, name, key string) *Image {
	return &Image{
		Base: Base{
			ID:      id,
			Name:    name,
			Anchor:  geometry.AnchorTopLeft,
			Enabled: true,
		},
		Key:   key,
		Style: style.DefaultImage(),
	}
}

func (f *Image) Validate() error {
	if err := f.Base.validate(); err != nil {
		return err
	}
	return f.Style.Validate()
}

// Render resolves the layout and the bound image path, loads the handle
// through the cache and issues the single drawImage call. A failed load
// aborts the render; there is no silent skip.
func (f *Image) Render(ctx Context) error {
	w, h := ctx.CanvasSize()
	box := f.Layout(w, h)
	path := ctx.Value(f.Key, f.Fallback)
	img, err := ctx.Image(path)
	if err != nil {
		return err
	}
	return ctx.DrawImage(img, box, f.Style)
}
