// Package feature defines the visual elements placed on a card template.
//
// A feature is one layered element (text, image, QR code) that knows how
// to resolve its own geometry against a canvas and how to render itself
// through a drawing context. The variant set is closed; new kinds are
// added here, alongside Text, Image and QR.
package feature

import (
	stdimage "image"

	"github.com/youruser/cardforge/internal/faults"
	"github.com/youruser/cardforge/internal/geometry"
	"github.com/youruser/cardforge/internal/style"
)

// Context is the capability a feature renders through: canvas size for
// layout, card data lookup, cached resource access and the two draw
// operations of the underlying surface.
//
// render.RenderContext is the production implementation.
type Context interface {
	CanvasSize() (w, h int)
	// Value resolves a card data key, returning fallback when the key
	// is absent. Missing keys never error.
	Value(key, fallback string) string
	// Image loads an image handle through the render's resource cache.
	Image(path string) (stdimage.Image, error)
	DrawText(text string, box geometry.BBox, st style.Text) error
	DrawImage(img stdimage.Image, box geometry.BBox, st style.Image) error
}

// Feature is one element of a template. Layout is pure and deterministic;
// Render issues exactly one draw call against the context, so invoking it
// twice with the same context and data repeats the same call.
type Feature interface {
	// Def exposes the shared placement fields.
	Def() *Base
	// Layout resolves the declared box against the canvas size.
	Layout(canvasW, canvasH int) geometry.BBox
	// Validate checks declared values only; it never inspects
	// anchor-resolved geometry.
	Validate() error
	Render(ctx Context) error
}

// Base holds the placement fields shared by every variant. Embed it and
// the variant only adds its data binding and style.
type Base struct {
	ID      string          `json:"id" yaml:"id"`
	Name    string          `json:"name" yaml:"name"`
	Layer   int             `json:"layer" yaml:"layer"`
	Anchor  geometry.Anchor `json:"anchor" yaml:"anchor"`
	Box     geometry.BBox   `json:"box" yaml:"box"`
	Enabled bool            `json:"enabled" yaml:"enabled"`
}

// Def returns the shared placement fields.
func (b *Base) Def() *Base { return b }

// Layout resolves the declared box against the canvas via the anchor.
func (b *Base) Layout(canvasW, canvasH int) geometry.BBox {
	return b.Anchor.Place(b.Box, canvasW, canvasH)
}

func (b *Base) validate() error {
	if b.ID == "" {
		return faults.Validation("feature id cannot be empty")
	}
	if b.Name == "" {
		return faults.Validation("feature name cannot be empty")
	}
	if b.Box.W < 0 || b.Box.H < 0 {
		return faults.Validation("bounding box dimensions must be non-negative: %s", b.Box)
	}
	return nil
}
