package render

import (
	"image"

	"github.com/youruser/cardforge/internal/faults"
	"github.com/youruser/cardforge/internal/geometry"
	"github.com/youruser/cardforge/internal/style"
)

// Surface is the drawing backend the core composes onto. Both calls are
// effect-only; failures are draw errors. Canvas is the gg-backed
// production implementation; tests substitute a recording fake.
type Surface interface {
	DrawText(text string, box geometry.BBox, st style.Text) error
	DrawImage(img image.Image, box geometry.BBox, st style.Image) error
}

// Rasterizer is implemented by surfaces that keep an in-memory raster.
// The renderer uses it to attach pixels to the RenderedImage.
type Rasterizer interface {
	Image() image.Image
}

// RenderContext binds everything one render pass needs: canvas
// dimensions, dpi, the resource cache, the card data and the drawing
// surface. It is built per render and structurally immutable afterward;
// only the surface mutates (by accumulating draws).
type RenderContext struct {
	canvasW, canvasH int
	dpi              int
	resources        *ResourceCache
	data             CardData
	config           CardConfig
	surface          Surface
}

// NewRenderContext validates the canvas binding eagerly: non-positive
// dimensions or dpi fail immediately with a validation error. A nil
// resources cache gets a fresh one.
func NewRenderContext(canvasW, canvasH, dpi int, resources *ResourceCache, data CardData, config CardConfig, surface Surface) (*RenderContext, error) {
	if canvasW <= 0 || canvasH <= 0 {
		return nil, faults.Validation("canvas dimensions must be positive: %dx%d", canvasW, canvasH)
	}
	if dpi <= 0 {
		return nil, faults.Validation("dpi must be positive, got %d", dpi)
	}
	if surface == nil {
		return nil, faults.Validation("render context requires a drawing surface")
	}
	if resources == nil {
		resources = NewResourceCache()
	}
	return &RenderContext{
		canvasW:   canvasW,
		canvasH:   canvasH,
		dpi:       dpi,
		resources: resources,
		data:      data,
		config:    config,
		surface:   surface,
	}, nil
}

// CanvasSize returns the bound canvas dimensions.
func (ctx *RenderContext) CanvasSize() (int, int) { return ctx.canvasW, ctx.canvasH }

// DPI returns the bound print density.
func (ctx *RenderContext) DPI() int { return ctx.dpi }

// Resources returns the cache shared by this render.
func (ctx *RenderContext) Resources() *ResourceCache { return ctx.resources }

// Config returns the global card configuration.
func (ctx *RenderContext) Config() CardConfig { return ctx.config }

// Value resolves a card data key with the supplied fallback.
func (ctx *RenderContext) Value(key, fallback string) string {
	return ctx.data.Get(key, fallback)
}

// Image loads an image handle through the resource cache.
func (ctx *RenderContext) Image(path string) (image.Image, error) {
	return ctx.resources.GetImage(path)
}

// DrawText forwards to the surface.
func (ctx *RenderContext) DrawText(text string, box geometry.BBox, st style.Text) error {
	return ctx.surface.DrawText(text, box, st)
}

// DrawImage forwards to the surface.
func (ctx *RenderContext) DrawImage(img image.Image, box geometry.BBox, st style.Image) error {
	return ctx.surface.DrawImage(img, box, st)
}
