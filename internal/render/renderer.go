// Package render orchestrates card composition: it validates a template,
// binds a per-render context and paints every enabled feature in layer
// order onto a drawing surface.
package render

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/youruser/cardforge/internal/feature"
	"github.com/youruser/cardforge/internal/template"
)

// CardRenderer renders templates against card data. The zero
// configuration gives every render a fresh resource cache and a gg
// canvas; options share a cache across renders, inject a logger or swap
// the drawing surface.
//
// A renderer is safe for concurrent Render calls: each call builds its
// own context and canvas, and a shared cache synchronizes internally
// and never hands the same font face to two callers.
type CardRenderer struct {
	resources *ResourceCache
	surface   Surface
	log       *zap.Logger
}

// Option configures a CardRenderer.
type Option func(*CardRenderer)

// WithSharedCache makes all renders reuse one resource cache, so decoded
// fonts and images carry over between cards. Sharing is the caller's
// choice; by default every render gets a fresh cache.
func WithSharedCache(c *ResourceCache) Option {
	return func(r *CardRenderer) { r.resources = c }
}

// WithLogger attaches a logger for per-render progress.
func WithLogger(log *zap.Logger) Option {
	return func(r *CardRenderer) { r.log = log }
}

// WithSurface replaces the gg canvas with a caller-supplied surface for
// every render. Intended for alternative backends and tests; when the
// surface does not implement Rasterizer, the RenderedImage carries
// dimensions only.
func WithSurface(s Surface) Option {
	return func(r *CardRenderer) { r.surface = s }
}

// NewCardRenderer builds a renderer.
func NewCardRenderer(opts ...Option) *CardRenderer {
	r := &CardRenderer{log: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render validates the template, builds a context and composes all
// enabled features in layer order. Any validation, resource or draw
// error aborts the whole render; no partial image is returned.
func (r *CardRenderer) Render(tpl *template.Template, data CardData, cfg CardConfig) (*RenderedImage, error) {
	if err := tpl.Validate(); err != nil {
		return nil, err
	}

	cache := r.resources
	if cache == nil {
		cache = NewResourceCache()
	}
	surface := r.surface
	if surface == nil {
		surface = NewCanvas(tpl.Resolution.Width, tpl.Resolution.Height, cache)
	}

	ctx, err := NewRenderContext(tpl.Resolution.Width, tpl.Resolution.Height,
		tpl.DPI, cache, data, cfg, surface)
	if err != nil {
		return nil, err
	}

	r.log.Debug("rendering card",
		zap.String("template", tpl.Name),
		zap.String("resolution", tpl.Resolution.String()),
		zap.Int("features", len(tpl.Features)))

	if err := r.composeLayers(tpl.FeaturesByLayer(), ctx); err != nil {
		return nil, err
	}

	var raster *RenderedImage
	if rz, ok := surface.(Rasterizer); ok {
		raster, err = NewRenderedImage(tpl.Resolution.Width, tpl.Resolution.Height, tpl.DPI, rz.Image())
	} else {
		raster, err = NewRenderedImage(tpl.Resolution.Width, tpl.Resolution.Height, tpl.DPI, nil)
	}
	return raster, err
}

// composeLayers paints features strictly in the given order; later draws
// may depend on painting over earlier ones, so reordering would be a
// correctness violation. Disabled features are filtered here and never
// rendered.
func (r *CardRenderer) composeLayers(features []feature.Feature, ctx *RenderContext) error {
	for _, f := range features {
		def := f.Def()
		if !def.Enabled {
			continue
		}
		r.log.Debug("rendering feature",
			zap.String("id", def.ID),
			zap.Int("layer", def.Layer))
		if err := f.Render(ctx); err != nil {
			return fmt.Errorf("render feature %q: %w", def.ID, err)
		}
	}
	return nil
}
