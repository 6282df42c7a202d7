package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/youruser/cardforge/internal/faults"
	"github.com/youruser/cardforge/internal/geometry"
	"github.com/youruser/cardforge/internal/style"
)

// Canvas is the production drawing surface: a gg raster context plus the
// render's resource cache for font faces. Draw calls are purely
// additive; later layers paint over earlier ones.
type Canvas struct {
	dc        *gg.Context
	resources *ResourceCache
}

// NewCanvas allocates a white canvas of the given size.
func NewCanvas(w, h int, resources *ResourceCache) *Canvas {
	dc := gg.NewContext(w, h)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	return &Canvas{dc: dc, resources: resources}
}

// Image returns the composed raster.
func (c *Canvas) Image() image.Image { return c.dc.Image() }

// DrawText draws one text block into box. The face comes from the
// resource cache, so a missing font surfaces as a resource error; all
// other failures here are draw errors.
func (c *Canvas) DrawText(text string, box geometry.BBox, st style.Text) error {
	face, err := c.resources.GetFont(st.FontPath, st.FontSize)
	if err != nil {
		return err
	}
	fill, err := style.ParseColor(st.Color)
	if err != nil {
		return faults.Draw("text color: %v", err)
	}
	fill.A = scaleAlpha(fill.A, st.Opacity)

	c.dc.SetFontFace(face)

	if st.StrokeColor != "" && st.StrokeWidth > 0 {
		stroke, err := style.ParseColor(st.StrokeColor)
		if err != nil {
			return faults.Draw("stroke color: %v", err)
		}
		stroke.A = scaleAlpha(stroke.A, st.Opacity)
		// Outline approximation: repaint the text offset in eight
		// directions before the fill pass.
		w := float64(st.StrokeWidth)
		for _, d := range [][2]float64{
			{-w, -w}, {0, -w}, {w, -w},
			{-w, 0}, {w, 0},
			{-w, w}, {0, w}, {w, w},
		} {
			c.paintText(text, box, st, stroke, d[0], d[1])
		}
	}
	c.paintText(text, box, st, fill, 0, 0)
	return nil
}

func (c *Canvas) paintText(text string, box geometry.BBox, st style.Text, col color.NRGBA, dx, dy float64) {
	c.dc.SetColor(col)
	if st.Wrap {
		c.dc.DrawStringWrapped(text, float64(box.X)+dx, float64(box.Y)+dy, 0, 0,
			float64(box.W), st.LineHeight, ggAlign(st.Align))
		return
	}

	line := text
	if st.Ellipsis {
		line = c.truncateToWidth(line, float64(box.W), st.LetterSpacing)
	}
	tw := c.lineWidth(line, st.LetterSpacing)
	x := float64(box.X)
	switch st.Align {
	case geometry.AlignCenter:
		x += (float64(box.W) - tw) / 2
	case geometry.AlignRight:
		x += float64(box.W) - tw
	}
	// Single-line text sits on a baseline one font height below the top
	// of the box.
	y := float64(box.Y) + c.dc.FontHeight()
	if st.LetterSpacing != 0 {
		c.drawSpaced(line, x+dx, y+dy, st.LetterSpacing)
		return
	}
	c.dc.DrawString(line, x+dx, y+dy)
}

// lineWidth measures a single line including letter spacing.
func (c *Canvas) lineWidth(s string, spacing float64) float64 {
	if spacing == 0 {
		w, _ := c.dc.MeasureString(s)
		return w
	}
	runes := []rune(s)
	var total float64
	for _, r := range runes {
		w, _ := c.dc.MeasureString(string(r))
		total += w
	}
	if len(runes) > 1 {
		total += spacing * float64(len(runes)-1)
	}
	return total
}

func (c *Canvas) drawSpaced(s string, x, y, spacing float64) {
	for _, r := range s {
		c.dc.DrawString(string(r), x, y)
		w, _ := c.dc.MeasureString(string(r))
		x += w + spacing
	}
}

func (c *Canvas) truncateToWidth(s string, maxW float64, spacing float64) string {
	if c.lineWidth(s, spacing) <= maxW {
		return s
	}
	const ellipsis = "…"
	runes := []rune(s)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		if c.lineWidth(string(runes)+ellipsis, spacing) <= maxW {
			return string(runes) + ellipsis
		}
	}
	return ellipsis
}

// DrawImage fits the handle into box per the style, applies contrast,
// brightness, tint and opacity, then paints it, clipped to rounded
// corners when a radius is set. Cached handles are shared read-only
// across renders, so every adjustment works on a copy.
func (c *Canvas) DrawImage(img image.Image, box geometry.BBox, st style.Image) error {
	if img == nil {
		return faults.Draw("nil image handle")
	}
	if box.W <= 0 || box.H <= 0 {
		return faults.Draw("image box must be positive: %s", box)
	}

	fitted := fitImage(img, box.W, box.H, st.Fit)
	if st.Contrast != 0 {
		fitted = imaging.AdjustContrast(fitted, st.Contrast*100)
	}
	if st.Brightness != 0 {
		fitted = imaging.AdjustBrightness(fitted, st.Brightness*100)
	}
	if st.Tint != "" {
		tint, err := style.ParseColor(st.Tint)
		if err != nil {
			return faults.Draw("tint: %v", err)
		}
		fitted = applyTint(fitted, tint)
	}
	if st.Opacity < 1 {
		fitted = applyOpacity(fitted, st.Opacity)
	}

	// Contain-style fits can be smaller than the box; center them,
	// flooring like anchor placement does.
	b := fitted.Bounds()
	x := box.X + (box.W-b.Dx())/2
	y := box.Y + (box.H-b.Dy())/2

	if st.Radius > 0 {
		c.dc.DrawRoundedRectangle(float64(box.X), float64(box.Y),
			float64(box.W), float64(box.H), float64(st.Radius))
		c.dc.Clip()
		defer c.dc.ResetClip()
	}
	c.dc.DrawImage(fitted, x, y)
	return nil
}

func ggAlign(a geometry.Align) gg.Align {
	switch a {
	case geometry.AlignCenter:
		return gg.AlignCenter
	case geometry.AlignRight:
		return gg.AlignRight
	default:
		return gg.AlignLeft
	}
}

func fitImage(img image.Image, w, h int, mode geometry.FitMode) image.Image {
	switch mode {
	case geometry.FitCover:
		return imaging.Fill(img, w, h, imaging.Center, imaging.Lanczos)
	case geometry.FitContain:
		return imaging.Fit(img, w, h, imaging.Lanczos)
	case geometry.FitScaleDown:
		b := img.Bounds()
		if b.Dx() <= w && b.Dy() <= h {
			return img
		}
		return imaging.Fit(img, w, h, imaging.Lanczos)
	}
	panic("render: unhandled fit mode " + string(mode))
}

func applyTint(img image.Image, tint color.NRGBA) image.Image {
	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	// Half-strength uniform overlay scaled by the tint's own alpha.
	overlay := image.NewUniform(color.NRGBA{R: tint.R, G: tint.G, B: tint.B, A: tint.A / 2})
	draw.Draw(out, out.Bounds(), overlay, image.Point{}, draw.Over)
	return out
}

func applyOpacity(img image.Image, opacity float64) image.Image {
	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	mask := image.NewUniform(color.Alpha{A: scaleAlpha(0xff, opacity)})
	draw.DrawMask(out, out.Bounds(), img, b.Min, mask, image.Point{}, draw.Over)
	return out
}

func scaleAlpha(a uint8, opacity float64) uint8 {
	if opacity >= 1 {
		return a
	}
	if opacity <= 0 {
		return 0
	}
	return uint8(float64(a)*opacity + 0.5)
}
