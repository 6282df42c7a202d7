package render

import (
	"bytes"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/jung-kurt/gofpdf"

	"github.com/youruser/cardforge/internal/faults"
)

// RenderedImage is the output of one render: final dimensions, the print
// density they were composed at and, when the surface rasterizes, the
// pixels. Encoding is the caller's step; failures there are io errors.
type RenderedImage struct {
	width  int
	height int
	dpi    int
	img    image.Image
}

// NewRenderedImage packages a render result. Dimensions must be
// positive; img may be nil for surfaces that keep no raster.
func NewRenderedImage(width, height, dpi int, img image.Image) (*RenderedImage, error) {
	if width <= 0 || height <= 0 {
		return nil, faults.Validation("image dimensions must be positive: %dx%d", width, height)
	}
	return &RenderedImage{width: width, height: height, dpi: dpi, img: img}, nil
}

func (ri *RenderedImage) Width() int  { return ri.width }
func (ri *RenderedImage) Height() int { return ri.height }

// Image returns the raster, or nil when the surface kept none.
func (ri *RenderedImage) Image() image.Image { return ri.img }

// EncodePNG writes the raster as PNG.
func (ri *RenderedImage) EncodePNG(w io.Writer) error {
	if ri.img == nil {
		return faults.IO("no raster to encode")
	}
	if err := png.Encode(w, ri.img); err != nil {
		return faults.IO("encode png: %v", err)
	}
	return nil
}

// SavePNG writes the raster as a PNG file.
func (ri *RenderedImage) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return faults.IO("create %q: %v", path, err)
	}
	if err := ri.EncodePNG(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return faults.IO("write %q: %v", path, err)
	}
	return nil
}

// SavePDF writes a single-page PDF with the raster placed at its
// physical size: pixel dimensions divided by dpi, in points.
func (ri *RenderedImage) SavePDF(path string) error {
	if ri.img == nil {
		return faults.IO("no raster to encode")
	}
	dpi := ri.dpi
	if dpi <= 0 {
		dpi = 300
	}
	wpt := float64(ri.width) * 72 / float64(dpi)
	hpt := float64(ri.height) * 72 / float64(dpi)

	var buf bytes.Buffer
	if err := png.Encode(&buf, ri.img); err != nil {
		return faults.IO("encode png for pdf: %v", err)
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: wpt, Ht: hpt},
	})
	pdf.AddPage()
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("card", opts, &buf)
	pdf.ImageOptions("card", 0, 0, wpt, hpt, false, opts, 0, "")
	if err := pdf.OutputFileAndClose(path); err != nil {
		return faults.IO("write pdf %q: %v", path, err)
	}
	return nil
}
