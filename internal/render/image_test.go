package render

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/youruser/cardforge/internal/faults"
)

func TestNewRenderedImageValidatesDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 600}, {800, 0}, {-1, 600}} {
		_, err := NewRenderedImage(dims[0], dims[1], 300, nil)
		if err == nil || !faults.IsValidation(err) {
			t.Fatalf("%v: expected validation error, got %v", dims, err)
		}
	}
}

func TestEncodePNGRoundTrip(t *testing.T) {
	raster := image.NewNRGBA(image.Rect(0, 0, 8, 4))
	ri, err := NewRenderedImage(8, 4, 300, raster)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := ri.EncodePNG(&buf); err != nil {
		t.Fatal(err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Bounds().Dx() != 8 || decoded.Bounds().Dy() != 4 {
		t.Fatalf("got bounds %v", decoded.Bounds())
	}
}

func TestEncodePNGWithoutRasterIsIOError(t *testing.T) {
	ri, err := NewRenderedImage(8, 4, 300, nil)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := ri.EncodePNG(&buf); err == nil || !faults.IsIO(err) {
		t.Fatalf("expected io error, got %v", err)
	}
}

func TestSavePNGAndPDF(t *testing.T) {
	dir := t.TempDir()
	raster := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	ri, err := NewRenderedImage(16, 16, 300, raster)
	if err != nil {
		t.Fatal(err)
	}

	pngPath := filepath.Join(dir, "card.png")
	if err := ri.SavePNG(pngPath); err != nil {
		t.Fatal(err)
	}
	if fi, err := os.Stat(pngPath); err != nil || fi.Size() == 0 {
		t.Fatalf("png not written: %v", err)
	}

	pdfPath := filepath.Join(dir, "card.pdf")
	if err := ri.SavePDF(pdfPath); err != nil {
		t.Fatal(err)
	}
	if fi, err := os.Stat(pdfPath); err != nil || fi.Size() == 0 {
		t.Fatalf("pdf not written: %v", err)
	}
}

func TestSavePNGBadPathIsIOError(t *testing.T) {
	raster := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	ri, _ := NewRenderedImage(4, 4, 300, raster)
	err := ri.SavePNG(filepath.Join("/no/such/dir", "card.png"))
	if err == nil || !faults.IsIO(err) {
		t.Fatalf("expected io error, got %v", err)
	}
}
