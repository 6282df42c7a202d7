package feature

import (
	stdimage "image"
	"testing"

	"github.com/youruser/cardforge/internal/faults"
	"github.com/youruser/cardforge/internal/geometry"
	"github.com/youruser/cardforge/internal/style"
)

type textCall struct {
	text string
	box  geometry.BBox
	st   style.Text
}

type imageCall struct {
	img stdimage.Image
	box geometry.BBox
	st  style.Image
}

// fakeContext records draw calls and serves values from a plain map.
type fakeContext struct {
	w, h       int
	data       map[string]string
	images     map[string]stdimage.Image
	imageErr   error
	textCalls  []textCall
	imageCalls []imageCall
}

func newFakeContext(w, h int) *fakeContext {
	return &fakeContext{w: w, h: h, data: map[string]string{}, images: map[string]stdimage.Image{}}
}

func (c *fakeContext) CanvasSize() (int, int) { return c.w, c.h }

func (c *fakeContext) Value(key, fallback string) string {
	if v, ok := c.data[key]; ok {
		return v
	}
	return fallback
}

func (c *fakeContext) Image(path string) (stdimage.Image, error) {
	if c.imageErr != nil {
		return nil, c.imageErr
	}
	if img, ok := c.images[path]; ok {
		return img, nil
	}
	return stdimage.NewNRGBA(stdimage.Rect(0, 0, 1, 1)), nil
}

func (c *fakeContext) DrawText(text string, box geometry.BBox, st style.Text) error {
	c.textCalls = append(c.textCalls, textCall{text, box, st})
	return nil
}

func (c *fakeContext) DrawImage(img stdimage.Image, box geometry.BBox, st style.Image) error {
	c.imageCalls = append(c.imageCalls, imageCall{img, box, st})
	return nil
}

func TestBaseValidate(t *testing.T) {
	cases := []struct {
		name    string
		feature *Text
		wantMsg string
	}{
		{"empty id", &Text{Base: Base{Name: "title"}, Style: style.DefaultText()}, "id cannot be empty"},
		{"empty name", &Text{Base: Base{ID: "title"}, Style: style.DefaultText()}, "name cannot be empty"},
		{"negative width", &Text{Base: Base{ID: "t", Name: "t", Box: geometry.BBox{W: -1}}, Style: style.DefaultText()}, "non-negative"},
		{"negative height", &Text{Base: Base{ID: "t", Name: "t", Box: geometry.BBox{H: -5}}, Style: style.DefaultText()}, "non-negative"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.feature.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !faults.IsValidation(err) {
				t.Fatalf("expected validation kind, got %v", err)
			}
		})
	}
}

func TestValidateChecksStyle(t *testing.T) {
	f := NewText("title", "Title", "title")
	f.Style.FontSize = 0
	if err := f.Validate(); err == nil || !faults.IsValidation(err) {
		t.Fatalf("expected style validation to propagate, got %v", err)
	}
}

func TestValidateIgnoresResolvedGeometry(t *testing.T) {
	// A zero-sized declared box is valid; it resolves to full canvas at
	// layout time.
	f := NewText("bg", "Background", "bg")
	if err := f.Validate(); err != nil {
		t.Fatalf("zero-sized box should validate, got %v", err)
	}
}

func TestTextRenderIssuesOneDrawCall(t *testing.T) {
	ctx := newFakeContext(800, 600)
	ctx.data["title"] = "Hello"

	f := NewText("title", "Title", "title")
	f.Box = geometry.BBox{X: 10, Y: 10, W: 200, H: 50}
	if err := f.Render(ctx); err != nil {
		t.Fatal(err)
	}
	if len(ctx.textCalls) != 1 {
		t.Fatalf("expected 1 drawText call, got %d", len(ctx.textCalls))
	}
	call := ctx.textCalls[0]
	if call.text != "Hello" {
		t.Fatalf("got text %q", call.text)
	}
	want := geometry.BBox{X: 10, Y: 10, W: 200, H: 50}
	if call.box != want {
		t.Fatalf("got box %v, want %v", call.box, want)
	}
}

func TestTextRenderUsesFallback(t *testing.T) {
	ctx := newFakeContext(800, 600)
	f := NewText("title", "Title", "missing")
	f.Fallback = "Untitled"
	if err := f.Render(ctx); err != nil {
		t.Fatal(err)
	}
	if got := ctx.textCalls[0].text; got != "Untitled" {
		t.Fatalf("got %q, want fallback", got)
	}
}

func TestTextRenderIsIdempotent(t *testing.T) {
	ctx := newFakeContext(800, 600)
	ctx.data["title"] = "Same"
	f := NewText("title", "Title", "title")
	f.Anchor = geometry.AnchorCenter
	f.Box = geometry.BBox{W: 100, H: 50}

	if err := f.Render(ctx); err != nil {
		t.Fatal(err)
	}
	if err := f.Render(ctx); err != nil {
		t.Fatal(err)
	}
	if len(ctx.textCalls) != 2 || ctx.textCalls[0] != ctx.textCalls[1] {
		t.Fatalf("repeated renders must repeat identical calls, got %+v", ctx.textCalls)
	}
}

func TestImageRenderCarriesResolvedGeometry(t *testing.T) {
	ctx := newFakeContext(800, 600)
	ctx.data["art"] = "art.png"

	f := NewImage("art", "Artwork", "art")
	f.Anchor = geometry.AnchorBottomRight
	f.Box = geometry.BBox{W: 100, H: 50}
	if err := f.Render(ctx); err != nil {
		t.Fatal(err)
	}
	if len(ctx.imageCalls) != 1 {
		t.Fatalf("expected 1 drawImage call, got %d", len(ctx.imageCalls))
	}
	want := geometry.BBox{X: 700, Y: 550, W: 100, H: 50}
	if ctx.imageCalls[0].box != want {
		t.Fatalf("got box %v, want %v", ctx.imageCalls[0].box, want)
	}
}

func TestImageRenderPropagatesResourceError(t *testing.T) {
	ctx := newFakeContext(800, 600)
	ctx.imageErr = faults.Resource("open image %q: no such file", "gone.png")

	f := NewImage("art", "Artwork", "art")
	err := f.Render(ctx)
	if err == nil || !faults.IsResource(err) {
		t.Fatalf("expected resource error, got %v", err)
	}
	if len(ctx.imageCalls) != 0 {
		t.Fatal("no draw call may be issued after a failed load")
	}
}

func TestQRRenderDrawsEncodedImage(t *testing.T) {
	ctx := newFakeContext(800, 600)
	ctx.data["share_url"] = "https://example.com/card/42"

	f := NewQR("qr", "Share QR", "share_url")
	f.Box = geometry.BBox{X: 650, Y: 450, W: 120, H: 120}
	if err := f.Render(ctx); err != nil {
		t.Fatal(err)
	}
	if len(ctx.imageCalls) != 1 {
		t.Fatalf("expected 1 drawImage call, got %d", len(ctx.imageCalls))
	}
	if ctx.imageCalls[0].img == nil {
		t.Fatal("expected an encoded qr image handle")
	}
	bounds := ctx.imageCalls[0].img.Bounds()
	if bounds.Dx() != 120 || bounds.Dy() != 120 {
		t.Fatalf("qr should be sized to the short box side, got %v", bounds)
	}
}

func TestQRRenderEmptyContentIsResourceError(t *testing.T) {
	ctx := newFakeContext(800, 600)
	f := NewQR("qr", "Share QR", "missing")
	err := f.Render(ctx)
	if err == nil || !faults.IsResource(err) {
		t.Fatalf("expected resource error for empty content, got %v", err)
	}
}

func TestLayoutIsPureAndRepeatable(t *testing.T) {
	f := NewImage("art", "Artwork", "art")
	f.Anchor = geometry.AnchorCenter
	f.Box = geometry.BBox{W: 100, H: 50}

	first := f.Layout(800, 600)
	second := f.Layout(800, 600)
	if first != second {
		t.Fatalf("layout must be deterministic: %v vs %v", first, second)
	}
	if want := (geometry.BBox{X: 350, Y: 275, W: 100, H: 50}); first != want {
		t.Fatalf("got %v, want %v", first, want)
	}
}
