package render

import (
	"testing"

	"github.com/youruser/cardforge/internal/faults"
)

func TestNewRenderContextValidatesBinding(t *testing.T) {
	surface := &recordingSurface{}
	cases := []struct {
		name    string
		w, h    int
		dpi     int
		surface Surface
	}{
		{"zero width", 0, 600, 300, surface},
		{"negative height", 800, -1, 300, surface},
		{"zero dpi", 800, 600, 0, surface},
		{"nil surface", 800, 600, 300, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewRenderContext(tc.w, tc.h, tc.dpi, nil, NewCardData(nil), CardConfig{}, tc.surface)
			if err == nil {
				t.Fatal("expected error")
			}
			if !faults.IsValidation(err) {
				t.Fatalf("expected validation kind, got %v", err)
			}
		})
	}
}

func TestRenderContextValueLookup(t *testing.T) {
	data := NewCardData(map[string]string{"title": "Hello"})
	ctx, err := NewRenderContext(800, 600, 300, nil, data, CardConfig{}, &recordingSurface{})
	if err != nil {
		t.Fatal(err)
	}
	if got := ctx.Value("title", "fb"); got != "Hello" {
		t.Fatalf("got %q", got)
	}
	if got := ctx.Value("missing", "fb"); got != "fb" {
		t.Fatalf("missing key must fall back, got %q", got)
	}
	w, h := ctx.CanvasSize()
	if w != 800 || h != 600 || ctx.DPI() != 300 {
		t.Fatalf("binding lost: %dx%d @%d", w, h, ctx.DPI())
	}
}

func TestCardDataNilMap(t *testing.T) {
	d := NewCardData(nil)
	if got := d.Get("anything", "fb"); got != "fb" {
		t.Fatalf("nil-backed data must fall back, got %q", got)
	}
	if d.Len() != 0 {
		t.Fatalf("got len %d", d.Len())
	}
}

func TestCardConfigResolveToken(t *testing.T) {
	cfg := CardConfig{Tokens: map[string]string{"primary": "#FF0000"}}
	if got := cfg.ResolveToken("$primary"); got != "#FF0000" {
		t.Fatalf("got %q", got)
	}
	if got := cfg.ResolveToken("$unknown"); got != "$unknown" {
		t.Fatalf("unknown token must pass through, got %q", got)
	}
	if got := cfg.ResolveToken("#00FF00"); got != "#00FF00" {
		t.Fatalf("plain value must pass through, got %q", got)
	}
}
