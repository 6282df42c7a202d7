package feature

import (
	"github.com/youruser/cardforge/internal/geometry"
	"github.com/youruser/cardforge/internal/style"
)

// Text renders a data-bound string inside its box.
type Text struct {
	Base
	// Key selects the value from the card data; Fallback substitutes
	// when the key is absent.
	Key      string     `json:"key" yaml:"key"`
	Fallback string     `json:"fallback" yaml:"fallback"`
	Style    style.Text `json:"style" yaml:"style"`
}

// NewText builds an enabled text feature on layer 0, anchored top-left
// with a full-canvas box and the default text style.
func NewText(id, name, key string) *Text {
	return &Text{
		Base: Base{
			ID:      id,
			Name:    name,
			Anchor:  geometry.AnchorTopLeft,
			Enabled: true,
		},
		Key:   key,
		Style: style.DefaultText(),
	}
}

func (t *Text) Validate() error {
	if err := t.Base.validate(); err != nil {
		return err
	}
	return t.Style.Validate()
}

// Render resolves the layout and the bound value, then issues the single
// drawText call.
func (t *Text) Render(ctx Context) error {
	w, h := ctx.CanvasSize()
	box := t.Layout(w, h)
	value := ctx.Value(t.Key, t.Fallback)
	return ctx.DrawText(value, box, t.Style)
}
