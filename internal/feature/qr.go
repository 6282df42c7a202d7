package feature

import (
	qrcode "github.com/skip2/go-qrcode"

	"github.com/youruser/cardforge/internal/faults"
	"github.com/youruser/cardforge/internal/geometry"
	"github.com/youruser/cardforge/internal/style"
)

// QR renders a QR code encoding a data-bound string, for share links or
// card identifiers printed on the card itself.
type QR struct {
	Base
	Key      string      `json:"key" yaml:"key"`
	Fallback string      `json:"fallback" yaml:"fallback"`
	Style    style.Image `json:"style" yaml:"style"`
}

// NewQR builds an enabled QR feature on layer 0, anchored top-left with
// contain fit so the code stays square inside its box.
func NewQR(id, name, key string) *QR {
	st := style.DefaultImage()
	st.Fit = geometry.FitContain
	return &QR{
		Base: Base{
			ID:      id,
			Name:    name,
			Anchor:  geometry.AnchorTopLeft,
			Enabled: true,
		},
		Key:   key,
		Style: st,
	}
}

func (f *QR) Validate() error {
	if err := f.Base.validate(); err != nil {
		return err
	}
	return f.Style.Validate()
}

// Render encodes the bound content and issues the single drawImage call.
// Encoding failure is a resource error, same as a missing image file.
func (f *QR) Render(ctx Context) error {
	w, h := ctx.CanvasSize()
	box := f.Layout(w, h)
	content := ctx.Value(f.Key, f.Fallback)
	code, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return faults.Resource("encode qr content %q: %v", content, err)
	}
	side := box.W
	if box.H < side {
		side = box.H
	}
	return ctx.DrawImage(code.Image(side), box, f.Style)
}
