package geometry

import "fmt"

// Anchor names the canvas reference point used to translate a feature's
// declared offset into absolute coordinates.
type Anchor string

const (
	AnchorTopLeft     Anchor = "top_left"
	AnchorTop         Anchor = "top"
	AnchorTopRight    Anchor = "top_right"
	AnchorLeft        Anchor = "left"
	AnchorCenter      Anchor = "center"
	AnchorRight       Anchor = "right"
	AnchorBottomLeft  Anchor = "bottom_left"
	AnchorBottom      Anchor = "bottom"
	AnchorBottomRight Anchor = "bottom_right"
	// AnchorBleed ignores all declared geometry and resolves to the
	// full canvas, for backgrounds that must reach the trim edge.
	AnchorBleed Anchor = "bleed"
)

// ParseAnchor maps a config string to an Anchor. The empty string
// defaults to top_left.
func ParseAnchor(s string) (Anchor, error) {
	switch Anchor(s) {
	case "":
		return AnchorTopLeft, nil
	case AnchorTopLeft, AnchorTop, AnchorTopRight,
		AnchorLeft, AnchorCenter, AnchorRight,
		AnchorBottomLeft, AnchorBottom, AnchorBottomRight,
		AnchorBleed:
		return Anchor(s), nil
	}
	return "", fmt.Errorf("unknown anchor %q", s)
}

// Place resolves a declared box into absolute canvas coordinates.
//
// Width and height resolve first: a declared dimension > 0 passes
// through, otherwise the canvas dimension substitutes. The position then
// follows the anchor, with the declared x/y acting as an offset from the
// anchored position. Centering uses floor division so placement is
// reproducible on odd remainders.
//
// Place is pure and callable independently of any render.
func (a Anchor) Place(declared BBox, canvasW, canvasH int) BBox {
	w := declared.W
	if w <= 0 {
		w = canvasW
	}
	h := declared.H
	if h <= 0 {
		h = canvasH
	}

	var x, y int
	switch a {
	case AnchorTopLeft:
		x, y = declared.X, declared.Y
	case AnchorTop:
		x, y = (canvasW-w)/2+declared.X, declared.Y
	case AnchorTopRight:
		x, y = canvasW-w+declared.X, declared.Y
	case AnchorLeft:
		x, y = declared.X, (canvasH-h)/2+declared.Y
	case AnchorCenter:
		x, y = (canvasW-w)/2+declared.X, (canvasH-h)/2+declared.Y
	case AnchorRight:
		x, y = canvasW-w+declared.X, (canvasH-h)/2+declared.Y
	case AnchorBottomLeft:
		x, y = declared.X, canvasH-h+declared.Y
	case AnchorBottom:
		x, y = (canvasW-w)/2+declared.X, canvasH-h+declared.Y
	case AnchorBottomRight:
		x, y = canvasW-w+declared.X, canvasH-h+declared.Y
	case AnchorBleed:
		return BBox{X: 0, Y: 0, W: canvasW, H: canvasH}
	default:
		panic(fmt.Sprintf("geometry: unhandled anchor %q", string(a)))
	}
	return BBox{X: x, Y: y, W: w, H: h}
}
