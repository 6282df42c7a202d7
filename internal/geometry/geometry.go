// Package geometry holds the value objects of the layout engine: pixel
// bounding boxes, output resolutions and the closed enums controlling
// placement, text alignment and image fitting.
package geometry

import "fmt"

// BBox is a bounding box in integer pixel units. A declared width or
// height of zero is a sentinel meaning "use the full canvas dimension";
// Anchor.Place resolves it.
type BBox struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
	W int `json:"w" yaml:"w"`
	H int `json:"h" yaml:"h"`
}

func (b BBox) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", b.X, b.Y, b.W, b.H)
}

// Resolution is an output size in pixels. Both dimensions must be
// positive for a template to validate.
type Resolution struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

func (r Resolution) String() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}

// Aspect returns the reduced aspect ratio, e.g. "16:9" for 1920x1080.
func (r Resolution) Aspect() string {
	d := gcd(r.Width, r.Height)
	if d == 0 {
		return fmt.Sprintf("%d:%d", r.Width, r.Height)
	}
	return fmt.Sprintf("%d:%d", r.Width/d, r.Height/d)
}

func gcd(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
