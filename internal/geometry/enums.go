package geometry

import "fmt"

// Align is the horizontal text alignment inside a feature's box.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// ParseAlign maps a config string to an Align. The empty string
// defaults to left.
func ParseAlign(s string) (Align, error) {
	switch Align(s) {
	case "":
		return AlignLeft, nil
	case AlignLeft, AlignCenter, AlignRight:
		return Align(s), nil
	}
	return "", fmt.Errorf("unknown align %q", s)
}

// FitMode controls how an image is scaled into a feature's box.
type FitMode string

const (
	// FitCover fills the box completely, cropping overflow.
	FitCover FitMode = "cover"
	// FitContain scales the whole image into the box, possibly leaving
	// empty bands.
	FitContain FitMode = "contain"
	// FitScaleDown behaves like contain but never upscales.
	FitScaleDown FitMode = "scale_down"
)

// ParseFitMode maps a config string to a FitMode. The empty string
// defaults to cover.
func ParseFitMode(s string) (FitMode, error) {
	switch FitMode(s) {
	case "":
		return FitCover, nil
	case FitCover, FitContain, FitScaleDown:
		return FitMode(s), nil
	}
	return "", fmt.Errorf("unknown fit mode %q", s)
}

// Unit is the measurement unit a value was declared in. The core carries
// units but performs no dimensional conversion; pt/mm conversion is an
// external concern.
type Unit string

const (
	UnitPx Unit = "px"
	UnitPt Unit = "pt"
	UnitMm Unit = "mm"
)
