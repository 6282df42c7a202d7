// Package style defines the visual parameters attached to features and
// their validation rules. Styles are plain data; the drawing surface
// interprets them.
package style

import (
	"github.com/youruser/cardforge/internal/faults"
	"github.com/youruser/cardforge/internal/geometry"
)

// Text styles a text feature.
//
// Zero values are not usable directly; build with DefaultText and
// override fields. FontPath may stay empty, in which case the embedded
// fallback font is used.
type Text struct {
	Color         string         `json:"color" yaml:"color"`
	Opacity       float64        `json:"opacity" yaml:"opacity"`
	FontPath      string         `json:"font_path" yaml:"font_path"`
	FontSize      int            `json:"font_size" yaml:"font_size"`
	LineHeight    float64        `json:"line_height" yaml:"line_height"`
	Align         geometry.Align `json:"align" yaml:"align"`
	Wrap          bool           `json:"wrap" yaml:"wrap"`
	Ellipsis      bool           `json:"ellipsis" yaml:"ellipsis"`
	StrokeColor   string         `json:"stroke_color,omitempty" yaml:"stroke_color,omitempty"`
	StrokeWidth   int            `json:"stroke_width" yaml:"stroke_width"`
	LetterSpacing float64        `json:"letter_spacing" yaml:"letter_spacing"`
	Unit          geometry.Unit  `json:"unit,omitempty" yaml:"unit,omitempty"`
}

// DefaultText returns the documented defaults: black 12pt left-aligned
// wrapped text at full opacity, single line height, no stroke.
func DefaultText() Text {
	return Text{
		Color:      "#000000",
		Opacity:    1.0,
		FontSize:   12,
		LineHeight: 1.0,
		Align:      geometry.AlignLeft,
		Wrap:       true,
		Unit:       geometry.UnitPx,
	}
}

// Validate checks all declared ranges. Errors carry the validation kind.
func (t Text) Validate() error {
	if t.Opacity < 0 || t.Opacity > 1 {
		return faults.Validation("opacity must be between 0.0 and 1.0, got %g", t.Opacity)
	}
	if t.FontSize <= 0 {
		return faults.Validation("fontSize must be positive, got %d", t.FontSize)
	}
	if t.LineHeight <= 0 {
		return faults.Validation("lineHeight must be positive, got %g", t.LineHeight)
	}
	if t.StrokeWidth < 0 {
		return faults.Validation("strokeWidth must be non-negative, got %d", t.StrokeWidth)
	}
	if _, err := ParseColor(t.Color); err != nil {
		return faults.Validation("text color: %v", err)
	}
	if t.StrokeColor != "" {
		if _, err := ParseColor(t.StrokeColor); err != nil {
			return faults.Validation("stroke color: %v", err)
		}
	}
	return nil
}

// Image styles an image feature.
//
// Contrast and brightness are relative adjustments in [-1, 1] where 0
// means no change. Tint, when set, is overlaid on the fitted image.
type Image struct {
	Color      string           `json:"color" yaml:"color"`
	Opacity    float64          `json:"opacity" yaml:"opacity"`
	Fit        geometry.FitMode `json:"fit" yaml:"fit"`
	Radius     int              `json:"radius" yaml:"radius"`
	Tint       string           `json:"tint,omitempty" yaml:"tint,omitempty"`
	Contrast   float64          `json:"contrast" yaml:"contrast"`
	Brightness float64          `json:"brightness" yaml:"brightness"`
	Unit       geometry.Unit    `json:"unit,omitempty" yaml:"unit,omitempty"`
}

// DefaultImage returns the documented defaults: cover fit at full
// opacity, square corners, no tint or adjustment.
func DefaultImage() Image {
	return Image{
		Color:   "#FFFFFF",
		Opacity: 1.0,
		Fit:     geometry.FitCover,
		Unit:    geometry.UnitPx,
	}
}

// Validate checks all declared ranges. Errors carry the validation kind.
func (i Image) Validate() error {
	if i.Opacity < 0 || i.Opacity > 1 {
		return faults.Validation("opacity must be between 0.0 and 1.0, got %g", i.Opacity)
	}
	if i.Radius < 0 {
		return faults.Validation("radius must be non-negative, got %d", i.Radius)
	}
	if i.Contrast < -1 || i.Contrast > 1 {
		return faults.Validation("contrast must be between -1.0 and 1.0, got %g", i.Contrast)
	}
	if i.Brightness < -1 || i.Brightness > 1 {
		return faults.Validation("brightness must be between -1.0 and 1.0, got %g", i.Brightness)
	}
	if i.Tint != "" {
		if _, err := ParseColor(i.Tint); err != nil {
			return faults.Validation("tint: %v", err)
		}
	}
	return nil
}
