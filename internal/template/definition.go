package template

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/youruser/cardforge/internal/faults"
	"github.com/youruser/cardforge/internal/feature"
	"github.com/youruser/cardforge/internal/geometry"
	"github.com/youruser/cardforge/internal/style"
)

// Definition is the declarative form of a template, shared by the YAML
// file format and the HTTP API's JSON payloads. Build turns it into a
// Template, applying documented defaults for omitted fields.
type Definition struct {
	Name       string       `json:"name" yaml:"name"`
	Width      int          `json:"width" yaml:"width"`
	Height     int          `json:"height" yaml:"height"`
	DPI        int          `json:"dpi" yaml:"dpi"`
	SafeMargin int          `json:"safe_margin" yaml:"safe_margin"`
	Bleed      int          `json:"bleed" yaml:"bleed"`
	Features   []FeatureDef `json:"features" yaml:"features"`
}

// FeatureDef declares one feature. Type selects the variant: "text",
// "image" or "qr". Enabled defaults to true when omitted.
type FeatureDef struct {
	Type     string   `json:"type" yaml:"type"`
	ID       string   `json:"id" yaml:"id"`
	Name     string   `json:"name" yaml:"name"`
	Layer    int      `json:"layer" yaml:"layer"`
	Anchor   string   `json:"anchor" yaml:"anchor"`
	X        int      `json:"x" yaml:"x"`
	Y        int      `json:"y" yaml:"y"`
	W        int      `json:"w" yaml:"w"`
	H        int      `json:"h" yaml:"h"`
	Enabled  *bool    `json:"enabled" yaml:"enabled"`
	Key      string   `json:"key" yaml:"key"`
	Fallback string   `json:"fallback" yaml:"fallback"`
	Style    StyleDef `json:"style" yaml:"style"`
}

// StyleDef declares style overrides on top of the variant's default
// style. Pointer fields distinguish "omitted" from zero.
type StyleDef struct {
	Color         string   `json:"color" yaml:"color"`
	Opacity       *float64 `json:"opacity" yaml:"opacity"`
	FontPath      string   `json:"font_path" yaml:"font_path"`
	FontSize      int      `json:"font_size" yaml:"font_size"`
	LineHeight    *float64 `json:"line_height" yaml:"line_height"`
	Align         string   `json:"align" yaml:"align"`
	Wrap          *bool    `json:"wrap" yaml:"wrap"`
	Ellipsis      bool     `json:"ellipsis" yaml:"ellipsis"`
	StrokeColor   string   `json:"stroke_color" yaml:"stroke_color"`
	StrokeWidth   int      `json:"stroke_width" yaml:"stroke_width"`
	LetterSpacing float64  `json:"letter_spacing" yaml:"letter_spacing"`
	Fit           string   `json:"fit" yaml:"fit"`
	Radius        int      `json:"radius" yaml:"radius"`
	Tint          string   `json:"tint" yaml:"tint"`
	Contrast      float64  `json:"contrast" yaml:"contrast"`
	Brightness    float64  `json:"brightness" yaml:"brightness"`
}

// Build turns the definition into a Template. Unknown variant, anchor,
// align or fit strings are validation errors; range checks stay with
// Template.Validate.
func (d Definition) Build() (*Template, error) {
	tpl := New(d.Name, geometry.Resolution{Width: d.Width, Height: d.Height})
	if d.DPI != 0 {
		tpl.DPI = d.DPI
	}
	tpl.SafeMargin = d.SafeMargin
	tpl.Bleed = d.Bleed

	for i, fd := range d.Features {
		f, err := fd.build()
		if err != nil {
			return nil, fmt.Errorf("feature %d: %w", i, err)
		}
		tpl.Features = append(tpl.Features, f)
	}
	return tpl, nil
}

func (fd FeatureDef) build() (feature.Feature, error) {
	anchor, err := geometry.ParseAnchor(fd.Anchor)
	if err != nil {
		return nil, faults.Validation("%v", err)
	}
	base := feature.Base{
		ID:      fd.ID,
		Name:    fd.Name,
		Layer:   fd.Layer,
		Anchor:  anchor,
		Box:     geometry.BBox{X: fd.X, Y: fd.Y, W: fd.W, H: fd.H},
		Enabled: fd.Enabled == nil || *fd.Enabled,
	}

	switch fd.Type {
	case "text":
		st, err := fd.Style.textStyle()
		if err != nil {
			return nil, err
		}
		return &feature.Text{Base: base, Key: fd.Key, Fallback: fd.Fallback, Style: st}, nil
	case "image":
		st, err := fd.Style.imageStyle()
		if err != nil {
			return nil, err
		}
		return &feature.Image{Base: base, Key: fd.Key, Fallback: fd.Fallback, Style: st}, nil
	case "qr":
		st, err := fd.Style.imageStyle()
		if err != nil {
			return nil, err
		}
		if fd.Style.Fit == "" {
			st.Fit = geometry.FitContain
		}
		return &feature.QR{Base: base, Key: fd.Key, Fallback: fd.Fallback, Style: st}, nil
	}
	return nil, faults.Validation("unknown feature type %q", fd.Type)
}

func (sd StyleDef) textStyle() (style.Text, error) {
	st := style.DefaultText()
	if sd.Color != "" {
		st.Color = sd.Color
	}
	if sd.Opacity != nil {
		st.Opacity = *sd.Opacity
	}
	st.FontPath = sd.FontPath
	if sd.FontSize != 0 {
		st.FontSize = sd.FontSize
	}
	if sd.LineHeight != nil {
		st.LineHeight = *sd.LineHeight
	}
	align, err := geometry.ParseAlign(sd.Align)
	if err != nil {
		return style.Text{}, faults.Validation("%v", err)
	}
	st.Align = align
	if sd.Wrap != nil {
		st.Wrap = *sd.Wrap
	}
	st.Ellipsis = sd.Ellipsis
	st.StrokeColor = sd.StrokeColor
	st.StrokeWidth = sd.StrokeWidth
	st.LetterSpacing = sd.LetterSpacing
	return st, nil
}

func (sd StyleDef) imageStyle() (style.Image, error) {
	st := style.DefaultImage()
	if sd.Color != "" {
		st.Color = sd.Color
	}
	if sd.Opacity != nil {
		st.Opacity = *sd.Opacity
	}
	fit, err := geometry.ParseFitMode(sd.Fit)
	if err != nil {
		return style.Image{}, faults.Validation("%v", err)
	}
	st.Fit = fit
	st.Radius = sd.Radius
	st.Tint = sd.Tint
	st.Contrast = sd.Contrast
	st.Brightness = sd.Brightness
	return st, nil
}

// ParseYAML decodes a YAML template definition and builds it. Malformed
// YAML is a validation error: the document itself is the invalid value.
func ParseYAML(data []byte) (*Template, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, faults.Validation("malformed template yaml: %v", err)
	}
	return def.Build()
}

// LoadYAML reads and builds a template definition file.
func LoadYAML(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, faults.IO("read template %q: %v", path, err)
	}
	return ParseYAML(data)
}
