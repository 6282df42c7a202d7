// Package template defines the reusable card layout: print metadata plus
// an ordered list of features, with validation and deterministic layer
// ordering. Templates can be built in code or loaded from YAML.
package template

import (
	"fmt"
	"sort"

	"github.com/youruser/cardforge/internal/faults"
	"github.com/youruser/cardforge/internal/feature"
	"github.com/youruser/cardforge/internal/geometry"
)

// Template is the layout shared across many card data rows. It is
// constructed fully by the caller and validated on demand; the renderer
// treats it as immutable.
type Template struct {
	Name       string
	Resolution geometry.Resolution
	DPI        int
	SafeMargin int
	Bleed      int
	Features   []feature.Feature
}

// New returns a template with the documented defaults: 300 dpi, no safe
// margin, no bleed, no features.
func New(name string, res geometry.Resolution) *Template {
	return &Template{
		Name:       name,
		Resolution: res,
		DPI:        300,
	}
}

// FeaturesByLayer returns the features ordered by ascending layer. The
// sort is stable: equal-layer features keep their declaration order,
// which makes paint order fully deterministic. The stored slice is not
// modified.
func (t *Template) FeaturesByLayer() []feature.Feature {
	out := make([]feature.Feature, len(t.Features))
	copy(out, t.Features)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Def().Layer < out[j].Def().Layer
	})
	return out
}

// Validate checks the template-level fields, then every feature in
// declaration order. It fails fast on the first invalid feature, wrapping
// its error with the feature's name (or positional index when the name is
// empty) without altering the error kind.
func (t *Template) Validate() error {
	if t.Name == "" {
		return faults.Validation("template name cannot be empty")
	}
	if t.Resolution.Width <= 0 || t.Resolution.Height <= 0 {
		return faults.Validation("template resolution must be positive: %s", t.Resolution)
	}
	if t.DPI <= 0 {
		return faults.Validation("dpi must be positive, got %d", t.DPI)
	}
	if t.SafeMargin < 0 {
		return faults.Validation("safeMargin must be non-negative, got %d", t.SafeMargin)
	}
	if t.Bleed < 0 {
		return faults.Validation("bleed must be non-negative, got %d", t.Bleed)
	}

	seen := make(map[string]bool, len(t.Features))
	for i, f := range t.Features {
		if err := f.Validate(); err != nil {
			return fmt.Errorf("invalid feature %s: %w", describeFeature(f, i), err)
		}
		id := f.Def().ID
		if seen[id] {
			return fmt.Errorf("invalid feature %s: %w", describeFeature(f, i),
				faults.Validation("duplicate feature id %q", id))
		}
		seen[id] = true
	}
	return nil
}

func describeFeature(f feature.Feature, index int) string {
	if name := f.Def().Name; name != "" {
		return fmt.Sprintf("%q", name)
	}
	return fmt.Sprintf("at index %d", index)
}
