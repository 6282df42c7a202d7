package render

import "github.com/youruser/cardforge/internal/style"

// CardData is the per-card instance data, a flat string map typically
// sourced from one CSV row. Lookups never error; the caller supplies the
// fallback for missing keys.
type CardData struct {
	values map[string]string
}

// NewCardData wraps a key-value map. The map is not copied; callers
// hand over ownership.
func NewCardData(values map[string]string) CardData {
	return CardData{values: values}
}

// Get returns the value for key, or fallback when the key is absent.
func (d CardData) Get(key, fallback string) string {
	if v, ok := d.values[key]; ok {
		return v
	}
	return fallback
}

// Len returns the number of bound keys.
func (d CardData) Len() int { return len(d.values) }

// CardConfig carries the global named styles and token aliases shared by
// all cards of a run. Style resolution against these is an external
// concern; the core only offers lookup.
type CardConfig struct {
	TextStyles  map[string]style.Text
	ImageStyles map[string]style.Image
	Tokens      map[string]string
}

// ResolveToken expands "$name" through the token table. Values without
// the prefix, and unknown tokens, pass through unchanged.
func (c CardConfig) ResolveToken(s string) string {
	if len(s) < 2 || s[0] != '$' {
		return s
	}
	if v, ok := c.Tokens[s[1:]]; ok {
		return v
	}
	return s
}
