package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/youruser/cardforge/internal/faults"
	"github.com/youruser/cardforge/internal/render"
	"github.com/youruser/cardforge/internal/template"
)

// RenderBatch renders one card per data row into outDir as
// "<template-slug>-NNN.png" and writes a manifest.txt listing the
// outputs. The first failing row aborts the batch; files already written
// stay on disk. Returned paths are the written card files.
func RenderBatch(r *render.CardRenderer, tpl *template.Template, rows []render.CardData, cfg render.CardConfig, outDir string) ([]string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, faults.IO("create output dir %q: %v", outDir, err)
	}

	stem := slug(tpl.Name)
	paths := make([]string, 0, len(rows))
	for i, row := range rows {
		img, err := r.Render(tpl, row, cfg)
		if err != nil {
			return paths, fmt.Errorf("row %d: %w", i+1, err)
		}
		path := filepath.Join(outDir, fmt.Sprintf("%s-%03d.png", stem, i+1))
		if err := img.SavePNG(path); err != nil {
			return paths, fmt.Errorf("row %d: %w", i+1, err)
		}
		paths = append(paths, path)
	}

	manifest := filepath.Join(outDir, "manifest.txt")
	if err := os.WriteFile(manifest, []byte(strings.Join(paths, "\n")+"\n"), 0o644); err != nil {
		return paths, faults.IO("write manifest %q: %v", manifest, err)
	}
	return paths, nil
}

// slug lowercases a template name into a filename-safe stem.
func slug(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune('-')
		}
	}
	if b.Len() == 0 {
		return "card"
	}
	return b.String()
}
