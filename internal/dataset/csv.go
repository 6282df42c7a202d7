// Package dataset turns tabular card data into renderable rows and
// drives batch renders: one CSV row becomes one card.
package dataset

import (
	"encoding/csv"
	"os"

	"github.com/youruser/cardforge/internal/faults"
	"github.com/youruser/cardforge/internal/render"
)

// LoadCSV reads a header-keyed CSV file into one CardData per data row.
// The first row names the keys; short rows simply omit the trailing
// keys, which then resolve to feature fallbacks at render time.
func LoadCSV(path string) ([]render.CardData, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, faults.IO("open csv %q: %v", path, err)
	}
	defer fp.Close()

	r := csv.NewReader(fp)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, faults.IO("read csv %q: %v", path, err)
	}
	if len(rows) < 1 {
		return nil, faults.IO("csv %q has no header row", path)
	}

	header := rows[0]
	out := make([]render.CardData, 0, len(rows)-1)
	for _, row := range rows[1:] {
		values := make(map[string]string, len(header))
		for i, key := range header {
			if i < len(row) {
				values[key] = row[i]
			}
		}
		out = append(out, render.NewCardData(values))
	}
	return out, nil
}
