package table

import (
	"fmt"

	"github.com/vvka-141/dretl/pkg/dretl"
)

// KeyReport summarizes join-key quality for one input.
type KeyReport struct {
	// Missing counts rows whose key is absent.
	Missing int

	// Duplicated lists, in first-seen order, keys appearing on more than one row.
	Duplicated []string
}

// InspectKeys reports missing and repeated values of the key column.
func InspectKeys(t *dretl.Table, key string) (KeyReport, error) {
	var report KeyReport

	col := t.ColumnIndex(key)
	if col < 0 {
		return report, fmt.Errorf("no %q column: %w", key, dretl.ErrColumnNotFound)
	}

	counts := make(map[string]int, len(t.Rows))
	for _, row := range t.Rows {
		v := row[col]
		if v == nil {
			report.Missing++
			continue
		}
		k := FormatCell(v)
		counts[k]++
		if counts[k] == 2 {
			report.Duplicated = append(report.Duplicated, k)
		}
	}
	return report, nil
}
