package table

import (
	"fmt"
	"math"
	"strconv"

	"github.com/vvka-141/dretl/pkg/dretl"
)

// FromRecords builds a typed table from a CSV header and its data records.
//
// Empty fields and the usual NA markers ("NA", "NaN", "NULL", "#N/A" and
// the like, see naTokens) become missing values (nil). A column is KindInteger when all
// its present values parse as base-10 int64, KindReal when they all parse as
// finite floats, and KindText otherwise. A column with no present values is
// KindText.
func FromRecords(header []string, records [][]string) (*dretl.Table, error) {
	seen := make(map[string]bool, len(header))
	for _, name := range header {
		if seen[name] {
			return nil, fmt.Errorf("duplicate column %q in header", name)
		}
		seen[name] = true
	}

	for i, rec := range records {
		if len(rec) != len(header) {
			return nil, fmt.Errorf("record %d has %d fields, header has %d", i+1, len(rec), len(header))
		}
	}

	t := &dretl.Table{
		Columns: make([]dretl.Column, len(header)),
		Rows:    make([][]any, len(records)),
	}
	for i := range records {
		t.Rows[i] = make([]any, len(header))
	}

	for col, name := range header {
		kind := inferKind(records, col)
		t.Columns[col] = dretl.Column{Name: name, Kind: kind}
		for row, rec := range records {
			t.Rows[row][col] = convert(rec[col], kind)
		}
	}

	return t, nil
}

func inferKind(records [][]string, col int) dretl.ColumnKind {
	present := 0
	allInt, allReal := true, true
	for _, rec := range records {
		v := rec[col]
		if isMissing(v) {
			continue
		}
		present++
		if allInt {
			if _, err := strconv.ParseInt(v, 10, 64); err != nil {
				allInt = false
			}
		}
		if allReal && !isFinite(v) {
			allReal = false
		}
		if !allInt && !allReal {
			return dretl.KindText
		}
	}

	switch {
	case present == 0:
		return dretl.KindText
	case allInt:
		return dretl.KindInteger
	case allReal:
		return dretl.KindReal
	default:
		return dretl.KindText
	}
}

// naTokens are the field values read as missing, matched exactly.
var naTokens = map[string]bool{
	"":         true,
	"#N/A":     true,
	"#N/A N/A": true,
	"#NA":      true,
	"-1.#IND":  true,
	"-1.#QNAN": true,
	"-NaN":     true,
	"-nan":     true,
	"1.#IND":   true,
	"1.#QNAN":  true,
	"<NA>":     true,
	"N/A":      true,
	"NA":       true,
	"NULL":     true,
	"NaN":      true,
	"None":     true,
	"n/a":      true,
	"nan":      true,
	"null":     true,
}

func isMissing(v string) bool {
	return naTokens[v]
}

func isFinite(s string) bool {
	f, err := strconv.ParseFloat(s, 64)
	return err == nil && !math.IsInf(f, 0) && !math.IsNaN(f)
}

// convert assumes kind was inferred from the same values.
func convert(v string, kind dretl.ColumnKind) any {
	if isMissing(v) {
		return nil
	}
	switch kind {
	case dretl.KindInteger:
		n, _ := strconv.ParseInt(v, 10, 64)
		return n
	case dretl.KindReal:
		f, _ := strconv.ParseFloat(v, 64)
		return f
	default:
		return v
	}
}

// FormatCell renders a cell the way it would appear in a CSV file.
// Missing values render as the empty string.
func FormatCell(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}
