package table

import (
	"strconv"
	"strings"

	"github.com/vvka-141/dretl/pkg/dretl"
)

// DropDuplicates returns a copy of t without rows that are identical, across
// all columns, to an earlier row. The first occurrence is kept and row order
// is preserved, so applying it twice yields the same table as applying it once.
func DropDuplicates(t *dretl.Table) *dretl.Table {
	out := &dretl.Table{
		Columns: append([]dretl.Column(nil), t.Columns...),
		Rows:    make([][]any, 0, len(t.Rows)),
	}

	seen := make(map[string]struct{}, len(t.Rows))
	for _, row := range t.Rows {
		k := rowKey(row)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out.Rows = append(out.Rows, row)
	}
	return out
}

// rowKey encodes a row so that two rows share a key only if every cell has
// the same type and value. Cells are length-prefixed so that separators
// inside text cannot collide. Missing values compare equal to each other.
func rowKey(row []any) string {
	var b strings.Builder
	for _, v := range row {
		if v == nil {
			b.WriteString("-;")
			continue
		}
		k := canonicalKey(v)
		b.WriteString(strconv.Itoa(len(k)))
		b.WriteByte(':')
		b.WriteString(k)
	}
	return b.String()
}
