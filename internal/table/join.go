package table

import (
	"fmt"
	"sort"

	"github.com/vvka-141/dretl/pkg/dretl"
)

// OuterJoin merges left and right on the key column, keeping every key from
// both sides.
//
// For a key present on both sides the result holds the cartesian product of
// the matching rows; nothing is deduplicated, so the row count is at least
// max(left.Len(), right.Len()). Rows present on one side only carry nil for
// the other side's columns. Missing keys match each other.
//
// Result columns are the left columns followed by the right columns minus
// the key. Non-key names present on both sides get the _x and _y suffixes.
// Keys are ordered ascending, numeric keys before text keys, missing keys
// last. Within a key, left rows keep their input order.
func OuterJoin(left, right *dretl.Table, key string) (*dretl.Table, error) {
	lk := left.ColumnIndex(key)
	if lk < 0 {
		return nil, fmt.Errorf("left input has no %q column: %w", key, dretl.ErrColumnNotFound)
	}
	rk := right.ColumnIndex(key)
	if rk < 0 {
		return nil, fmt.Errorf("right input has no %q column: %w", key, dretl.ErrColumnNotFound)
	}

	keyKind := unifyKind(left.Columns[lk].Kind, right.Columns[rk].Kind)
	columns, rightCols := mergedColumns(left, right, lk, rk, keyKind)

	leftGroups, leftOrder := groupByKey(left, lk, keyKind)
	rightGroups, rightOrder := groupByKey(right, rk, keyKind)

	keys := make(map[string]any, len(leftOrder)+len(rightOrder))
	for k, v := range leftOrder {
		keys[k] = v
	}
	for k, v := range rightOrder {
		if _, ok := keys[k]; !ok {
			keys[k] = v
		}
	}
	ordered := sortedKeys(keys)

	out := &dretl.Table{Columns: columns}
	for _, k := range ordered {
		keyValue := keys[k]
		lrows, rrows := leftGroups[k], rightGroups[k]

		switch {
		case len(lrows) > 0 && len(rrows) > 0:
			for _, l := range lrows {
				for _, r := range rrows {
					out.Rows = append(out.Rows, joinRow(l, r, lk, keyValue, rightCols, len(columns)))
				}
			}
		case len(lrows) > 0:
			for _, l := range lrows {
				out.Rows = append(out.Rows, joinRow(l, nil, lk, keyValue, rightCols, len(columns)))
			}
		default:
			for _, r := range rrows {
				out.Rows = append(out.Rows, joinRow(nil, r, lk, keyValue, rightCols, len(columns)))
			}
		}
	}

	return out, nil
}

// mergedColumns returns the result schema and the right-side column indexes
// that follow the left columns.
func mergedColumns(left, right *dretl.Table, lk, rk int, keyKind dretl.ColumnKind) ([]dretl.Column, []int) {
	rightNames := make(map[string]bool, len(right.Columns))
	for i, c := range right.Columns {
		if i != rk {
			rightNames[c.Name] = true
		}
	}
	leftNames := make(map[string]bool, len(left.Columns))
	for i, c := range left.Columns {
		if i != lk {
			leftNames[c.Name] = true
		}
	}

	columns := make([]dretl.Column, 0, len(left.Columns)+len(right.Columns)-1)
	for i, c := range left.Columns {
		switch {
		case i == lk:
			c.Kind = keyKind
		case rightNames[c.Name]:
			c.Name += dretl.MergeSuffixLeft
		}
		columns = append(columns, c)
	}

	rightCols := make([]int, 0, len(right.Columns)-1)
	for i, c := range right.Columns {
		if i == rk {
			continue
		}
		if leftNames[c.Name] {
			c.Name += dretl.MergeSuffixRight
		}
		columns = append(columns, c)
		rightCols = append(rightCols, i)
	}
	return columns, rightCols
}

func joinRow(l, r []any, lk int, keyValue any, rightCols []int, width int) []any {
	row := make([]any, 0, width)
	if l != nil {
		row = append(row, l...)
	} else {
		row = append(row, make([]any, width-len(rightCols))...)
	}
	row[lk] = keyValue
	for _, i := range rightCols {
		if r == nil {
			row = append(row, nil)
		} else {
			row = append(row, r[i])
		}
	}
	return row
}

// groupByKey groups rows by canonical key, preserving row order, and
// remembers the key value converted to keyKind.
func groupByKey(t *dretl.Table, col int, keyKind dretl.ColumnKind) (map[string][][]any, map[string]any) {
	groups := make(map[string][][]any)
	values := make(map[string]any)
	for _, row := range t.Rows {
		v := coerce(row[col], keyKind)
		k := canonicalKey(v)
		groups[k] = append(groups[k], row)
		if _, ok := values[k]; !ok {
			values[k] = v
		}
	}
	return groups, values
}

// missingKey is never produced by canonicalKey for a present value.
const missingKey = "\x00"

func canonicalKey(v any) string {
	if v == nil {
		return missingKey
	}
	return fmt.Sprintf("%T:%s", v, FormatCell(v))
}

func sortedKeys(keys map[string]any) []string {
	out := make([]string, 0, len(keys))
	for k := range keys {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool {
		return lessValue(keys[out[i]], keys[out[j]])
	})
	return out
}

// lessValue orders numbers before text and missing values last.
func lessValue(a, b any) bool {
	ra, rb := rank(a), rank(b)
	if ra != rb {
		return ra < rb
	}
	switch x := a.(type) {
	case int64:
		return x < b.(int64)
	case float64:
		return x < b.(float64)
	case string:
		return x < b.(string)
	}
	return false
}

func rank(v any) int {
	switch v.(type) {
	case int64:
		return 0
	case float64:
		return 1
	case string:
		return 2
	default:
		return 3
	}
}

// unifyKind picks a key kind both sides can be converted to.
func unifyKind(a, b dretl.ColumnKind) dretl.ColumnKind {
	switch {
	case a == b:
		return a
	case a == dretl.KindText || b == dretl.KindText:
		return dretl.KindText
	default:
		return dretl.KindReal
	}
}

func coerce(v any, kind dretl.ColumnKind) any {
	switch x := v.(type) {
	case nil:
		return nil
	case int64:
		switch kind {
		case dretl.KindReal:
			return float64(x)
		case dretl.KindText:
			return FormatCell(x)
		}
	case float64:
		if kind == dretl.KindText {
			return FormatCell(x)
		}
	}
	return v
}
