package table

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/dretl/pkg/dretl"
)

func mustTable(t *testing.T, header []string, records ...[]string) *dretl.Table {
	t.Helper()
	tbl, err := FromRecords(header, records)
	require.NoError(t, err)
	return tbl
}

func TestOuterJoin_MatchingKeys(t *testing.T) {
	messages := mustTable(t, []string{"id", "message"}, []string{"2", "fire"}, []string{"1", "flood"})
	categories := mustTable(t, []string{"id", "categories"},
		[]string{"1", "related-1;request-0"},
		[]string{"2", "related-0;request-1"},
	)

	merged, err := OuterJoin(messages, categories, "id")
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "message", "categories"}, merged.ColumnNames())
	require.Len(t, merged.Rows, 2)
	assert.Equal(t, []any{int64(1), "flood", "related-1;request-0"}, merged.Rows[0])
	assert.Equal(t, []any{int64(2), "fire", "related-0;request-1"}, merged.Rows[1])
}

func TestOuterJoin_UnmatchedRowsCarryMissingValues(t *testing.T) {
	messages := mustTable(t, []string{"id", "message"}, []string{"1", "flood"}, []string{"3", "quake"})
	categories := mustTable(t, []string{"id", "categories"}, []string{"1", "related-1"}, []string{"2", "related-0"})

	merged, err := OuterJoin(messages, categories, "id")
	require.NoError(t, err)

	require.Len(t, merged.Rows, 3)
	assert.Equal(t, []any{int64(1), "flood", "related-1"}, merged.Rows[0])
	assert.Equal(t, []any{int64(2), nil, "related-0"}, merged.Rows[1])
	assert.Equal(t, []any{int64(3), "quake", nil}, merged.Rows[2])
}

func TestOuterJoin_DuplicateKeysProduceCartesianProduct(t *testing.T) {
	messages := mustTable(t, []string{"id", "message"}, []string{"1", "a"}, []string{"1", "b"})
	categories := mustTable(t, []string{"id", "categories"}, []string{"1", "x"}, []string{"1", "y"}, []string{"1", "z"})

	merged, err := OuterJoin(messages, categories, "id")
	require.NoError(t, err)

	require.Len(t, merged.Rows, 6)
	assert.Equal(t, []any{int64(1), "a", "x"}, merged.Rows[0])
	assert.Equal(t, []any{int64(1), "a", "z"}, merged.Rows[2])
	assert.Equal(t, []any{int64(1), "b", "x"}, merged.Rows[3])
}

func TestOuterJoin_RowCountAtLeastMaxInput(t *testing.T) {
	for n := 0; n < 6; n++ {
		t.Run(fmt.Sprintf("overlap_%d", n), func(t *testing.T) {
			var left, right [][]string
			for i := 0; i < 5; i++ {
				left = append(left, []string{fmt.Sprint(i), fmt.Sprintf("m%d", i)})
			}
			for i := 5 - n; i < 12-n; i++ {
				right = append(right, []string{fmt.Sprint(i), fmt.Sprintf("c%d", i)})
			}
			l := mustTable(t, []string{"id", "message"}, left...)
			r := mustTable(t, []string{"id", "categories"}, right...)

			merged, err := OuterJoin(l, r, "id")
			require.NoError(t, err)
			assert.GreaterOrEqual(t, merged.Len(), max(l.Len(), r.Len()))
		})
	}
}

func TestOuterJoin_SuffixesOverlappingColumns(t *testing.T) {
	left := mustTable(t, []string{"id", "note"}, []string{"1", "left"})
	right := mustTable(t, []string{"id", "note"}, []string{"1", "right"})

	merged, err := OuterJoin(left, right, "id")
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "note_x", "note_y"}, merged.ColumnNames())
	assert.Equal(t, []any{int64(1), "left", "right"}, merged.Rows[0])
}

func TestOuterJoin_MissingKeysSortLastAndMatch(t *testing.T) {
	left := mustTable(t, []string{"id", "message"}, []string{"", "orphan"}, []string{"5", "five"})
	right := mustTable(t, []string{"id", "categories"}, []string{"", "none"}, []string{"7", "seven"})

	merged, err := OuterJoin(left, right, "id")
	require.NoError(t, err)

	require.Len(t, merged.Rows, 3)
	assert.Equal(t, []any{int64(5), "five", nil}, merged.Rows[0])
	assert.Equal(t, []any{int64(7), nil, "seven"}, merged.Rows[1])
	assert.Equal(t, []any{nil, "orphan", "none"}, merged.Rows[2])
}

func TestOuterJoin_TextKeysSortLexically(t *testing.T) {
	left := mustTable(t, []string{"id", "message"}, []string{"b", "B"}, []string{"a", "A"})
	right := mustTable(t, []string{"id", "categories"}, []string{"c", "C"})

	merged, err := OuterJoin(left, right, "id")
	require.NoError(t, err)

	assert.Equal(t, "a", merged.Rows[0][0])
	assert.Equal(t, "b", merged.Rows[1][0])
	assert.Equal(t, "c", merged.Rows[2][0])
}

func TestOuterJoin_MixedKeyKindsUnify(t *testing.T) {
	left := mustTable(t, []string{"id", "message"}, []string{"1", "flood"})
	right := mustTable(t, []string{"id", "categories"}, []string{"1.0", "related-1"}, []string{"1.5", "related-0"})

	merged, err := OuterJoin(left, right, "id")
	require.NoError(t, err)

	assert.Equal(t, dretl.KindReal, merged.Columns[0].Kind)
	require.Len(t, merged.Rows, 2)
	assert.Equal(t, []any{1.0, "flood", "related-1"}, merged.Rows[0])
	assert.Equal(t, []any{1.5, nil, "related-0"}, merged.Rows[1])
}

func TestOuterJoin_MissingKeyColumn(t *testing.T) {
	left := mustTable(t, []string{"id", "message"}, []string{"1", "flood"})
	right := mustTable(t, []string{"ident", "categories"}, []string{"1", "x"})

	_, err := OuterJoin(left, right, "id")
	require.ErrorIs(t, err, dretl.ErrColumnNotFound)

	_, err = OuterJoin(right, left, "id")
	require.ErrorIs(t, err, dretl.ErrColumnNotFound)
}

func TestOuterJoin_DoesNotMutateInputs(t *testing.T) {
	left := mustTable(t, []string{"id", "message"}, []string{"1", "flood"})
	right := mustTable(t, []string{"id", "categories"}, []string{"2", "x"})

	_, err := OuterJoin(left, right, "id")
	require.NoError(t, err)

	assert.Equal(t, []any{int64(1), "flood"}, left.Rows[0])
	assert.Equal(t, []any{int64(2), "x"}, right.Rows[0])
}
