package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/dretl/pkg/dretl"
)

func TestInspectKeys(t *testing.T) {
	tbl := mustTable(t, []string{"id", "message"},
		[]string{"1", "a"},
		[]string{"2", "b"},
		[]string{"", "c"},
		[]string{"2", "d"},
		[]string{"1", "e"},
		[]string{"2", "f"},
	)

	report, err := InspectKeys(tbl, "id")
	require.NoError(t, err)

	assert.Equal(t, 1, report.Missing)
	assert.Equal(t, []string{"2", "1"}, report.Duplicated)
}

func TestInspectKeys_MissingColumn(t *testing.T) {
	tbl := mustTable(t, []string{"message"}, []string{"a"})
	_, err := InspectKeys(tbl, "id")
	require.ErrorIs(t, err, dretl.ErrColumnNotFound)
}
