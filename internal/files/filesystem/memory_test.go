package filesystem

import (
	"errors"
	"io/fs"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMemoryFileSystem_ReadFile(t *testing.T) {
	mfs := NewMemoryFileSystem()

	expectedContent := "id,message\n1,flood\n"
	mfs.AddFile("data/disaster_messages.csv", expectedContent)

	content, err := mfs.ReadFile("data/disaster_messages.csv")
	require.NoError(t, err)
	require.Equal(t, expectedContent, string(content))

	// Normalized path resolves to the same file
	content, err = mfs.ReadFile("./data/../data/disaster_messages.csv")
	require.NoError(t, err)
	require.Equal(t, expectedContent, string(content))
}

func TestMemoryFileSystem_ReadFileReturnsCopy(t *testing.T) {
	mfs := NewMemoryFileSystem()
	mfs.AddFile("a.csv", "abc")

	content, err := mfs.ReadFile("a.csv")
	require.NoError(t, err)
	content[0] = 'X'

	again, err := mfs.ReadFile("a.csv")
	require.NoError(t, err)
	require.Equal(t, "abc", string(again))
}

func TestMemoryFileSystem_Stat(t *testing.T) {
	mfs := NewMemoryFileSystem()
	modTime := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	mfs.AddFileWithTime("categories.csv", "id,categories\n", modTime)

	info, err := mfs.Stat("categories.csv")
	require.NoError(t, err)
	require.False(t, info.IsDir())
	require.Equal(t, "categories.csv", info.Name())
	require.Equal(t, int64(len("id,categories\n")), info.Size())
	require.True(t, info.ModTime().Equal(modTime))
}

func TestMemoryFileSystem_NotFound(t *testing.T) {
	mfs := NewMemoryFileSystem()

	_, err := mfs.ReadFile("missing.csv")
	require.Error(t, err)
	require.True(t, errors.Is(err, fs.ErrNotExist))

	_, err = mfs.Stat("missing.csv")
	require.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestMemoryFileSystem_Accessed(t *testing.T) {
	mfs := NewMemoryFileSystem()
	mfs.AddFile("a.csv", "x")

	require.Empty(t, mfs.Accessed())

	_, _ = mfs.ReadFile("a.csv")
	_, _ = mfs.Stat("b.csv")

	require.Equal(t, []string{"a.csv", "b.csv"}, mfs.Accessed())
}
