package filesystem

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sync"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory files
type memoryFileInfo struct {
	name    string
	size    int64
	modTime time.Time
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return 0644 }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return false }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

type memoryFile struct {
	content []byte
	info    *memoryFileInfo
}

// MemoryFileSystem implements FileSystemProvider for in-memory testing.
// Every ReadFile and Stat call is recorded, so tests can assert that no
// input was touched.
type MemoryFileSystem struct {
	mu       sync.Mutex
	files    map[string]*memoryFile // map of cleaned path -> file
	accessed []string
}

// NewMemoryFileSystem creates an empty in-memory filesystem.
func NewMemoryFileSystem() *MemoryFileSystem {
	return &MemoryFileSystem{
		files: make(map[string]*memoryFile),
	}
}

// AddFile adds a file to the in-memory filesystem
func (mfs *MemoryFileSystem) AddFile(filePath string, content string) {
	mfs.AddFileWithTime(filePath, content, time.Now())
}

// AddFileWithTime adds a file with a specific modification time
func (mfs *MemoryFileSystem) AddFileWithTime(filePath string, content string, modTime time.Time) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	key := normalize(filePath)
	mfs.files[key] = &memoryFile{
		content: []byte(content),
		info: &memoryFileInfo{
			name:    path.Base(key),
			size:    int64(len(content)),
			modTime: modTime,
		},
	}
}

// Accessed returns the paths passed to ReadFile and Stat, in call order.
func (mfs *MemoryFileSystem) Accessed() []string {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	return append([]string(nil), mfs.accessed...)
}

// ReadFile implements FileSystemProvider.ReadFile
func (mfs *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	file, err := mfs.lookup(filePath)
	if err != nil {
		return nil, err
	}
	return append([]byte(nil), file.content...), nil
}

// Stat implements FileSystemProvider.Stat
func (mfs *MemoryFileSystem) Stat(filePath string) (FileInfo, error) {
	file, err := mfs.lookup(filePath)
	if err != nil {
		return nil, err
	}
	return file.info, nil
}

func (mfs *MemoryFileSystem) lookup(filePath string) (*memoryFile, error) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	mfs.accessed = append(mfs.accessed, filePath)
	file, exists := mfs.files[normalize(filePath)]
	if !exists {
		return nil, fmt.Errorf("file not found: %s: %w", filePath, fs.ErrNotExist)
	}
	return file, nil
}

// normalize converts to forward slashes (virtual filesystem convention)
func normalize(p string) string {
	return path.Clean(filepath.ToSlash(p))
}

var _ FileSystemProvider = (*MemoryFileSystem)(nil)
