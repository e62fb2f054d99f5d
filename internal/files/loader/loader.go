package loader

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vvka-141/dretl/internal/checksum"
	"github.com/vvka-141/dretl/internal/files/filesystem"
	"github.com/vvka-141/dretl/internal/table"
	"github.com/vvka-141/dretl/pkg/dretl"
)

// maxListedKeys caps how many duplicated identifiers a warning names.
const maxListedKeys = 5

// Options control how inputs are merged.
type Options struct {
	KeyColumn     string
	MissingKeys   dretl.KeyPolicy
	DuplicateKeys dretl.KeyPolicy
}

// Source describes one parsed input file.
type Source struct {
	Path               string
	Size               int64
	Rows               int
	Checksum           string
	ChecksumNormalized string
}

// Loader reads CSV inputs and merges them on the key column.
type Loader struct {
	fs         filesystem.FileSystemProvider
	calculator checksum.Calculator
	logger     dretl.Logger
	opts       Options
}

// NewLoader creates a new CSV loader.
// Panics on nil dependencies; an empty KeyColumn defaults to "id".
func NewLoader(fs filesystem.FileSystemProvider, calculator checksum.Calculator, logger dretl.Logger, opts Options) *Loader {
	if fs == nil {
		panic("fs cannot be nil")
	}
	if calculator == nil {
		panic("calculator cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	if opts.KeyColumn == "" {
		opts.KeyColumn = dretl.DefaultKeyColumn
	}
	return &Loader{fs: fs, calculator: calculator, logger: logger, opts: opts}
}

// Load parses both inputs and returns their outer join on the key column.
func (l *Loader) Load(messagesPath, categoriesPath string) (*dretl.Table, error) {
	messages, err := l.loadInput("messages", messagesPath)
	if err != nil {
		return nil, err
	}

	categories, err := l.loadInput("categories", categoriesPath)
	if err != nil {
		return nil, err
	}

	merged, err := table.OuterJoin(messages, categories, l.opts.KeyColumn)
	if err != nil {
		return nil, fmt.Errorf("failed to merge inputs: %w", err)
	}

	l.logger.Verbose("Merged %d message rows and %d category rows into %d rows",
		messages.Len(), categories.Len(), merged.Len())
	return merged, nil
}

func (l *Loader) loadInput(role, path string) (*dretl.Table, error) {
	t, src, err := l.ReadCSV(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s file: %w", role, err)
	}
	l.logger.Verbose("Read %s: %s (%d rows, sha256 %s, %d bytes)", role, src.Path, src.Rows, src.Checksum, src.Size)

	if err := l.checkKeys(role, t); err != nil {
		return nil, err
	}
	return t, nil
}

// ReadCSV reads and parses one CSV file whose first record is the header.
func (l *Loader) ReadCSV(path string) (*dretl.Table, Source, error) {
	src := Source{Path: path}

	info, err := l.fs.Stat(path)
	if err != nil {
		return nil, src, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, src, fmt.Errorf("failed to read %s: path is a directory, not a file", path)
	}
	src.Size = info.Size()

	content, err := l.fs.ReadFile(path)
	if err != nil {
		return nil, src, fmt.Errorf("failed to read %s: %w", path, err)
	}
	src.Checksum = l.calculator.CalculateRaw(content)
	src.ChecksumNormalized = l.calculator.CalculateNormalized(content)

	t, err := Parse(content)
	if err != nil {
		return nil, src, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	src.Rows = t.Len()
	return t, src, nil
}

// Parse parses comma-separated content into a typed table.
// A leading UTF-8 byte order mark is ignored.
func Parse(content []byte) (*dretl.Table, error) {
	content = bytes.TrimPrefix(content, []byte{0xEF, 0xBB, 0xBF})

	reader := csv.NewReader(bytes.NewReader(content))
	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("file is empty, expected a header row")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	return table.FromRecords(header, records)
}

func (l *Loader) checkKeys(role string, t *dretl.Table) error {
	if l.opts.MissingKeys == dretl.KeyPolicyAccept && l.opts.DuplicateKeys == dretl.KeyPolicyAccept {
		return nil
	}

	report, err := table.InspectKeys(t, l.opts.KeyColumn)
	if err != nil {
		return fmt.Errorf("%s file: %w", role, err)
	}

	if report.Missing > 0 {
		msg := fmt.Sprintf("%s file: %d row(s) have no %q value", role, report.Missing, l.opts.KeyColumn)
		if err := l.apply(l.opts.MissingKeys, msg); err != nil {
			return err
		}
	}

	if n := len(report.Duplicated); n > 0 {
		listed := report.Duplicated
		if n > maxListedKeys {
			listed = listed[:maxListedKeys]
		}
		msg := fmt.Sprintf("%s file: %d %q value(s) appear more than once (%s", role, n, l.opts.KeyColumn, strings.Join(listed, ", "))
		if n > maxListedKeys {
			msg += ", ..."
		}
		msg += ")"
		if err := l.apply(l.opts.DuplicateKeys, msg); err != nil {
			return err
		}
	}

	return nil
}

func (l *Loader) apply(policy dretl.KeyPolicy, msg string) error {
	switch policy {
	case dretl.KeyPolicyWarn:
		l.logger.Warn("%s", msg)
	case dretl.KeyPolicyReject:
		return fmt.Errorf("%s: %w", msg, dretl.ErrKeyViolation)
	}
	return nil
}

var _ dretl.DatasetLoader = (*Loader)(nil)
