package dretl

import "context"

// DatasetLoader reads the messages and categories inputs and merges them
// with an outer join on the key column.
type DatasetLoader interface {
	Load(messagesPath, categoriesPath string) (*Table, error)
}

// DatasetCleaner expands the category column into indicator columns and
// removes duplicate rows.
type DatasetCleaner interface {
	Clean(t *Table) (*Table, error)
}

// TableWriter persists a table into the database file at dbPath.
// Implementations are NOT safe for concurrent use against the same file.
type TableWriter interface {
	Write(ctx context.Context, t *Table, dbPath string) error
}
