package store

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/vvka-141/dretl/pkg/dretl"

	_ "modernc.org/sqlite"
)

// Options configure the destination table.
type Options struct {
	TableName string
	Policy    dretl.WritePolicy
}

// SQLiteWriter writes a table into a SQLite database file.
type SQLiteWriter struct {
	logger   dretl.Logger
	approver dretl.Approver
	opts     Options
}

// NewSQLiteWriter creates a new SQLiteWriter.
// The approver is consulted only under the replace policy and may be nil
// otherwise. Panics on a nil logger, or a nil approver with the replace policy.
func NewSQLiteWriter(logger dretl.Logger, approver dretl.Approver, opts Options) *SQLiteWriter {
	if logger == nil {
		panic("logger cannot be nil")
	}
	if opts.Policy == dretl.WritePolicyReplace && approver == nil {
		panic("approver cannot be nil with the replace policy")
	}
	if opts.TableName == "" {
		opts.TableName = dretl.DefaultTableName
	}
	return &SQLiteWriter{logger: logger, approver: approver, opts: opts}
}

// Write stores every row of t in the destination table of the database at
// dbPath, creating the file if needed.
func (w *SQLiteWriter) Write(ctx context.Context, t *dretl.Table, dbPath string) error {
	if len(t.Columns) == 0 {
		return errors.New("table has no columns")
	}

	db, err := sqlx.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database %s: %w", dbPath, err)
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	name := w.opts.TableName
	exists, err := tableExists(ctx, db, name)
	if err != nil {
		return fmt.Errorf("failed to inspect database %s: %w", dbPath, err)
	}

	create := !exists
	if exists {
		switch w.opts.Policy {
		case dretl.WritePolicyAppend:
			if err := w.checkColumns(ctx, db, t); err != nil {
				return err
			}
		case dretl.WritePolicyReplace:
			if err := w.approveReplace(ctx); err != nil {
				return err
			}
			create = true
		default:
			return fmt.Errorf("table %q already exists in %s (use --if-exists replace or append): %w",
				name, dbPath, dretl.ErrTableExists)
		}
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if exists && create {
		if _, err := tx.ExecContext(ctx, "DROP TABLE "+quoteIdent(name)); err != nil {
			return fmt.Errorf("failed to drop table %q: %w", name, err)
		}
		w.logger.Verbose("Dropped existing table %q", name)
	}
	if create {
		if _, err := tx.ExecContext(ctx, createStatement(name, t.Columns)); err != nil {
			return fmt.Errorf("failed to create table %q: %w", name, err)
		}
	}

	if err := insertRows(ctx, tx, name, t); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}

	w.logger.Verbose("Wrote %d rows to table %q (policy: %s)", t.Len(), name, w.opts.Policy)
	return nil
}

func (w *SQLiteWriter) approveReplace(ctx context.Context) error {
	approved, err := w.approver.RequestApproval(ctx, w.opts.TableName)
	if err != nil {
		return fmt.Errorf("approval failed: %w", err)
	}
	if !approved {
		return fmt.Errorf("replacing table %q: %w", w.opts.TableName, dretl.ErrApprovalDenied)
	}
	return nil
}

func (w *SQLiteWriter) checkColumns(ctx context.Context, db *sqlx.DB, t *dretl.Table) error {
	existing, err := tableColumns(ctx, db, w.opts.TableName)
	if err != nil {
		return fmt.Errorf("failed to read columns of %q: %w", w.opts.TableName, err)
	}

	want := t.ColumnNames()
	if !slices.Equal(existing, want) {
		return fmt.Errorf("table %q has columns [%s], result has [%s]: %w",
			w.opts.TableName, strings.Join(existing, ", "), strings.Join(want, ", "), dretl.ErrSchemaMismatch)
	}
	return nil
}

func insertRows(ctx context.Context, tx *sqlx.Tx, name string, t *dretl.Table) error {
	cols := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		cols[i] = quoteIdent(c.Name)
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(cols)), ",")

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO "+quoteIdent(name)+" ("+strings.Join(cols, ",")+") VALUES ("+placeholders+")")
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, row := range t.Rows {
		if _, err := stmt.ExecContext(ctx, row...); err != nil {
			return fmt.Errorf("failed to insert row %d: %w", i+1, err)
		}
	}
	return nil
}

func createStatement(name string, columns []dretl.Column) string {
	defs := make([]string, len(columns))
	for i, c := range columns {
		defs[i] = quoteIdent(c.Name) + " " + c.Kind.String()
	}
	return "CREATE TABLE " + quoteIdent(name) + " (" + strings.Join(defs, ", ") + ")"
}

func tableExists(ctx context.Context, db *sqlx.DB, name string) (bool, error) {
	var n int
	if err := db.GetContext(ctx, &n,
		"SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name = ?", name); err != nil {
		return false, err
	}
	return n > 0, nil
}

func tableColumns(ctx context.Context, db *sqlx.DB, name string) ([]string, error) {
	var names []string
	err := db.SelectContext(ctx, &names, "SELECT name FROM pragma_table_info(?) ORDER BY cid", name)
	return names, err
}

// quoteIdent quotes a SQLite identifier.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

var _ dretl.TableWriter = (*SQLiteWriter)(nil)
