package cleaner

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vvka-141/dretl/internal/table"
	"github.com/vvka-141/dretl/pkg/dretl"
)

// Options configure the category expansion.
type Options struct {
	// CategoryColumn names the delimited multi-label column.
	CategoryColumn string

	// Separator splits the category value into tokens.
	Separator string

	// Labels, when set, is the expected label schema in column order.
	// When empty the schema is derived from the data.
	Labels []string
}

// Cleaner expands category tokens into indicator columns.
type Cleaner struct {
	logger dretl.Logger
	opts   Options
}

// NewCleaner creates a new Cleaner.
// Empty CategoryColumn and Separator fall back to the package defaults.
func NewCleaner(logger dretl.Logger, opts Options) *Cleaner {
	if logger == nil {
		panic("logger cannot be nil")
	}
	if opts.CategoryColumn == "" {
		opts.CategoryColumn = dretl.DefaultCategoryColumn
	}
	if opts.Separator == "" {
		opts.Separator = dretl.DefaultSeparator
	}
	return &Cleaner{logger: logger, opts: opts}
}

// Clean replaces the category column with one integer indicator column per
// label and drops exact duplicate rows. The input table is not modified.
func (c *Cleaner) Clean(t *dretl.Table) (*dretl.Table, error) {
	col := t.ColumnIndex(c.opts.CategoryColumn)
	if col < 0 {
		return nil, fmt.Errorf("no %q column: %w", c.opts.CategoryColumn, dretl.ErrColumnNotFound)
	}

	labels, err := c.schema(t, col)
	if err != nil {
		return nil, err
	}
	if err := checkCollisions(t, col, labels); err != nil {
		return nil, err
	}
	c.logger.Verbose("Category labels (%d): %s", len(labels), strings.Join(labels, ", "))

	columns := make([]dretl.Column, 0, len(t.Columns)-1+len(labels))
	for i, column := range t.Columns {
		if i != col {
			columns = append(columns, column)
		}
	}
	for _, label := range labels {
		columns = append(columns, dretl.Column{Name: label, Kind: dretl.KindInteger})
	}

	expanded := &dretl.Table{Columns: columns, Rows: make([][]any, 0, len(t.Rows))}
	unlabeled := 0
	for i, row := range t.Rows {
		indicators, err := c.decode(i, row[col], labels)
		if err != nil {
			return nil, err
		}
		if indicators == nil {
			unlabeled++
		}

		out := make([]any, 0, len(columns))
		out = append(out, row[:col]...)
		out = append(out, row[col+1:]...)
		if indicators == nil {
			out = append(out, make([]any, len(labels))...)
		} else {
			out = append(out, indicators...)
		}
		expanded.Rows = append(expanded.Rows, out)
	}
	if unlabeled > 0 {
		c.logger.Verbose("%d row(s) have no %q value, indicators left empty", unlabeled, c.opts.CategoryColumn)
	}

	cleaned := table.DropDuplicates(expanded)
	c.logger.Verbose("Removed %d duplicate row(s), %d remain", expanded.Len()-cleaned.Len(), cleaned.Len())
	return cleaned, nil
}

// schema returns the configured labels or derives them from the first row
// that has a category value.
func (c *Cleaner) schema(t *dretl.Table, col int) ([]string, error) {
	labels := c.opts.Labels
	if len(labels) == 0 {
		for i, row := range t.Rows {
			if row[col] == nil {
				continue
			}
			derived, err := labelsOf(i, c.tokens(row[col]))
			if err != nil {
				return nil, err
			}
			labels = derived
			break
		}
	}
	if len(labels) == 0 {
		return nil, fmt.Errorf("no %q value to derive labels from: %w", c.opts.CategoryColumn, dretl.ErrShapeMismatch)
	}

	seen := make(map[string]bool, len(labels))
	for _, label := range labels {
		if seen[label] {
			return nil, fmt.Errorf("label %q appears more than once: %w", label, dretl.ErrShapeMismatch)
		}
		seen[label] = true
	}
	return labels, nil
}

func (c *Cleaner) tokens(v any) []string {
	return strings.Split(table.FormatCell(v), c.opts.Separator)
}

// decode validates one category value against the schema and returns its
// indicators. A missing value yields nil.
func (c *Cleaner) decode(row int, v any, labels []string) ([]any, error) {
	if v == nil {
		return nil, nil
	}

	tokens := c.tokens(v)
	if len(tokens) != len(labels) {
		return nil, fmt.Errorf("row %d: expected %d categories, found %d: %w", row+1, len(labels), len(tokens), dretl.ErrShapeMismatch)
	}

	indicators := make([]any, len(tokens))
	for pos, token := range tokens {
		label, err := labelOf(row, pos, token)
		if err != nil {
			return nil, err
		}
		if label != labels[pos] {
			return nil, fmt.Errorf("row %d, category %d: expected label %q, found %q: %w",
				row+1, pos+1, labels[pos], label, dretl.ErrShapeMismatch)
		}

		digit := token[len(token)-1]
		if digit < '0' || digit > '9' {
			return nil, fmt.Errorf("row %d, category %q: value %q is not a digit: %w",
				row+1, label, string(digit), dretl.ErrInvalidIndicator)
		}
		indicators[pos] = int64(digit - '0')
	}
	return indicators, nil
}

func labelsOf(row int, tokens []string) ([]string, error) {
	labels := make([]string, len(tokens))
	for pos, token := range tokens {
		label, err := labelOf(row, pos, token)
		if err != nil {
			return nil, err
		}
		labels[pos] = label
	}
	return labels, nil
}

// labelOf strips the indicator suffix from a token.
func labelOf(row, pos int, token string) (string, error) {
	if len(token) <= dretl.LabelSuffixLength {
		return "", fmt.Errorf("row %d, category %d: token %q is too short: %w", row+1, pos+1, token, dretl.ErrShapeMismatch)
	}
	return token[:len(token)-dretl.LabelSuffixLength], nil
}

func checkCollisions(t *dretl.Table, col int, labels []string) error {
	var errs []error
	for _, label := range labels {
		if i := t.ColumnIndex(label); i >= 0 && i != col {
			errs = append(errs, fmt.Errorf("label %q collides with an existing column: %w", label, dretl.ErrShapeMismatch))
		}
	}
	return errors.Join(errs...)
}

var _ dretl.DatasetCleaner = (*Cleaner)(nil)
