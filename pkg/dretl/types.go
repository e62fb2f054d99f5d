package dretl

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// PipelineConfig contains all parameters needed for one ETL run.
type PipelineConfig struct {
	// MessagesPath is the CSV file holding the identifier and message text
	MessagesPath string

	// CategoriesPath is the CSV file holding the identifier and delimited labels
	CategoriesPath string

	// DatabasePath is the SQLite file the cleaned table is written to
	DatabasePath string

	// TableName is the destination table (default: disaster_texts)
	TableName string

	// KeyColumn is the join key present in both inputs
	KeyColumn string

	// CategoryColumn is the column split into indicator columns
	CategoryColumn string

	// Separator splits the category column into label tokens
	Separator string

	// Labels is an optional explicit label schema. When empty, the schema is
	// derived from the first row carrying a category value.
	Labels []string

	// IfExists decides what happens when the destination table exists
	IfExists WritePolicy

	// Force bypasses interactive approval when IfExists is WritePolicyReplace
	Force bool

	// MissingKeys governs rows without a join key
	MissingKeys KeyPolicy

	// DuplicateKeys governs identifiers repeated within one input
	DuplicateKeys KeyPolicy

	// Timeout is the global timeout for the entire run
	Timeout time.Duration

	// Verbose enables detailed logging
	Verbose bool
}

// ApplyDefaults fills unset fields with the package defaults.
func (c *PipelineConfig) ApplyDefaults() {
	if c.TableName == "" {
		c.TableName = DefaultTableName
	}
	if c.KeyColumn == "" {
		c.KeyColumn = DefaultKeyColumn
	}
	if c.CategoryColumn == "" {
		c.CategoryColumn = DefaultCategoryColumn
	}
	if c.Separator == "" {
		c.Separator = DefaultSeparator
	}
}

// Validate checks if the PipelineConfig has all required fields and valid values.
// It returns a multi-error if multiple validation failures occur.
func (c *PipelineConfig) Validate() error {
	var errs []error

	if c.MessagesPath == "" {
		errs = append(errs, fmt.Errorf("MessagesPath is required: %w", ErrInvalidConfig))
	}
	if c.CategoriesPath == "" {
		errs = append(errs, fmt.Errorf("CategoriesPath is required: %w", ErrInvalidConfig))
	}
	if c.DatabasePath == "" {
		errs = append(errs, fmt.Errorf("DatabasePath is required: %w", ErrInvalidConfig))
	}
	if c.TableName == "" {
		errs = append(errs, fmt.Errorf("TableName is required: %w", ErrInvalidConfig))
	}
	if c.KeyColumn == "" {
		errs = append(errs, fmt.Errorf("KeyColumn is required: %w", ErrInvalidConfig))
	}
	if c.CategoryColumn == "" {
		errs = append(errs, fmt.Errorf("CategoryColumn is required: %w", ErrInvalidConfig))
	}
	if c.KeyColumn != "" && c.KeyColumn == c.CategoryColumn {
		errs = append(errs, fmt.Errorf("key column and category column must differ: %w", ErrInvalidConfig))
	}
	if c.Separator == "" {
		errs = append(errs, fmt.Errorf("Separator is required: %w", ErrInvalidConfig))
	}
	if !c.IfExists.IsValid() {
		errs = append(errs, fmt.Errorf("unknown write policy %s: %w", c.IfExists, ErrInvalidConfig))
	}
	if !c.MissingKeys.IsValid() {
		errs = append(errs, fmt.Errorf("unknown missing-key policy %s: %w", c.MissingKeys, ErrInvalidConfig))
	}
	if !c.DuplicateKeys.IsValid() {
		errs = append(errs, fmt.Errorf("unknown duplicate-key policy %s: %w", c.DuplicateKeys, ErrInvalidConfig))
	}

	// Force only makes sense for the destructive policy
	if c.Force && c.IfExists != WritePolicyReplace {
		errs = append(errs, fmt.Errorf("force flag requires the replace write policy: %w", ErrInvalidConfig))
	}

	seen := make(map[string]bool, len(c.Labels))
	for _, label := range c.Labels {
		if label == "" {
			errs = append(errs, fmt.Errorf("empty label in explicit label list: %w", ErrInvalidConfig))
			continue
		}
		if seen[label] {
			errs = append(errs, fmt.Errorf("label %q listed twice: %w", label, ErrInvalidConfig))
		}
		seen[label] = true
	}

	if c.Timeout < 0 {
		errs = append(errs, fmt.Errorf("timeout cannot be negative: %w", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// WritePolicy decides how the writer treats an existing destination table.
type WritePolicy int

const (
	WritePolicyCreate  WritePolicy = iota // Fail if the table exists
	WritePolicyReplace                    // Drop and recreate (requires approval)
	WritePolicyAppend                     // Insert into the existing table
)

// String returns the configuration spelling of the WritePolicy.
func (p WritePolicy) String() string {
	switch p {
	case WritePolicyCreate:
		return "create"
	case WritePolicyReplace:
		return "replace"
	case WritePolicyAppend:
		return "append"
	default:
		return fmt.Sprintf("Unknown(%d)", int(p))
	}
}

// IsValid returns true if the WritePolicy is a valid, defined value.
func (p WritePolicy) IsValid() bool {
	return p >= WritePolicyCreate && p <= WritePolicyAppend
}

// ParseWritePolicy converts "create", "replace" or "append" (case-insensitive).
// An empty string yields WritePolicyCreate.
func ParseWritePolicy(s string) (WritePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "create", "fail":
		return WritePolicyCreate, nil
	case "replace":
		return WritePolicyReplace, nil
	case "append":
		return WritePolicyAppend, nil
	}
	return WritePolicyCreate, fmt.Errorf("write policy %q (want create, replace or append): %w", s, ErrInvalidConfig)
}

// KeyPolicy decides how missing or duplicated join keys are handled.
type KeyPolicy int

const (
	KeyPolicyAccept KeyPolicy = iota // Keep silently
	KeyPolicyWarn                    // Keep and log a warning
	KeyPolicyReject                  // Fail with ErrKeyViolation
)

// String returns the configuration spelling of the KeyPolicy.
func (p KeyPolicy) String() string {
	switch p {
	case KeyPolicyAccept:
		return "accept"
	case KeyPolicyWarn:
		return "warn"
	case KeyPolicyReject:
		return "reject"
	default:
		return fmt.Sprintf("Unknown(%d)", int(p))
	}
}

// IsValid returns true if the KeyPolicy is a valid, defined value.
func (p KeyPolicy) IsValid() bool {
	return p >= KeyPolicyAccept && p <= KeyPolicyReject
}

// ParseKeyPolicy converts "accept", "warn" or "reject" (case-insensitive).
// An empty string yields KeyPolicyAccept.
func ParseKeyPolicy(s string) (KeyPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "accept":
		return KeyPolicyAccept, nil
	case "warn":
		return KeyPolicyWarn, nil
	case "reject":
		return KeyPolicyReject, nil
	}
	return KeyPolicyAccept, fmt.Errorf("key policy %q (want accept, warn or reject): %w", s, ErrInvalidConfig)
}
