package dretl_test

import (
	"errors"
	"testing"
	"time"

	"github.com/vvka-141/dretl/pkg/dretl"
)

func validConfig() dretl.PipelineConfig {
	cfg := dretl.PipelineConfig{
		MessagesPath:   "disaster_messages.csv",
		CategoriesPath: "disaster_categories.csv",
		DatabasePath:   "DisasterResponse.db",
	}
	cfg.ApplyDefaults()
	return cfg
}

func TestPipelineConfig_ApplyDefaults(t *testing.T) {
	cfg := dretl.PipelineConfig{}
	cfg.ApplyDefaults()

	if cfg.TableName != dretl.DefaultTableName {
		t.Errorf("TableName = %q, want %q", cfg.TableName, dretl.DefaultTableName)
	}
	if cfg.KeyColumn != "id" {
		t.Errorf("KeyColumn = %q, want id", cfg.KeyColumn)
	}
	if cfg.CategoryColumn != "categories" {
		t.Errorf("CategoryColumn = %q, want categories", cfg.CategoryColumn)
	}
	if cfg.Separator != ";" {
		t.Errorf("Separator = %q, want ;", cfg.Separator)
	}
	if cfg.Timeout != 0 {
		t.Errorf("Timeout = %v, want no deadline", cfg.Timeout)
	}
	if cfg.IfExists != dretl.WritePolicyCreate {
		t.Errorf("IfExists = %v, want create", cfg.IfExists)
	}
}

func TestPipelineConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*dretl.PipelineConfig)
		wantError bool
	}{
		{"valid config", func(*dretl.PipelineConfig) {}, false},
		{"valid replace with force", func(c *dretl.PipelineConfig) {
			c.IfExists = dretl.WritePolicyReplace
			c.Force = true
		}, false},
		{"valid explicit labels", func(c *dretl.PipelineConfig) { c.Labels = []string{"related", "request"} }, false},
		{"missing messages path", func(c *dretl.PipelineConfig) { c.MessagesPath = "" }, true},
		{"missing categories path", func(c *dretl.PipelineConfig) { c.CategoriesPath = "" }, true},
		{"missing database path", func(c *dretl.PipelineConfig) { c.DatabasePath = "" }, true},
		{"key equals category column", func(c *dretl.PipelineConfig) { c.CategoryColumn = "id" }, true},
		{"force without replace", func(c *dretl.PipelineConfig) { c.Force = true }, true},
		{"unknown write policy", func(c *dretl.PipelineConfig) { c.IfExists = dretl.WritePolicy(9) }, true},
		{"unknown key policy", func(c *dretl.PipelineConfig) { c.DuplicateKeys = dretl.KeyPolicy(-1) }, true},
		{"duplicate label", func(c *dretl.PipelineConfig) { c.Labels = []string{"a", "a"} }, true},
		{"empty label", func(c *dretl.PipelineConfig) { c.Labels = []string{""} }, true},
		{"negative timeout", func(c *dretl.PipelineConfig) { c.Timeout = -time.Second }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantError {
				t.Fatalf("Validate() error = %v, wantError %v", err, tt.wantError)
			}
			if err != nil && !errors.Is(err, dretl.ErrInvalidConfig) {
				t.Errorf("Validate() error should wrap ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestPipelineConfig_Validate_CollectsAllErrors(t *testing.T) {
	cfg := dretl.PipelineConfig{}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for empty config")
	}
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		t.Fatalf("expected joined error, got %T", err)
	}
	if n := len(joined.Unwrap()); n < 3 {
		t.Errorf("expected at least 3 validation errors, got %d", n)
	}
}

func TestParseWritePolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    dretl.WritePolicy
		wantErr bool
	}{
		{"", dretl.WritePolicyCreate, false},
		{"create", dretl.WritePolicyCreate, false},
		{"fail", dretl.WritePolicyCreate, false},
		{"Replace", dretl.WritePolicyReplace, false},
		{" append ", dretl.WritePolicyAppend, false},
		{"upsert", dretl.WritePolicyCreate, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := dretl.ParseWritePolicy(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseWritePolicy(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseWritePolicy(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseKeyPolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    dretl.KeyPolicy
		wantErr bool
	}{
		{"", dretl.KeyPolicyAccept, false},
		{"accept", dretl.KeyPolicyAccept, false},
		{"WARN", dretl.KeyPolicyWarn, false},
		{"reject", dretl.KeyPolicyReject, false},
		{"ignore", dretl.KeyPolicyAccept, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := dretl.ParseKeyPolicy(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseKeyPolicy(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseKeyPolicy(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestPolicyStrings(t *testing.T) {
	if got := dretl.WritePolicyAppend.String(); got != "append" {
		t.Errorf("WritePolicyAppend.String() = %q", got)
	}
	if got := dretl.WritePolicy(42).String(); got != "Unknown(42)" {
		t.Errorf("WritePolicy(42).String() = %q", got)
	}
	if got := dretl.KeyPolicyWarn.String(); got != "warn" {
		t.Errorf("KeyPolicyWarn.String() = %q", got)
	}
	if got := dretl.KindInteger.String(); got != "INTEGER" {
		t.Errorf("KindInteger.String() = %q", got)
	}
}

func TestTable_ColumnIndex(t *testing.T) {
	tbl := &dretl.Table{
		Columns: []dretl.Column{{Name: "id", Kind: dretl.KindInteger}, {Name: "message"}},
		Rows:    [][]any{{int64(1), "flood"}},
	}
	if got := tbl.ColumnIndex("message"); got != 1 {
		t.Errorf("ColumnIndex(message) = %d, want 1", got)
	}
	if got := tbl.ColumnIndex("missing"); got != -1 {
		t.Errorf("ColumnIndex(missing) = %d, want -1", got)
	}
	if got := tbl.ColumnNames(); len(got) != 2 || got[0] != "id" || got[1] != "message" {
		t.Errorf("ColumnNames() = %v", got)
	}
	if tbl.Len() != 1 {
		t.Errorf("Len() = %d, want 1", tbl.Len())
	}
}
