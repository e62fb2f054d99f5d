package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_AllFields(t *testing.T) {
	path := writeConfig(t, `table: messages_clean
if_exists: append
key: msg_id
category_column: labels
separator: "|"
categories: [related, request, offer]
missing_keys: warn
duplicate_keys: reject
timeout: 5m
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "messages_clean", cfg.Table)
	assert.Equal(t, "append", cfg.IfExists)
	assert.Equal(t, "msg_id", cfg.Key)
	assert.Equal(t, "labels", cfg.CategoryColumn)
	assert.Equal(t, "|", cfg.Separator)
	assert.Equal(t, []string{"related", "request", "offer"}, cfg.Categories)
	assert.Equal(t, "warn", cfg.MissingKeys)
	assert.Equal(t, "reject", cfg.DuplicateKeys)
	assert.Equal(t, "5m", cfg.Timeout)
}

func TestLoad_MinimalYAML(t *testing.T) {
	cfg, err := Load(writeConfig(t, "table: other\n"))
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "other", cfg.Table)
	assert.Equal(t, "", cfg.IfExists)
	assert.Nil(t, cfg.Categories)
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, &ProjectConfig{}, cfg)
}

func TestLoad_FileNotFound(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), ConfigFileName))
	assert.True(t, errors.Is(err, ErrConfigNotFound), "expected ErrConfigNotFound, got: %v", err)
	assert.Nil(t, cfg)
}

func TestLoad_InvalidYAML(t *testing.T) {
	cfg, err := Load(writeConfig(t, "{{invalid"))
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_UnknownKey(t *testing.T) {
	cfg, err := Load(writeConfig(t, "tabel: typo\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tabel")
	assert.Nil(t, cfg)
}
