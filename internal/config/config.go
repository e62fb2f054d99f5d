package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ProjectConfig is the content of a dretl.yaml file. Empty fields leave the
// corresponding setting to the environment or built-in defaults.
type ProjectConfig struct {
	Table          string   `yaml:"table"`
	IfExists       string   `yaml:"if_exists"`
	Key            string   `yaml:"key"`
	CategoryColumn string   `yaml:"category_column"`
	Separator      string   `yaml:"separator"`
	Categories     []string `yaml:"categories,omitempty"`
	MissingKeys    string   `yaml:"missing_keys"`
	DuplicateKeys  string   `yaml:"duplicate_keys"`
	Timeout        string   `yaml:"timeout"`
}

const ConfigFileName = "dretl.yaml"

// Load reads the config file at path. Unknown keys are rejected.
// An empty file yields an empty config.
func Load(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("invalid %s: %w", path, err)
	}
	return &cfg, nil
}
