package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/dretl/internal/config"
	"github.com/vvka-141/dretl/pkg/dretl"
)

// Environment variables consulted between flags and dretl.yaml.
const (
	EnvTable    = "DRETL_TABLE"
	EnvIfExists = "DRETL_IF_EXISTS"
)

// loadProjectConfig loads godotenv and project configuration.
// With an empty path, ./dretl.yaml is used if present; a missing default
// file is not an error. An explicit path must exist.
func loadProjectConfig(path string) (*config.ProjectConfig, error) {
	_ = godotenv.Load()

	explicit := path != ""
	if !explicit {
		path = config.ConfigFileName
	}

	projectCfg, err := config.Load(path)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			if explicit {
				return nil, fmt.Errorf("config file %s not found: %w", path, dretl.ErrInvalidConfig)
			}
			return &config.ProjectConfig{}, nil
		}
		return nil, fmt.Errorf("failed to load %s: %w: %w", path, dretl.ErrInvalidConfig, err)
	}
	return projectCfg, nil
}

// resolveString picks the flag value when the flag was set, then the
// environment variable, then the config file value.
func resolveString(cmd *cobra.Command, flagName, flagValue, envKey, fileValue string) string {
	if cmd.Flags().Changed(flagName) {
		return flagValue
	}
	if envKey != "" {
		if v := os.Getenv(envKey); v != "" {
			return v
		}
	}
	if fileValue != "" {
		return fileValue
	}
	return flagValue
}

// resolveEffectiveTimeout returns the effective timeout, preferring dretl.yaml if flag wasn't set.
func resolveEffectiveTimeout(
	cmd *cobra.Command,
	projectCfg *config.ProjectConfig,
	flagTimeout time.Duration,
) (time.Duration, error) {
	if projectCfg != nil && projectCfg.Timeout != "" && !cmd.Flags().Changed("timeout") {
		parsed, err := time.ParseDuration(projectCfg.Timeout)
		if err != nil {
			return 0, fmt.Errorf("invalid timeout in dretl.yaml: %w: %w", dretl.ErrInvalidConfig, err)
		}
		return parsed, nil
	}
	return flagTimeout, nil
}
