// Package config loads catalogcheck settings from defaults, an optional JSON
// config file and CATALOGCHECK_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "CATALOGCHECK_"

// Configuration represents the catalogcheck configuration
type Configuration struct {
	Root         string `koanf:"root" validate:"required"`
	TaxonomyPath string `koanf:"taxonomy_path" validate:"required"`
	ResultsPath  string `koanf:"results_path" validate:"required"`
	NoColor      bool   `koanf:"no_color"`
}

// Load loads configuration from the config file and environment sources
// Priority: Environment variables > Config file > Defaults
// The result is not validated; callers apply flag overrides first and then
// call Validate.
func Load(configPath string) (*Configuration, error) {
	k := koanf.New(".")

	// Apply defaults first
	for key, value := range GetDefaults() {
		k.Set(key, value)
	}

	// Load config file if it exists
	if configPath != "" {
		configPath = expandHomePath(configPath)
		if _, err := os.Stat(configPath); err == nil {
			if err := k.Load(file.Provider(configPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
			}
		}
	}

	// Override with environment variables (highest priority)
	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment config: %w", err)
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Validate checks required fields.
func (c *Configuration) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// TaxonomyFile returns the taxonomy document path resolved against Root.
func (c *Configuration) TaxonomyFile() string {
	return c.resolve(c.TaxonomyPath)
}

// ResultsFile returns the results document path resolved against Root.
func (c *Configuration) ResultsFile() string {
	return c.resolve(c.ResultsPath)
}

func (c *Configuration) resolve(path string) string {
	path = expandHomePath(path)
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(expandHomePath(c.Root), path)
}

// envTransform converts environment variable names to config keys
// Example: CATALOGCHECK_TAXONOMY_PATH -> taxonomy_path
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}

// expandHomePath expands ~ to the user's home directory
func expandHomePath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(homeDir, path[2:])
		}
	}
	return path
}
