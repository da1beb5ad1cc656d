// Package config loads the YAML configuration for the html2md CLI.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/alnah/go-html2md/internal/fileutil"
	"github.com/alnah/go-html2md/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
)

// DefaultExtension is the output file extension when none is configured.
const DefaultExtension = "md"

// Config holds all CLI configuration. Flags override these values.
type Config struct {
	Input   InputConfig   `yaml:"input"`
	Output  OutputConfig  `yaml:"output"`
	Preview PreviewConfig `yaml:"preview"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Resolve bare input names against this directory
}

// OutputConfig defines where Markdown files land.
type OutputConfig struct {
	Dir       string `yaml:"dir"`       // Output directory (empty = stdout)
	Extension string `yaml:"extension"` // Output extension without the dot
}

// PreviewConfig controls the optional HTML preview.
type PreviewConfig struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Output: OutputConfig{Extension: DefaultExtension},
	}
}

// Load reads and validates a config file. Unknown fields are rejected
// so typos surface instead of silently doing nothing.
func Load(path string) (*Config, error) {
	if !fileutil.FileExists(path) {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	cfg := Default()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if cfg.Output.Extension == "" {
		cfg.Output.Extension = DefaultExtension
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field values that get spliced into file paths.
func (c *Config) Validate() error {
	if err := fileutil.ValidateExtension(c.Output.Extension); err != nil {
		return fmt.Errorf("output extension: %w", err)
	}
	return nil
}
