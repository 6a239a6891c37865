package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/rshade/pagelist/internal/pagination"
)

// Output formats accepted by output.default_format and --output.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// configFileName is the name of the config file inside the config directory.
const configFileName = "config.yaml"

// ErrInvalidOutputFormat is returned for an unknown output format.
var ErrInvalidOutputFormat = errors.New("output format must be one of: table, json, yaml")

// Config is the pagelist configuration.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	List    ListConfig    `yaml:"list"`
	Logging LoggingConfig `yaml:"logging"`

	configPath string
}

// OutputConfig controls how results are rendered.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" env:"OUTPUT_FORMAT"`
}

// ListConfig controls the generated collection and its paging.
type ListConfig struct {
	PageSize  int `yaml:"page_size"  env:"PAGE_SIZE"`
	ItemCount int `yaml:"item_count" env:"ITEM_COUNT"`
}

// LoggingConfig controls log level, format, and destination.
type LoggingConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"`
	Format string `yaml:"format" env:"LOG_FORMAT"`
	File   string `yaml:"file"   env:"LOG_FILE"`
}

// New returns a Config holding the defaults, pointed at the default config path.
func New() *Config {
	cfg := &Config{
		Output: OutputConfig{
			DefaultFormat: FormatTable,
		},
		List: ListConfig{
			PageSize:  pagination.DefaultPageSize,
			ItemCount: pagination.DefaultItemCount,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			File:   "",
		},
	}

	if dir, err := GetConfigDir(); err == nil {
		cfg.configPath = filepath.Join(dir, configFileName)
	}
	return cfg
}

// Load builds the effective configuration: defaults, then the config file
// (if present), then environment variables (a .env file in the working
// directory supplies values the process environment lacks).
func Load() (*Config, error) {
	cfg := New()

	if cfg.configPath != "" {
		if _, err := os.Stat(cfg.configPath); err == nil {
			if mergeErr := ShallowMergeYAML(cfg, cfg.configPath); mergeErr != nil {
				return nil, mergeErr
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("cannot access config file %s: %w", cfg.configPath, err)
		}
	}

	environ, err := LoadEnviron(dotEnvFile)
	if err != nil {
		return nil, err
	}
	if err = ApplyEnv(cfg, environ); err != nil {
		return nil, err
	}

	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// ConfigPath returns the path the configuration is loaded from and saved to.
//
//nolint:revive // ConfigPath reads better than Path at call sites.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// Save writes the configuration as YAML, creating the parent directory.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.New("config path is not set")
	}
	if err := os.MkdirAll(filepath.Dir(c.configPath), 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := c.Marshal()
	if err != nil {
		return err
	}
	if err = os.WriteFile(c.configPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", c.configPath, err)
	}
	return nil
}

// Marshal returns the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// Validate checks the output format and list sizes.
func (c *Config) Validate() error {
	if !IsValidOutputFormat(c.Output.DefaultFormat) {
		return fmt.Errorf("%w: got %q", ErrInvalidOutputFormat, c.Output.DefaultFormat)
	}

	params := pagination.NewParams()
	params.PageSize = c.List.PageSize
	params.ItemCount = c.List.ItemCount
	return params.Validate()
}

// IsValidOutputFormat reports whether format is a supported output format.
func IsValidOutputFormat(format string) bool {
	return slices.Contains([]string{FormatTable, FormatJSON, FormatYAML}, format)
}
