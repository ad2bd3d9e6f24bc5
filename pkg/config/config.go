package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	configFileName = "config.yaml"
	dirMode        = 0700
	fileMode       = 0600

	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"

	concurrencyDefault = 4
	portDefault        = 8080
	maxPort            = 65535
)

var (
	// Formats lists the supported output formats.
	Formats = []string{FormatText, FormatJSON, FormatYAML}

	errDirRequired = errors.New("config directory required")
)

// Config represents the app config persisted in the config directory.
type Config struct {
	Format      string `yaml:"format" json:"format"`
	LogLevel    string `yaml:"log_level" json:"log_level"`
	Normalize   bool   `yaml:"normalize" json:"normalize"`
	Concurrency int    `yaml:"concurrency" json:"concurrency"`
	Port        int    `yaml:"port" json:"port"`
}

// Default returns the config used when no config file exists.
func Default() *Config {
	return &Config{
		Format:      FormatText,
		LogLevel:    "info",
		Normalize:   false,
		Concurrency: concurrencyDefault,
		Port:        portDefault,
	}
}

// Validate checks that config values are usable.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config required")
	}
	if !IsFormat(c.Format) {
		return fmt.Errorf("invalid format %q, expected one of [%s]", c.Format, strings.Join(Formats, ", "))
	}
	if c.Concurrency < 1 {
		return fmt.Errorf("invalid concurrency %d, must be positive", c.Concurrency)
	}
	if c.Port < 1 || c.Port > maxPort {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	return nil
}

// IsFormat reports whether f is one of the supported output formats.
// The "yml" spelling is accepted as an alias of yaml by NormalizeFormat.
func IsFormat(f string) bool {
	f = NormalizeFormat(f)
	for _, v := range Formats {
		if v == f {
			return true
		}
	}
	return false
}

// NormalizeFormat lowercases f and folds aliases.
func NormalizeFormat(f string) string {
	f = strings.ToLower(strings.TrimSpace(f))
	if f == "yml" {
		return FormatYAML
	}
	return f
}

// Save writes c into the config file in dirPath.
func Save(dirPath string, c *Config) error {
	if dirPath == "" {
		return errDirRequired
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("validating config: %w", err)
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	path := filepath.Join(dirPath, configFileName)
	if err := os.WriteFile(path, b, fileMode); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}
	return nil
}

// ReadOrCreate reads app config from directory or creates a new one with
// default values. Values missing from the file keep their defaults.
func ReadOrCreate(dirPath string) (*Config, error) {
	if dirPath == "" {
		return nil, errDirRequired
	}

	if _, err := os.Stat(dirPath); errors.Is(err, os.ErrNotExist) {
		slog.Debug("creating config dir", "path", dirPath)
		if err := os.MkdirAll(dirPath, dirMode); err != nil {
			return nil, fmt.Errorf("failed to create dir %s: %w", dirPath, err)
		}
	}

	path := filepath.Join(dirPath, configFileName)

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		slog.Debug("creating default config", "path", path)
		if err := Save(dirPath, Default()); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	c := Default()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("error unmarshalling config file %s: %w", path, err)
	}
	c.Format = NormalizeFormat(c.Format)

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return c, nil
}

// HomeDir returns the default config directory ($HOME/.name).
func HomeDir(name string) (string, error) {
	if name == "" {
		return "", errors.New("name cannot be empty")
	}

	if !strings.HasPrefix(name, ".") {
		name = "." + name
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home dir: %w", err)
	}

	return filepath.Join(home, name), nil
}
