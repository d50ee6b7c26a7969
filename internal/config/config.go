package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-compinject/internal/fileutil"
	"github.com/alnah/go-compinject/internal/manifest"
	"github.com/alnah/go-compinject/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidTimeout  = errors.New("invalid browser timeout")
)

// Field length limits.
const (
	MaxURLLength  = 2048 // Browser limit
	MaxPathLength = 4096 // PATH_MAX on Linux
	MaxNameLength = 100  // Component name
)

// appDirName is the directory under the user config dir holding named configs.
const appDirName = "go-compinject"

// Config holds all configuration for component injection.
type Config struct {
	Base       string           `yaml:"base"`       // Prefix for "$" and bare asset paths
	LoaderURL  string           `yaml:"loaderURL"`  // Used to derive Base when Base is empty
	Components []manifest.Entry `yaml:"components"` // Added to (or replacing) built-in bundles
	Browser    BrowserConfig    `yaml:"browser"`
}

// BrowserConfig defines headless browser options for live-document mode.
type BrowserConfig struct {
	Bin     string `yaml:"bin"`     // Chrome binary (empty = ROD_BROWSER_BIN or auto-download)
	Timeout string `yaml:"timeout"` // Go duration, e.g. "30s" (empty = default)
}

// DefaultConfig returns a configuration with no base and no extra components.
func DefaultConfig() *Config {
	return &Config{}
}

// Validate checks field lengths, component entries and the browser timeout.
func (c *Config) Validate() error {
	if err := validateFieldLength("base", c.Base, MaxURLLength); err != nil {
		return err
	}
	if err := validateFieldLength("loaderURL", c.LoaderURL, MaxURLLength); err != nil {
		return err
	}
	if err := validateFieldLength("browser.bin", c.Browser.Bin, MaxPathLength); err != nil {
		return err
	}

	for i, e := range c.Components {
		if err := validateFieldLength(fmt.Sprintf("components[%d].name", i), e.Name, MaxNameLength); err != nil {
			return err
		}
		for j, a := range e.Assets {
			if err := validateFieldLength(fmt.Sprintf("components[%d].assets[%d]", i, j), a, MaxURLLength); err != nil {
				return err
			}
		}
	}
	if err := manifest.Validate(c.Components); err != nil {
		return fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if _, err := c.BrowserTimeout(); err != nil {
		return err
	}
	return nil
}

// BrowserTimeout parses Browser.Timeout. Returns 0 when unset.
func (c *Config) BrowserTimeout() (time.Duration, error) {
	if c.Browser.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Browser.Timeout)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeout, c.Browser.Timeout)
	}
	return d, nil
}

// validateFieldLength checks if a field value exceeds its maximum length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths returns the candidate files for a config name, in lookup
// order: current directory, then user config dir, each as .yaml then .yml.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, appDirName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing file from SearchPaths.
func resolveConfigPath(name string) (string, error) {
	triedPaths := SearchPaths(name)
	for _, p := range triedPaths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
