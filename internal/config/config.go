// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for radix.
//
// Supports both TOML and JSON configuration formats, with sensible defaults,
// environment variable overrides, and validation.
//
// Configuration file locations (in order of precedence):
//   - ~/.radix/config.toml
//   - ~/.radix/config.json
//   - Built-in defaults
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/radix-tui/internal/codec"
	"github.com/jeranaias/radix-tui/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete radix configuration.
type Config struct {
	Version string `toml:"version" json:"version"`

	// UI configuration
	UI UIConfig `toml:"ui" json:"ui"`

	// History configuration
	History HistoryConfig `toml:"history" json:"history"`

	// Convert configuration
	Convert ConvertConfig `toml:"convert" json:"convert"`
}

// UIConfig contains UI configuration.
type UIConfig struct {
	// Theme is the UI theme: "dark", "light", "auto"
	Theme string `toml:"theme" json:"theme"`
	// Animations toggles the typewriter/fade result effects
	Animations bool `toml:"animations" json:"animations"`
	// TypewriterCPS is the typewriter reveal speed in characters per second
	TypewriterCPS int `toml:"typewriter_cps" json:"typewriter_cps"`
}

// HistoryConfig contains conversion history configuration.
type HistoryConfig struct {
	// Enabled controls whether conversions are recorded
	Enabled bool `toml:"enabled" json:"enabled"`
	// Path is the history database path (empty = ~/.radix/history.db)
	Path string `toml:"path" json:"path"`
	// MaxEntries prunes the oldest entries past this count (0 = unlimited)
	MaxEntries int `toml:"max_entries" json:"max_entries"`
}

// ConvertConfig contains converter defaults.
type ConvertConfig struct {
	// DefaultBase preselects a target base in the menus (1-64)
	DefaultBase int `toml:"default_base" json:"default_base"`
	// GroupSeparator joins per-character digit groups in text mode
	GroupSeparator string `toml:"group_separator" json:"group_separator"`
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Version: "1.0.0",

		UI: UIConfig{
			Theme:         "auto",
			Animations:    true,
			TypewriterCPS: 40,
		},

		History: HistoryConfig{
			Enabled:    true,
			Path:       "", // resolved lazily via HistoryPath
			MaxEntries: 500,
		},

		Convert: ConvertConfig{
			DefaultBase:    16,
			GroupSeparator: " ",
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the radix configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".radix"), nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathJSON returns the path to the JSON config file.
func ConfigPathJSON() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// EnsureConfigDir ensures the config directory exists.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// HistoryPath resolves the history database path, falling back to the
// default under the config directory.
func (c *Config) HistoryPath() (string, error) {
	if c.History.Path != "" {
		return c.History.Path, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "history.db"), nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the config file(s).
// Tries TOML first, then JSON, and falls back to defaults.
// Environment overrides are applied last.
func Load() (*Config, error) {
	cfg := Default()

	tomlPath, err := ConfigPathTOML()
	if err == nil {
		if _, statErr := os.Stat(tomlPath); statErr == nil {
			if err := LoadTOML(cfg, tomlPath); err != nil {
				return nil, fmt.Errorf("failed to load TOML config: %w", err)
			}
			return finish(cfg)
		}
	}

	jsonPath, err := ConfigPathJSON()
	if err == nil {
		if _, statErr := os.Stat(jsonPath); statErr == nil {
			if err := LoadJSON(cfg, jsonPath); err != nil {
				return nil, fmt.Errorf("failed to load JSON config: %w", err)
			}
			return finish(cfg)
		}
	}

	return finish(cfg)
}

// LoadFromPath loads configuration from a specific file path with full
// validation, picking the decoder from the extension.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()
	if strings.HasSuffix(path, ".json") {
		if err := LoadJSON(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load JSON config from %s: %w", path, err)
		}
	} else {
		if err := LoadTOML(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load TOML config from %s: %w", path, err)
		}
	}
	return finish(cfg)
}

// finish applies env overrides, defaults and validation after a load.
func finish(cfg *Config) (*Config, error) {
	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadTOML loads configuration from a TOML file.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return nil
}

// LoadJSON loads configuration from a JSON file.
func LoadJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	return nil
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save writes the configuration to the TOML config file.
func Save(cfg *Config) error {
	path, err := ConfigPathTOML()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTOML writes the configuration to a TOML file atomically.
func SaveTOML(cfg *Config, path string) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode TOML config: %w", err)
	}
	return util.AtomicWriteFile(path, buf.Bytes(), 0600)
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError describes a single invalid configuration field.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors aggregates validation failures.
type ValidateErrors []ValidationError

// Error implements the error interface.
func (e ValidateErrors) Error() string {
	msgs := make([]string, len(e))
	for i, ve := range e {
		msgs[i] = ve.Error()
	}
	return strings.Join(msgs, "; ")
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	var errs ValidateErrors

	switch c.UI.Theme {
	case "dark", "light", "auto":
	default:
		errs = append(errs, ValidationError{"ui.theme", fmt.Sprintf("must be dark, light or auto, got %q", c.UI.Theme)})
	}

	if c.UI.TypewriterCPS < 1 || c.UI.TypewriterCPS > 1000 {
		errs = append(errs, ValidationError{"ui.typewriter_cps", fmt.Sprintf("must be between 1 and 1000, got %d", c.UI.TypewriterCPS)})
	}

	if c.History.MaxEntries < 0 {
		errs = append(errs, ValidationError{"history.max_entries", "must not be negative"})
	}

	if c.Convert.DefaultBase < codec.MinBase || c.Convert.DefaultBase > codec.MaxBase {
		errs = append(errs, ValidationError{"convert.default_base", fmt.Sprintf("must be between 1 and 64, got %d", c.Convert.DefaultBase)})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SetDefaults fills zero-valued fields that a partial config file left unset.
func (c *Config) SetDefaults() {
	d := Default()
	if c.Version == "" {
		c.Version = d.Version
	}
	if c.UI.Theme == "" {
		c.UI.Theme = d.UI.Theme
	}
	if c.UI.TypewriterCPS == 0 {
		c.UI.TypewriterCPS = d.UI.TypewriterCPS
	}
	if c.Convert.DefaultBase == 0 {
		c.Convert.DefaultBase = d.Convert.DefaultBase
	}
	if c.Convert.GroupSeparator == "" {
		c.Convert.GroupSeparator = d.Convert.GroupSeparator
	}
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies RADIX_* environment variables over the loaded
// values. NO_COLOR is honored by the terminal layer, not here.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("RADIX_THEME"); v != "" {
		c.UI.Theme = v
	}
	if v := os.Getenv("RADIX_ANIMATIONS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.UI.Animations = b
		}
	}
	if v := os.Getenv("RADIX_TYPEWRITER_CPS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.UI.TypewriterCPS = n
		}
	}
	if v := os.Getenv("RADIX_HISTORY_PATH"); v != "" {
		c.History.Path = v
	}
	if v := os.Getenv("RADIX_HISTORY_MAX"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.History.MaxEntries = n
		}
	}
	if v := os.Getenv("RADIX_HISTORY_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.History.Enabled = b
		}
	}
	if v := os.Getenv("RADIX_DEFAULT_BASE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Convert.DefaultBase = n
		}
	}
}

// =============================================================================
// GLOBAL CONFIG ACCESS
// =============================================================================

var (
	globalConfig *Config
	globalMu     sync.RWMutex
)

// Global returns the global configuration, loading it on first use.
func Global() *Config {
	globalMu.RLock()
	if globalConfig != nil {
		defer globalMu.RUnlock()
		return globalConfig
	}
	globalMu.RUnlock()

	globalMu.Lock()
	defer globalMu.Unlock()
	if globalConfig == nil {
		cfg, err := Load()
		if err != nil {
			cfg = Default()
		}
		globalConfig = cfg
	}
	return globalConfig
}

// SetGlobal replaces the global configuration.
func SetGlobal(cfg *Config) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalConfig = cfg
}

// ReloadGlobal reloads the global configuration from disk.
func ReloadGlobal() error {
	cfg, err := Load()
	if err != nil {
		return err
	}
	SetGlobal(cfg)
	return nil
}

// ResetGlobalForTesting clears the global configuration. Tests only.
func ResetGlobalForTesting() {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalConfig = nil
}

// =============================================================================
// KEY ACCESS (for `radix config get/set`)
// =============================================================================

// Keys lists the settable configuration keys.
func Keys() []string {
	return []string{
		"ui.theme",
		"ui.animations",
		"ui.typewriter_cps",
		"history.enabled",
		"history.path",
		"history.max_entries",
		"convert.default_base",
		"convert.group_separator",
	}
}

// Get returns the value for a dotted key.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "ui.theme":
		return c.UI.Theme, nil
	case "ui.animations":
		return strconv.FormatBool(c.UI.Animations), nil
	case "ui.typewriter_cps":
		return strconv.Itoa(c.UI.TypewriterCPS), nil
	case "history.enabled":
		return strconv.FormatBool(c.History.Enabled), nil
	case "history.path":
		return c.History.Path, nil
	case "history.max_entries":
		return strconv.Itoa(c.History.MaxEntries), nil
	case "convert.default_base":
		return strconv.Itoa(c.Convert.DefaultBase), nil
	case "convert.group_separator":
		return c.Convert.GroupSeparator, nil
	default:
		return "", fmt.Errorf("unknown config key %q", key)
	}
}

// Set updates a dotted key from its string form and validates the result.
func (c *Config) Set(key, value string) error {
	switch key {
	case "ui.theme":
		c.UI.Theme = value
	case "ui.animations":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		c.UI.Animations = b
	case "ui.typewriter_cps":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		c.UI.TypewriterCPS = n
	case "history.enabled":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		c.History.Enabled = b
	case "history.path":
		c.History.Path = value
	case "history.max_entries":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		c.History.MaxEntries = n
	case "convert.default_base":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		c.Convert.DefaultBase = n
	case "convert.group_separator":
		c.Convert.GroupSeparator = value
	default:
		return fmt.Errorf("unknown config key %q", key)
	}
	return c.Validate()
}
