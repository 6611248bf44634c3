package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	logger "github.com/inference-gateway/cheat/internal/logger"
	viper "github.com/spf13/viper"
	zap "go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"
)

// AppName names the settings directory and the binary
const AppName = "cheat"

// Config represents the overlay settings. The shortcut list itself lives in
// a separate file referenced by Shortcuts.Path.
type Config struct {
	Shortcuts ShortcutsConfig `yaml:"shortcuts" mapstructure:"shortcuts"`
	UI        UIConfig        `yaml:"ui" mapstructure:"ui"`
	Focus     FocusConfig     `yaml:"focus" mapstructure:"focus"`
	Logging   LoggingConfig   `yaml:"logging" mapstructure:"logging"`
}

// ShortcutsConfig locates the shortcut file
type ShortcutsConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// UIConfig contains overlay presentation settings
type UIConfig struct {
	Theme        string `yaml:"theme" mapstructure:"theme"`
	Placeholder  string `yaml:"placeholder" mapstructure:"placeholder"`
	WidthPercent int    `yaml:"width_percent" mapstructure:"width_percent"`
	ShowHelp     bool   `yaml:"show_help" mapstructure:"show_help"`
}

// FocusConfig selects how the overlay grabs keyboard focus
type FocusConfig struct {
	Strategy string `yaml:"strategy" mapstructure:"strategy"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Debug bool   `yaml:"debug" mapstructure:"debug"`
	File  string `yaml:"file" mapstructure:"file"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Shortcuts: ShortcutsConfig{
			Path: "",
		},
		UI: UIConfig{
			Theme:        "tokyo-night",
			Placeholder:  "Search shortcuts...",
			WidthPercent: 90,
			ShowHelp:     true,
		},
		Focus: FocusConfig{
			Strategy: "auto",
		},
		Logging: LoggingConfig{
			Debug: false,
			File:  "",
		},
	}
}

// SetDefaults registers DefaultConfig values on v
func SetDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("shortcuts.path", d.Shortcuts.Path)
	v.SetDefault("ui.theme", d.UI.Theme)
	v.SetDefault("ui.placeholder", d.UI.Placeholder)
	v.SetDefault("ui.width_percent", d.UI.WidthPercent)
	v.SetDefault("ui.show_help", d.UI.ShowHelp)
	v.SetDefault("focus.strategy", d.Focus.Strategy)
	v.SetDefault("logging.debug", d.Logging.Debug)
	v.SetDefault("logging.file", d.Logging.File)
}

// Load resolves settings from v. An explicit settingsPath must exist; without
// one the default settings file is read when present.
func Load(v *viper.Viper, settingsPath string) (*Config, error) {
	SetDefaults(v)
	v.SetConfigType("yaml")

	switch {
	case settingsPath != "":
		logger.Debug("Using custom settings path", zap.String("path", settingsPath))
		v.SetConfigFile(settingsPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read settings file %s: %w", settingsPath, err)
		}
	default:
		path := DefaultSettingsPath()
		if _, err := os.Stat(path); err == nil {
			logger.Debug("Using default settings path", zap.String("path", path))
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to stat settings file %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks settings that cannot be checked by their consumers
func (c *Config) Validate() error {
	if c.UI.WidthPercent < 20 || c.UI.WidthPercent > 100 {
		return fmt.Errorf("ui.width_percent must be between 20 and 100, got %d", c.UI.WidthPercent)
	}
	if c.UI.Theme == "" {
		return fmt.Errorf("ui.theme must not be empty")
	}
	return nil
}

// SaveConfig writes the settings to configPath as YAML
func (c *Config) SaveConfig(configPath string) error {
	if configPath == "" {
		configPath = DefaultSettingsPath()
	}

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		logger.Error("Failed to create settings directory", zap.String("dir", dir), zap.Error(err))
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(configPath, buf.Bytes(), 0644); err != nil {
		logger.Error("Failed to write settings file", zap.String("path", configPath), zap.Error(err))
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	logger.Debug("Saved settings", zap.String("path", configPath))
	return nil
}

// DefaultSettingsPath returns <user config dir>/cheat/config.yaml
func DefaultSettingsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join("."+AppName, "config.yaml")
	}
	return filepath.Join(dir, AppName, "config.yaml")
}
