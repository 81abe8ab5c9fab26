// Package config provides configuration management for ql-rofi.
// It handles loading and merging the embedded defaults with a user or system
// config file, and decoding per-script tables.
package config

import (
	_ "embed"
	"fmt"
	"maps"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/mapstructure"
)

//go:embed default.toml
var defaultConfigData string

// PathEnv overrides the config file location
const PathEnv = "QL_ROFI_CONFIG"

// Config is the merged configuration
type Config struct {
	LogLevel      string             `toml:"log_level"`
	Launcher      LauncherCommand    `toml:"launcher"`
	Notifications NotificationConfig `toml:"notifications"`
	Scripts       ScriptsConfig      `toml:"scripts"`
}

// LauncherCommand describes how to start rofi
type LauncherCommand struct {
	Command string   `toml:"command"`
	Args    []string `toml:"args"`
}

// NotificationConfig controls desktop notifications
type NotificationConfig struct {
	Enabled bool   `toml:"enabled"`
	Tool    string `toml:"tool"`
	Urgency string `toml:"urgency"`
	Timeout int    `toml:"timeout"`
}

// ScriptsConfig holds one free-form table per script, keyed by script name
type ScriptsConfig map[string]map[string]any

// NotificationConfigFile is the TOML view with optional fields
type NotificationConfigFile struct {
	Enabled *bool   `toml:"enabled"`
	Tool    *string `toml:"tool"`
	Urgency *string `toml:"urgency"`
	Timeout *int    `toml:"timeout"`
}

// ConfigFile is what a user or system config file may contain
type ConfigFile struct {
	LogLevel      *string                `toml:"log_level"`
	Launcher      LauncherCommand        `toml:"launcher"`
	Notifications NotificationConfigFile `toml:"notifications"`
	Scripts       ScriptsConfig          `toml:"scripts"`
}

// GetUserConfigPath returns the user config path
func GetUserConfigPath() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "ql-rofi", "config.toml")
}

// GetSystemConfigPath returns the system-wide config path
func GetSystemConfigPath() string {
	return "/etc/ql-rofi/config.toml"
}

// Load merges the defaults with the first config file found.
// An explicit path (argument, then QL_ROFI_CONFIG) must exist; the user and
// system paths are optional.
func Load(path string) (*Config, error) {
	defaultCfg, err := loadDefaultConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load default config: %w", err)
	}

	if path == "" {
		path = os.Getenv(PathEnv)
	}
	if path != "" {
		fileCfg, err := loadConfigFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config %s: %w", path, err)
		}
		return mergeConfigs(defaultCfg, fileCfg), nil
	}

	for _, candidate := range []string{GetUserConfigPath(), GetSystemConfigPath()} {
		if _, err := os.Stat(candidate); err != nil {
			continue
		}
		fileCfg, err := loadConfigFromFile(candidate)
		if err != nil {
			return nil, fmt.Errorf("failed to load config %s: %w", candidate, err)
		}
		return mergeConfigs(defaultCfg, fileCfg), nil
	}

	return defaultCfg, nil
}

// Default returns the embedded default configuration
func Default() *Config {
	cfg, err := loadDefaultConfig()
	if err != nil {
		panic(fmt.Sprintf("embedded default config is invalid: %v", err))
	}
	return cfg
}

func loadDefaultConfig() (*Config, error) {
	var cfg Config
	if _, err := toml.Decode(defaultConfigData, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func loadConfigFromFile(path string) (*ConfigFile, error) {
	var cfg ConfigFile
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// mergeConfigs overlays a config file on the defaults
func mergeConfigs(defaultCfg *Config, fileCfg *ConfigFile) *Config {
	merged := *defaultCfg

	if fileCfg.LogLevel != nil && *fileCfg.LogLevel != "" {
		merged.LogLevel = *fileCfg.LogLevel
	}

	if fileCfg.Launcher.Command != "" {
		merged.Launcher.Command = fileCfg.Launcher.Command
	}
	if len(fileCfg.Launcher.Args) > 0 {
		merged.Launcher.Args = fileCfg.Launcher.Args
	}

	mergeNotificationConfig(&merged.Notifications, &fileCfg.Notifications)

	// Script tables merge key by key so a file may override a single setting.
	merged.Scripts = make(ScriptsConfig, len(defaultCfg.Scripts))
	for name, table := range defaultCfg.Scripts {
		merged.Scripts[name] = maps.Clone(table)
	}
	for name, table := range fileCfg.Scripts {
		if merged.Scripts[name] == nil {
			merged.Scripts[name] = make(map[string]any, len(table))
		}
		maps.Copy(merged.Scripts[name], table)
	}

	return &merged
}

func mergeNotificationConfig(merged *NotificationConfig, file *NotificationConfigFile) {
	if file.Enabled != nil {
		merged.Enabled = *file.Enabled
	}
	if file.Tool != nil && *file.Tool != "" {
		merged.Tool = *file.Tool
	}
	if file.Urgency != nil && *file.Urgency != "" {
		merged.Urgency = *file.Urgency
	}
	if file.Timeout != nil {
		merged.Timeout = *file.Timeout
	}
}

// IsScriptEnabled reports whether a script is enabled; scripts without a
// table or without an "enabled" key are enabled.
func (c *Config) IsScriptEnabled(name string) bool {
	table, exists := c.Scripts[name]
	if !exists {
		return true
	}

	if enabledVal, ok := table["enabled"]; ok {
		if enabled, ok := enabledVal.(bool); ok {
			return enabled
		}
	}

	return true
}

// DecodeScript decodes the table of the named script into out, which should
// already hold the script's defaults. Keys missing from the table keep their
// defaults; lists present in the table replace them. Missing tables leave out
// untouched.
func (c *Config) DecodeScript(name string, out any) error {
	table, exists := c.Scripts[name]
	if !exists {
		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		// Lists from the file replace the defaults instead of patching them.
		ZeroFields: true,
		Result:     out,
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder for %s: %w", name, err)
	}
	if err := decoder.Decode(table); err != nil {
		return fmt.Errorf("invalid config for script %s: %w", name, err)
	}
	return nil
}

// InitUserConfig writes the default config to the user config path
func InitUserConfig() (string, error) {
	userConfigPath := GetUserConfigPath()
	userConfigDir := filepath.Dir(userConfigPath)

	if _, err := os.Stat(userConfigPath); err == nil {
		return "", fmt.Errorf("config already exists: %s", userConfigPath)
	}

	if err := os.MkdirAll(userConfigDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(userConfigPath, []byte(defaultConfigData), 0644); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}

	return userConfigPath, nil
}

// GetDefaultConfigContent returns the embedded default config
func GetDefaultConfigContent() string {
	return defaultConfigData
}
