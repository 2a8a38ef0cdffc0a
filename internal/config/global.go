// Package config handles global configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// GlobalConfig represents configuration stored in ~/.config/refex/config.yml.
type GlobalConfig struct {
	AnthropicAPIKey string `yaml:"anthropic_api_key,omitempty"`
	OllamaURL       string `yaml:"ollama_url,omitempty"`
	Provider        string `yaml:"provider,omitempty"`
	Model           string `yaml:"model,omitempty"`
}

const (
	// GlobalConfigDir is the directory name under XDG_CONFIG_HOME.
	GlobalConfigDir = "refex"
	// GlobalConfigFile is the config file name.
	GlobalConfigFile = "config.yml"
)

// globalConfigCache caches the loaded global config.
var globalConfigCache *GlobalConfig

// GlobalConfigPath returns the path to the global config file.
// Respects XDG_CONFIG_HOME, defaults to ~/.config/refex/config.yml.
func GlobalConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, GlobalConfigDir, GlobalConfigFile)
}

// LoadGlobalConfig loads the global configuration file.
// Returns an empty config (not an error) if the file doesn't exist.
func LoadGlobalConfig() (*GlobalConfig, error) {
	if globalConfigCache != nil {
		return globalConfigCache, nil
	}

	path := GlobalConfigPath()
	if path == "" {
		return &GlobalConfig{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &GlobalConfig{}, nil
		}
		return nil, fmt.Errorf("reading global config: %w", err)
	}

	var cfg GlobalConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing global config: %w", err)
	}

	globalConfigCache = &cfg
	return &cfg, nil
}

// ResetGlobalConfigCache clears the cached global config.
// Useful for testing.
func ResetGlobalConfigCache() {
	globalConfigCache = nil
}

// GetAnthropicAPIKey returns the Anthropic API key. The ANTHROPIC_API_KEY
// environment variable takes precedence over the global config.
func GetAnthropicAPIKey() string {
	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		return key
	}
	cfg, _ := LoadGlobalConfig()
	return cfg.AnthropicAPIKey
}

// GetOllamaURL returns the Ollama base URL from global config.
func GetOllamaURL() string {
	cfg, _ := LoadGlobalConfig()
	return cfg.OllamaURL
}

// GetProvider returns the default LLM provider from global config.
func GetProvider() string {
	cfg, _ := LoadGlobalConfig()
	return cfg.Provider
}

// GetModel returns the default model from global config.
func GetModel() string {
	cfg, _ := LoadGlobalConfig()
	return cfg.Model
}
