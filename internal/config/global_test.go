package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGlobalConfigPath(t *testing.T) {
	orig := os.Getenv("XDG_CONFIG_HOME")
	defer os.Setenv("XDG_CONFIG_HOME", orig)

	os.Setenv("XDG_CONFIG_HOME", "/custom/config")
	path := GlobalConfigPath()
	want := filepath.Join("/custom/config", GlobalConfigDir, GlobalConfigFile)
	if path != want {
		t.Errorf("GlobalConfigPath() = %q, want %q", path, want)
	}

	os.Setenv("XDG_CONFIG_HOME", "")
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Cannot get home directory")
	}
	path = GlobalConfigPath()
	want = filepath.Join(home, ".config", GlobalConfigDir, GlobalConfigFile)
	if path != want {
		t.Errorf("GlobalConfigPath() = %q, want %q", path, want)
	}
}

func TestLoadGlobalConfig_NotFound(t *testing.T) {
	ResetGlobalConfigCache()
	defer ResetGlobalConfigCache()

	orig := os.Getenv("XDG_CONFIG_HOME")
	defer os.Setenv("XDG_CONFIG_HOME", orig)

	os.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := LoadGlobalConfig()
	if err != nil {
		t.Fatalf("LoadGlobalConfig() error = %v", err)
	}
	if cfg == nil {
		t.Fatal("LoadGlobalConfig() returned nil")
	}
	if cfg.Provider != "" {
		t.Errorf("Provider = %q, want empty", cfg.Provider)
	}
}

func TestLoadGlobalConfig(t *testing.T) {
	ResetGlobalConfigCache()
	defer ResetGlobalConfigCache()

	orig := os.Getenv("XDG_CONFIG_HOME")
	defer os.Setenv("XDG_CONFIG_HOME", orig)

	tmpDir := t.TempDir()
	os.Setenv("XDG_CONFIG_HOME", tmpDir)

	cfgDir := filepath.Join(tmpDir, GlobalConfigDir)
	if err := os.MkdirAll(cfgDir, 0755); err != nil {
		t.Fatalf("creating config dir: %v", err)
	}
	content := "anthropic_api_key: sk-test\nprovider: anthropic\nmodel: claude-haiku-4-5\nollama_url: http://localhost:11434\n"
	if err := os.WriteFile(filepath.Join(cfgDir, GlobalConfigFile), []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := LoadGlobalConfig()
	if err != nil {
		t.Fatalf("LoadGlobalConfig() error = %v", err)
	}
	if cfg.AnthropicAPIKey != "sk-test" {
		t.Errorf("AnthropicAPIKey = %q, want sk-test", cfg.AnthropicAPIKey)
	}
	if cfg.Provider != "anthropic" {
		t.Errorf("Provider = %q, want anthropic", cfg.Provider)
	}
	if cfg.Model != "claude-haiku-4-5" {
		t.Errorf("Model = %q, want claude-haiku-4-5", cfg.Model)
	}
}

func TestGetAnthropicAPIKey_EnvPrecedence(t *testing.T) {
	ResetGlobalConfigCache()
	defer ResetGlobalConfigCache()

	orig := os.Getenv("ANTHROPIC_API_KEY")
	defer os.Setenv("ANTHROPIC_API_KEY", orig)

	os.Setenv("ANTHROPIC_API_KEY", "sk-from-env")
	if got := GetAnthropicAPIKey(); got != "sk-from-env" {
		t.Errorf("GetAnthropicAPIKey() = %q, want sk-from-env", got)
	}
}
