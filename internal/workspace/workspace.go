// Package workspace handles workspace discovery, directory layout, and
// local configuration.
package workspace

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents workspace configuration stored in .refex/config.json.
type Config struct {
	Provider  string `json:"provider,omitempty"`   // Default LLM provider: anthropic or ollama
	Model     string `json:"model,omitempty"`      // Default model for the provider
	OllamaURL string `json:"ollama_url,omitempty"` // Ollama API base URL
}

const (
	RefexDir     = ".refex"
	ConfigFile   = "config.json"
	InputsDir    = "inputs"
	OutputsDir   = "outputs"
	TxtsDir      = "txts"
	TemplatesDir = "templates"
	HistoryFile  = "history.db"
)

// RefexPath returns the path to the .refex directory from a root path.
func RefexPath(root string) string {
	return filepath.Join(root, RefexDir)
}

// ConfigPath returns the path to config.json from a root path.
func ConfigPath(root string) string {
	return filepath.Join(root, RefexDir, ConfigFile)
}

// InputsPath returns the path to the PDF inputs directory.
func InputsPath(root string) string {
	return filepath.Join(root, InputsDir)
}

// OutputsPath returns the path to the extraction outputs directory.
func OutputsPath(root string) string {
	return filepath.Join(root, OutputsDir)
}

// TxtsPath returns the path to the converted-text directory.
func TxtsPath(root string) string {
	return filepath.Join(root, RefexDir, TxtsDir)
}

// TemplatesPath returns the path to the manual-template directory.
func TemplatesPath(root string) string {
	return filepath.Join(root, RefexDir, TemplatesDir)
}

// HistoryPath returns the path to the run-history database.
func HistoryPath(root string) string {
	return filepath.Join(root, RefexDir, HistoryFile)
}

// IsWorkspace checks if the given path contains a refex workspace.
func IsWorkspace(root string) bool {
	info, err := os.Stat(RefexPath(root))
	return err == nil && info.IsDir()
}

// Find walks up from the given path to find a refex workspace.
// Returns the workspace root path or an error if not found.
func Find(start string) (string, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	for {
		if IsWorkspace(abs) {
			return abs, nil
		}

		parent := filepath.Dir(abs)
		if parent == abs {
			return "", fmt.Errorf("not in a refex workspace (no .refex directory found)")
		}
		abs = parent
	}
}

// Init creates the workspace layout under root: the .refex directory
// with its txts and templates subdirectories, the inputs and outputs
// directories, and an empty config. Init is idempotent.
func Init(root string) error {
	dirs := []string{
		RefexPath(root),
		TxtsPath(root),
		TemplatesPath(root),
		InputsPath(root),
		OutputsPath(root),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}

	cfgPath := ConfigPath(root)
	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		cfg := &Config{}
		if err := cfg.Save(root); err != nil {
			return err
		}
	}

	return nil
}

// Clean removes all files from the transient directories (converted
// texts and manual templates). Missing directories are skipped.
func Clean(root string) ([]string, error) {
	var removed []string

	for _, dir := range []string{TxtsPath(root), TemplatesPath(root)} {
		entries, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return removed, fmt.Errorf("reading %s: %w", dir, err)
		}

		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			path := filepath.Join(dir, entry.Name())
			if err := os.Remove(path); err != nil {
				return removed, fmt.Errorf("removing %s: %w", path, err)
			}
			removed = append(removed, path)
		}
	}

	return removed, nil
}

// LoadConfig reads configuration from the workspace at the given root.
func LoadConfig(root string) (*Config, error) {
	data, err := os.ReadFile(ConfigPath(root))
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return &cfg, nil
}

// Save writes configuration to the workspace at the given root.
func (c *Config) Save(root string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(ConfigPath(root), data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}
