package main

import (
	"fmt"

	"github.com/refex/refex/internal/workspace"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "Get or set workspace configuration values",
	Long: `Get or set workspace configuration values.

Usage:
  refex config                       # Show all config
  refex config provider              # Get specific value
  refex config provider ollama       # Set value

Keys:
  provider    Default LLM provider (anthropic, ollama)
  model       Default model for the provider
  ollama-url  Ollama API base URL`,
	Args: cobra.MaximumNArgs(2),
	RunE: runConfig,
}

// ConfigResponse is the response for config get commands.
type ConfigResponse struct {
	Provider  string `json:"provider,omitempty"`
	Model     string `json:"model,omitempty"`
	OllamaURL string `json:"ollama_url,omitempty"`
}

func runConfig(cmd *cobra.Command, args []string) error {
	root := findWorkspace()

	cfg, err := workspace.LoadConfig(root)
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}

	// No args: show all config.
	if len(args) == 0 {
		if humanOutput {
			fmt.Printf("provider:   %s\n", cfg.Provider)
			fmt.Printf("model:      %s\n", cfg.Model)
			fmt.Printf("ollama-url: %s\n", cfg.OllamaURL)
		} else {
			outputJSON(ConfigResponse{
				Provider:  cfg.Provider,
				Model:     cfg.Model,
				OllamaURL: cfg.OllamaURL,
			})
		}
		return nil
	}

	key := args[0]

	// One arg: get specific value.
	if len(args) == 1 {
		value, ok := configValue(cfg, key)
		if !ok {
			exitWithError(ExitError, "unknown configuration key: %s", key)
		}
		if humanOutput {
			fmt.Println(value)
		} else {
			outputJSON(map[string]string{key: value})
		}
		return nil
	}

	// Two args: set value.
	value := args[1]
	switch key {
	case "provider":
		if value != "anthropic" && value != "ollama" {
			exitWithError(ExitError, "invalid provider: %s (valid: anthropic, ollama)", value)
		}
		cfg.Provider = value
	case "model":
		cfg.Model = value
	case "ollama-url":
		cfg.OllamaURL = value
	default:
		exitWithError(ExitError, "unknown configuration key: %s", key)
	}

	if err := cfg.Save(root); err != nil {
		exitWithError(ExitError, "saving config: %v", err)
	}

	if humanOutput {
		fmt.Printf("%s = %s\n", key, value)
	} else {
		outputJSON(map[string]string{"status": "updated", key: value})
	}

	return nil
}

// configValue looks up a config value by CLI key.
func configValue(cfg *workspace.Config, key string) (string, bool) {
	switch key {
	case "provider":
		return cfg.Provider, true
	case "model":
		return cfg.Model, true
	case "ollama-url":
		return cfg.OllamaURL, true
	default:
		return "", false
	}
}
