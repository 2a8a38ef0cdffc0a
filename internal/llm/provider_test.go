package llm

import "testing"

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		wantName string
		wantErr  bool
	}{
		{
			name:     "anthropic",
			cfg:      Config{Provider: "anthropic", AnthropicAPIKey: "sk-test"},
			wantName: "anthropic",
		},
		{
			name:     "ollama",
			cfg:      Config{Provider: "ollama"},
			wantName: "ollama",
		},
		{
			name:    "unknown provider",
			cfg:     Config{Provider: "bard"},
			wantErr: true,
		},
		{
			name:    "empty provider",
			cfg:     Config{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := New(tt.cfg)
			if tt.wantErr {
				if err == nil {
					t.Error("New() succeeded, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("New() error: %v", err)
			}
			if p.Name() != tt.wantName {
				t.Errorf("Name() = %q, want %q", p.Name(), tt.wantName)
			}
		})
	}
}

func TestNewAppliesModel(t *testing.T) {
	p, err := New(Config{Provider: "ollama", Model: "llama3.2", OllamaURL: "http://example:11434"})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	client, ok := p.(*OllamaClient)
	if !ok {
		t.Fatalf("New() returned %T, want *OllamaClient", p)
	}
	if client.Model() != "llama3.2" {
		t.Errorf("Model() = %q, want llama3.2", client.Model())
	}
	if client.baseURL != "http://example:11434" {
		t.Errorf("baseURL = %q, want configured URL", client.baseURL)
	}
}
