package prompt

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBuildLocatePrompt(t *testing.T) {
	got := BuildLocatePrompt("full paper text [1]", "Extract references from Related Work")

	for _, want := range []string{
		"TASK: Extract references from Related Work",
		"full paper text [1]",
		NotFoundReply,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestIsNotFound(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  bool
	}{
		{name: "exact sentinel", reply: "SECTION NOT FOUND", want: true},
		{name: "sentinel with whitespace", reply: "  SECTION NOT FOUND\n", want: true},
		{name: "section text", reply: "2. Related Work [1]", want: false},
		{name: "empty", reply: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNotFound(tt.reply); got != tt.want {
				t.Errorf("IsNotFound(%q) = %v, want %v", tt.reply, got, tt.want)
			}
		})
	}
}

func TestWriteTemplate(t *testing.T) {
	dir := t.TempDir()
	txtPath := filepath.Join(dir, "txts", "monofusion.txt")

	path, err := WriteTemplate(filepath.Join(dir, "templates"), txtPath, "Extract from Related Work")
	if err != nil {
		t.Fatalf("WriteTemplate() error: %v", err)
	}

	if filepath.Base(path) != "monofusion_template.txt" {
		t.Errorf("template path = %s, want monofusion_template.txt", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading template: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "Extract from Related Work") {
		t.Error("template missing query")
	}
	if !strings.Contains(content, "refex resolve") {
		t.Error("template missing resolve instructions")
	}
}
