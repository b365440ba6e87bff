package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeChannelsFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "channels.yml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadValidChannels(t *testing.T) {
	path := writeChannelsFile(t, `
channels:
  - name: "exp_fest"
  - name: "reliable_ml"
    output: "ml"
    title: "Reliable ML"
`)

	loader := NewLoader(path)
	channels, err := loader.Load()
	if err != nil {
		t.Fatal(err)
	}

	if len(channels) != 2 {
		t.Fatalf("Expected 2 channels, got %d", len(channels))
	}

	if channels[0].Name != "exp_fest" {
		t.Errorf("Expected name 'exp_fest', got '%s'", channels[0].Name)
	}
	if channels[0].OutputName() != "exp_fest" {
		t.Errorf("Expected output name 'exp_fest', got '%s'", channels[0].OutputName())
	}
	if channels[1].OutputName() != "ml" {
		t.Errorf("Expected output name 'ml', got '%s'", channels[1].OutputName())
	}
	if channels[0].Title != "" {
		t.Errorf("Expected no title override, got '%s'", channels[0].Title)
	}
	if channels[1].Title != "Reliable ML" {
		t.Errorf("Expected title override 'Reliable ML', got '%s'", channels[1].Title)
	}
}

func TestLoadMissingFile(t *testing.T) {
	loader := NewLoader(filepath.Join(t.TempDir(), "nope.yml"))
	if _, err := loader.Load(); err == nil {
		t.Error("Expected error for missing channels file")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeChannelsFile(t, "channels: [unclosed")

	loader := NewLoader(path)
	if _, err := loader.Load(); err == nil {
		t.Error("Expected error for invalid YAML")
	}
}

func TestLoadEmptyChannelList(t *testing.T) {
	path := writeChannelsFile(t, "channels: []")

	loader := NewLoader(path)
	if _, err := loader.Load(); err == nil {
		t.Error("Expected error for empty channel list")
	}
}

func TestLoadValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "missing name",
			content: `
channels:
  - output: "out"
`,
		},
		{
			name: "name with slash",
			content: `
channels:
  - name: "foo/bar"
`,
		},
		{
			name: "output with space",
			content: `
channels:
  - name: "foo"
    output: "a b"
`,
		},
		{
			name: "duplicate names",
			content: `
channels:
  - name: "foo"
  - name: "foo"
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := NewLoader(writeChannelsFile(t, tt.content))
			if _, err := loader.Load(); err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}
