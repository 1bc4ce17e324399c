package configloader

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yaklabco/codeblock/pkg/config"
)

func TestConvertEditorConfig_JSONC(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "editor.config.jsonc")
	writeFile(t, configPath, `{
  // Code block plugin settings.
  "codeBlock": {
    "languages": [
      { "language": "plaintext", "label": "Plain text" },
      { "language": "js", "label": "JavaScript", "class": "js javascript js-code" },
      /* unsupported entry */
      { "label": "Nameless" }
    ],
    "indentSequence": "    "
  },
  "toolbar": ["codeBlock"]
}`)

	result, err := ConvertEditorConfig(configPath)
	if err != nil {
		t.Fatalf("ConvertEditorConfig() error = %v", err)
	}

	cfg := result.Config
	if cfg.IndentSequence != "    " {
		t.Errorf("expected indent sequence of four spaces, got %q", cfg.IndentSequence)
	}
	if cfg.Flavor != config.FlavorCommonMark {
		t.Errorf("expected default flavor, got %q", cfg.Flavor)
	}
	if len(cfg.Languages) != 2 {
		t.Fatalf("expected 2 languages, got %d", len(cfg.Languages))
	}
	if cfg.Languages[1].Language != "javascript" {
		t.Errorf("expected alias renamed to javascript, got %q", cfg.Languages[1].Language)
	}
	if cfg.Languages[1].Class != "js javascript js-code" {
		t.Errorf("expected class kept, got %q", cfg.Languages[1].Class)
	}

	joined := strings.Join(result.Warnings, "\n")
	if !strings.Contains(joined, "languages[2] has no language") {
		t.Errorf("expected warning about nameless entry, got %v", result.Warnings)
	}
	if !strings.Contains(joined, `"js" renamed`) {
		t.Errorf("expected rename warning, got %v", result.Warnings)
	}
}

func TestConvertEditorConfig_YAMLDisabledIndent(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "editor.yaml")
	writeFile(t, configPath, `
codeBlock:
  indentSequence: false
  unknownOption: 1
`)

	result, err := ConvertEditorConfig(configPath)
	if err != nil {
		t.Fatalf("ConvertEditorConfig() error = %v", err)
	}

	if result.Config.IndentSequence != config.DefaultIndentSequence {
		t.Errorf("expected default indent sequence, got %q", result.Config.IndentSequence)
	}
	if len(result.Warnings) != 2 {
		t.Errorf("expected 2 warnings, got %v", result.Warnings)
	}
}

func TestConvertEditorConfig_MissingSection(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "editor.config.json")
	writeFile(t, configPath, `{"toolbar": []}`)

	if _, err := ConvertEditorConfig(configPath); err == nil {
		t.Fatal("expected error for missing codeBlock section")
	}
}

func TestWriteConfigRoundTrip(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, ".codeblock.yml")

	cfg := config.NewConfig()
	cfg.IndentSequence = "  "

	if err := WriteConfig(context.Background(), cfg, path, GenerateMigrationHeader("editor.config.json")); err != nil {
		t.Fatalf("WriteConfig() error = %v", err)
	}

	loaded, err := loadConfigFile(path)
	if err != nil {
		t.Fatalf("loadConfigFile() error = %v", err)
	}
	if loaded.IndentSequence != "  " {
		t.Errorf("expected indent sequence %q, got %q", "  ", loaded.IndentSequence)
	}
}

func TestStripJSONComments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"line comment", "{\"a\": 1 // note\n}", "{\"a\": 1 \n}"},
		{"block comment", `{"a": /* x */ 1}`, `{"a":  1}`},
		{"slashes in string", `{"url": "http://x"}`, `{"url": "http://x"}`},
		{"escaped quote in string", `{"q": "a\"//b"}`, `{"q": "a\"//b"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := string(stripJSONComments([]byte(tt.input))); got != tt.want {
				t.Errorf("stripJSONComments() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetectConfigFormat(t *testing.T) {
	t.Parallel()

	for path, want := range map[string]string{
		"a.json":  "json",
		"a.JSONC": "json",
		"a.yml":   "yaml",
		"a.toml":  "unknown",
	} {
		if got := DetectConfigFormat(path); got != want {
			t.Errorf("DetectConfigFormat(%q) = %q, want %q", path, got, want)
		}
	}
}
