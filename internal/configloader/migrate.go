package configloader

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/codeblock/pkg/config"
	"github.com/yaklabco/codeblock/pkg/fsutil"
	"github.com/yaklabco/codeblock/pkg/language"
)

// configFilePermissions is the file mode for configuration files (world-readable).
const configFilePermissions = 0644

// MigrationResult contains the result of converting an editor config.
type MigrationResult struct {
	// Config is the converted codeblock configuration.
	Config *config.Config

	// Warnings contains non-fatal issues encountered during conversion.
	Warnings []string

	// SourcePath is the path to the original editor config.
	SourcePath string
}

// ConvertEditorConfig converts the codeBlock section of an editor config
// file (JSON, JSONC or YAML) to codeblock format. The section may hold
// "languages" (a list of {language, label, class} objects) and
// "indentSequence" (a string, or false to disable indentation).
func ConvertEditorConfig(path string) (*MigrationResult, error) {
	result := &MigrationResult{
		SourcePath: path,
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var raw map[string]any
	if IsJSONConfig(path) {
		if err := parseJSONC(content, &raw); err != nil {
			return nil, fmt.Errorf("parse JSON: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(content, &raw); err != nil {
			return nil, fmt.Errorf("parse YAML: %w", err)
		}
	}

	section, ok := raw["codeBlock"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s has no codeBlock section", path)
	}

	cfg := config.NewConfig()

	for key, value := range section {
		switch key {
		case "languages":
			cfg.Languages = convertLanguages(value, result)
		case "indentSequence":
			convertIndentSequence(cfg, value, result)
		default:
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("unknown key %q in codeBlock section; skipping", key))
		}
	}

	result.Config = cfg
	return result, nil
}

// convertLanguages converts a list of language objects to definitions.
func convertLanguages(value any, result *MigrationResult) []language.Definition {
	items, ok := value.([]any)
	if !ok {
		result.Warnings = append(result.Warnings, "codeBlock.languages is not a list; skipping")
		return nil
	}

	defs := make([]language.Definition, 0, len(items))
	for i, item := range items {
		fields, ok := item.(map[string]any)
		if !ok {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("codeBlock.languages[%d] is not an object; skipping", i))
			continue
		}

		def := language.Definition{
			Language: stringField(fields, "language"),
			Label:    stringField(fields, "label"),
			Class:    stringField(fields, "class"),
		}
		if def.Language == "" {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("codeBlock.languages[%d] has no language; skipping", i))
			continue
		}

		if canonical := NormalizeLanguage(def.Language); canonical != def.Language {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("language %q renamed to %q", def.Language, canonical))
			def.Language = canonical
		}

		defs = append(defs, def)
	}
	return defs
}

func convertIndentSequence(cfg *config.Config, value any, result *MigrationResult) {
	switch typed := value.(type) {
	case string:
		cfg.IndentSequence = typed
	case bool:
		if !typed {
			result.Warnings = append(result.Warnings,
				"'indentSequence: false' disables indentation; codeblock always indents, keeping the default sequence")
		}
	default:
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("codeBlock.indentSequence has unsupported value %v; skipping", value))
	}
}

func stringField(fields map[string]any, key string) string {
	if s, ok := fields[key].(string); ok {
		return s
	}
	return ""
}

// parseJSONC parses JSON with comments (JSONC format).
// It strips comments before parsing.
func parseJSONC(content []byte, target any) error {
	if err := json.Unmarshal(content, target); err == nil {
		return nil
	}

	stripped := stripJSONComments(content)
	if err := json.Unmarshal(stripped, target); err != nil {
		return fmt.Errorf("unmarshal stripped JSON: %w", err)
	}
	return nil
}

// stripJSONComments removes JavaScript-style comments from JSON content.
func stripJSONComments(content []byte) []byte {
	var result []byte
	inString := false
	inSingleComment := false
	inMultiComment := false

	for idx := 0; idx < len(content); idx++ {
		char := content[idx]

		if inSingleComment {
			if char == '\n' {
				inSingleComment = false
				result = append(result, char)
			}
			continue
		}

		if inMultiComment {
			if char == '*' && idx+1 < len(content) && content[idx+1] == '/' {
				inMultiComment = false
				idx++
			}
			continue
		}

		if inString {
			result = append(result, char)
			if char == '\\' && idx+1 < len(content) {
				idx++
				result = append(result, content[idx])
			} else if char == '"' {
				inString = false
			}
			continue
		}

		if char == '"' {
			inString = true
			result = append(result, char)
			continue
		}

		if char == '/' && idx+1 < len(content) {
			next := content[idx+1]
			if next == '/' {
				inSingleComment = true
				idx++
				continue
			}
			if next == '*' {
				inMultiComment = true
				idx++
				continue
			}
		}

		result = append(result, char)
	}

	return result
}

// GenerateMigrationHeader returns a header comment for migrated configs.
func GenerateMigrationHeader(sourcePath string) string {
	return fmt.Sprintf(`%s
# Migrated from: %s`, config.DefaultTemplateHeader(), filepath.Base(sourcePath))
}

// WriteConfig atomically writes a configuration to a YAML file with a header
// comment.
func WriteConfig(ctx context.Context, cfg *config.Config, path, header string) error {
	content, err := cfg.ToYAMLWithHeader(header)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := fsutil.WriteAtomic(ctx, path, content, configFilePermissions); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	return nil
}

// DetectConfigFormat determines the format of a config file.
func DetectConfigFormat(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json", ".jsonc":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "unknown"
	}
}
