package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/yaklabco/codeblock/pkg/language"
)

// commentWrapWidth is the maximum width for wrapped comments in templates.
const commentWrapWidth = 70

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full lists every built-in language definition.
	// If false, generates a minimal template.
	Full bool

	// Format is the output format: "yaml" or "json".
	Format string
}

// GenerateTemplate creates a configuration file template.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	if opts.Format == "json" {
		return templateToJSON(opts)
	}

	var buf bytes.Buffer
	buf.WriteString(DefaultTemplateHeader())
	buf.WriteString(`

# Prefix of the class marking highlight spans in rendered code
highlight_prefix: "hljs-"

# Sequence inserted by indent and removed by outdent
indent_sequence: "\t"

# Markdown flavor: commonmark or gfm
flavor: commonmark

# Chroma style used by 'codeblock highlight --css'
style: github

# Log level: debug, info, warn, or error
log_level: warn
`)

	if !opts.Full {
		buf.WriteString(`
# Code block languages (replaces the built-in list)
# languages:
#   - language: plaintext
#     label: Plain text
#   - language: go
#     label: Go
`)
		return buf.Bytes(), nil
	}

	buf.WriteString("\n")
	buf.WriteString("# " + wrapComment(
		"Code block languages. The first entry is the default for new code blocks. "+
			"The class defaults to language-<language>; only its first token identifies "+
			"the language. Linguist names the language for content detection.",
		commentWrapWidth, "# ") + "\n")
	buf.WriteString("languages:\n")
	for _, def := range language.Defaults() {
		fmt.Fprintf(&buf, "  - language: %s\n", def.Language)
		fmt.Fprintf(&buf, "    label: %q\n", def.Label)
		if def.Class != "" {
			fmt.Fprintf(&buf, "    class: %q\n", def.Class)
		}
	}

	return buf.Bytes(), nil
}

// wrapComment wraps a comment to fit within maxWidth characters.
func wrapComment(text string, maxWidth int, linePrefix string) string {
	if len(text) <= maxWidth {
		return text
	}

	var lines []string
	words := strings.Fields(text)
	currentLine := ""

	for _, word := range words {
		switch {
		case currentLine == "":
			currentLine = word
		case len(currentLine)+1+len(word) <= maxWidth:
			currentLine += " " + word
		default:
			lines = append(lines, currentLine)
			currentLine = word
		}
	}
	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return strings.Join(lines, "\n"+linePrefix)
}

// templateToJSON renders the default configuration as JSON. JSON carries no
// comments, so the full template only differs by listing the languages.
func templateToJSON(opts TemplateOptions) ([]byte, error) {
	cfg := NewConfig()
	if opts.Full {
		cfg.Languages = language.Defaults()
	}

	doc := map[string]any{
		"highlight_prefix": cfg.HighlightPrefix,
		"indent_sequence":  cfg.IndentSequence,
		"flavor":           cfg.Flavor,
		"style":            cfg.Style,
		"log_level":        cfg.LogLevel,
	}
	if len(cfg.Languages) > 0 {
		doc["languages"] = cfg.Languages
	}

	jsonBytes, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal JSON: %w", err)
	}

	return append(jsonBytes, '\n'), nil
}

// DefaultTemplateHeader returns the default header for generated configs.
func DefaultTemplateHeader() string {
	return `# codeblock configuration
# See: https://github.com/yaklabco/codeblock`
}
