package configloader

import "strings"

// languageAliases maps common alternative spellings of language identifiers
// to the identifiers used by the built-in definitions.
//
//nolint:gochecknoglobals // Read-only lookup table.
var languageAliases = map[string]string{
	"text":    "plaintext",
	"plain":   "plaintext",
	"txt":     "plaintext",
	"golang":  "go",
	"js":      "javascript",
	"jsx":     "javascript",
	"ts":      "typescript",
	"tsx":     "typescript",
	"py":      "python",
	"python3": "python",
	"rb":      "ruby",
	"c++":     "cpp",
	"cxx":     "cpp",
	"c#":      "cs",
	"csharp":  "cs",
	"patch":   "diff",
	"htm":     "html",
	"xhtml":   "html",
	"svg":     "xml",
}

// NormalizeLanguage converts a language alias to its canonical identifier.
// Aliases match case-insensitively; other identifiers are returned unchanged.
func NormalizeLanguage(key string) string {
	if id, ok := languageAliases[strings.ToLower(strings.TrimSpace(key))]; ok {
		return id
	}
	return key
}

// GetAliasesForLanguage returns all aliases for a canonical identifier.
func GetAliasesForLanguage(id string) []string {
	var aliases []string
	for alias, canonical := range languageAliases {
		if canonical == id && alias != id {
			aliases = append(aliases, alias)
		}
	}
	return aliases
}
