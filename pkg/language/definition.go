// Package language describes the languages a code block can be marked with
// and detects a language from code content.
package language

import "strings"

// PlainText is the language identifier of unhighlighted code.
const PlainText = "plaintext"

// plainTextLabel is the label localized by Normalize.
const plainTextLabel = "Plain text"

// classPrefix is prepended to the language identifier when a definition has no class.
const classPrefix = "language-"

// Definition describes one code block language.
type Definition struct {
	// Language is the identifier stored on code blocks (e.g. "javascript").
	Language string `yaml:"language" json:"language"`

	// Label is the human-readable name (e.g. "JavaScript").
	Label string `yaml:"label" json:"label"`

	// Class is the CSS class list of the rendered block. Only the first
	// token identifies the language.
	Class string `yaml:"class,omitempty" json:"class,omitempty"`

	// Linguist is the language name used for content detection.
	// Defaults to Label.
	Linguist string `yaml:"linguist,omitempty" json:"linguist,omitempty"`
}

// Defaults returns the built-in language list. Plain text comes first and is
// the default for new code blocks.
func Defaults() []Definition {
	return []Definition{
		{Language: PlainText, Label: plainTextLabel},
		{Language: "c", Label: "C"},
		{Language: "cs", Label: "C#"},
		{Language: "cpp", Label: "C++"},
		{Language: "css", Label: "CSS"},
		{Language: "diff", Label: "Diff"},
		{Language: "go", Label: "Go"},
		{Language: "html", Label: "HTML"},
		{Language: "java", Label: "Java"},
		{Language: "javascript", Label: "JavaScript"},
		{Language: "php", Label: "PHP"},
		{Language: "python", Label: "Python"},
		{Language: "ruby", Label: "Ruby"},
		{Language: "typescript", Label: "TypeScript"},
		{Language: "xml", Label: "XML"},
	}
}

// Translator localizes a UI string. A nil Translator leaves strings as-is.
type Translator func(string) string

// Normalize fills in derived fields of defs in place and returns it:
// the plain text label is localized with translate, and every definition
// without a class gets "language-<identifier>".
func Normalize(defs []Definition, translate Translator) []Definition {
	for i := range defs {
		def := &defs[i]

		if def.Label == plainTextLabel && translate != nil {
			def.Label = translate(plainTextLabel)
		}

		if def.Class == "" {
			def.Class = classPrefix + def.Language
		}
	}
	return defs
}

// Property names accepted by PropertyAssociation.
const (
	PropertyLanguage = "language"
	PropertyLabel    = "label"
	PropertyClass    = "class"
)

// PropertyAssociation maps one definition property to another, e.g. class to
// language. For the class property only the first class token is used as key.
// Unknown property names map to empty strings.
func PropertyAssociation(defs []Definition, key, value string) map[string]string {
	association := make(map[string]string, len(defs))

	for _, def := range defs {
		k := property(def, key)
		if key == PropertyClass {
			k = firstToken(k)
		}
		association[k] = property(def, value)
	}

	return association
}

// ForClass returns the definition whose first class token appears in the
// given class list, as rendered on a code element.
func ForClass(defs []Definition, classList string) (Definition, bool) {
	tokens := strings.Fields(classList)
	for _, def := range defs {
		want := firstToken(def.Class)
		if want == "" {
			continue
		}
		for _, token := range tokens {
			if token == want {
				return def, true
			}
		}
	}
	return Definition{}, false
}

// Lookup returns the definition with the given identifier.
func Lookup(defs []Definition, language string) (Definition, bool) {
	for _, def := range defs {
		if def.Language == language {
			return def, true
		}
	}
	return Definition{}, false
}

func property(def Definition, name string) string {
	switch name {
	case PropertyLanguage:
		return def.Language
	case PropertyLabel:
		return def.Label
	case PropertyClass:
		return def.Class
	default:
		return ""
	}
}

func firstToken(s string) string {
	if fields := strings.Fields(s); len(fields) > 0 {
		return fields[0]
	}
	return ""
}
