// Package config defines core configuration types for codeblock.
// These types are pure data structures with no dependency on the loader.
package config

import (
	"slices"

	"github.com/yaklabco/codeblock/pkg/language"
)

// Flavor specifies the Markdown flavor used to import documents.
type Flavor string

const (
	FlavorCommonMark Flavor = "commonmark"
	FlavorGFM        Flavor = "gfm"
)

// Defaults for a new Config.
const (
	DefaultHighlightPrefix = "hljs-"
	DefaultIndentSequence  = "\t"
	DefaultStyle           = "github"
	DefaultLogLevel        = "warn"
)

// ColorMode controls styled terminal output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Config is the root configuration structure for codeblock.
type Config struct {
	// HighlightPrefix marks highlight spans in rendered markup ("hljs-").
	HighlightPrefix string `yaml:"highlight_prefix"`

	// IndentSequence is inserted by indent and removed by outdent.
	IndentSequence string `yaml:"indent_sequence"`

	// Flavor specifies the Markdown flavor ("commonmark" or "gfm").
	Flavor Flavor `yaml:"flavor"`

	// Style is the chroma style used for stylesheets.
	Style string `yaml:"style"`

	// LogLevel is the minimum level logged ("debug", "info", "warn", "error").
	LogLevel string `yaml:"log_level"`

	// Languages replaces the built-in language definitions when set.
	Languages []language.Definition `yaml:"languages,omitempty"`

	// CLI-level options (not persisted to config files).

	// Color selects when styled output is used.
	Color ColorMode `yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		HighlightPrefix: DefaultHighlightPrefix,
		IndentSequence:  DefaultIndentSequence,
		Flavor:          FlavorCommonMark,
		Style:           DefaultStyle,
		LogLevel:        DefaultLogLevel,
		Languages:       nil,
		Color:           ColorAuto,
	}
}

// LanguageDefinitions returns the configured languages, or the built-in set
// when none are configured, normalized with the given translator.
func (c *Config) LanguageDefinitions(translate language.Translator) []language.Definition {
	defs := slices.Clone(c.Languages)
	if len(defs) == 0 {
		defs = language.Defaults()
	}
	return language.Normalize(defs, translate)
}
