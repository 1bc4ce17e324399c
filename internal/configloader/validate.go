package configloader

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/yaklabco/codeblock/pkg/config"
	"github.com/yaklabco/codeblock/pkg/language"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "languages[2].language").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string

	// Line is the line number in the config file (if known).
	Line int
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		if e.Line > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", e.FilePath, e.Line))
		} else {
			parts = append(parts, e.FilePath)
		}
	}

	if e.Field != "" {
		parts = append(parts, e.Field)
	}

	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues.
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

// knownFlavors lists valid flavor values.
//
//nolint:gochecknoglobals // Read-only lookup table.
var knownFlavors = map[config.Flavor]bool{
	config.FlavorCommonMark: true,
	config.FlavorGFM:        true,
}

// knownLogLevels lists valid log level values.
//
//nolint:gochecknoglobals // Read-only lookup table.
var knownLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// knownColorModes lists valid color mode values.
//
//nolint:gochecknoglobals // Read-only lookup table.
var knownColorModes = map[config.ColorMode]bool{
	config.ColorAuto:   true,
	config.ColorAlways: true,
	config.ColorNever:  true,
}

// Validate checks a configuration for errors and warnings.
func Validate(cfg *config.Config) *ValidationResult {
	if cfg == nil {
		return &ValidationResult{}
	}

	result := &ValidationResult{}

	if cfg.Flavor != "" && !knownFlavors[cfg.Flavor] {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "flavor",
			Value:   cfg.Flavor,
			Message: fmt.Sprintf("invalid flavor %q; must be one of: commonmark, gfm", cfg.Flavor),
		})
	}

	if cfg.LogLevel != "" && !knownLogLevels[cfg.LogLevel] {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "log_level",
			Value:   cfg.LogLevel,
			Message: fmt.Sprintf("invalid log level %q; must be one of: debug, info, warn, error", cfg.LogLevel),
		})
	}

	if cfg.Color != "" && !knownColorModes[cfg.Color] {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "color",
			Value:   cfg.Color,
			Message: fmt.Sprintf("invalid color mode %q; must be one of: auto, always, never", cfg.Color),
		})
	}

	validateIndentSequence(cfg, result)
	validateHighlightPrefix(cfg, result)
	validateLanguages(cfg, result)

	return result
}

// validateIndentSequence requires a non-empty, whitespace-only sequence.
func validateIndentSequence(cfg *config.Config, result *ValidationResult) {
	if cfg.IndentSequence == "" {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "indent_sequence",
			Value:   cfg.IndentSequence,
			Message: "indent sequence must not be empty",
		})
		return
	}

	if strings.ContainsFunc(cfg.IndentSequence, func(r rune) bool { return r == '\n' || !unicode.IsSpace(r) }) {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "indent_sequence",
			Value:   cfg.IndentSequence,
			Message: "indent sequence contains characters other than spaces and tabs; outdent only removes it from leading whitespace",
		})
	}
}

// validateHighlightPrefix requires a class token usable as a substring marker.
func validateHighlightPrefix(cfg *config.Config, result *ValidationResult) {
	if cfg.HighlightPrefix == "" {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "highlight_prefix",
			Value:   cfg.HighlightPrefix,
			Message: "highlight prefix must not be empty",
		})
		return
	}

	if strings.ContainsFunc(cfg.HighlightPrefix, unicode.IsSpace) {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "highlight_prefix",
			Value:   cfg.HighlightPrefix,
			Message: "highlight prefix must not contain whitespace",
		})
	}
}

// validateLanguages checks language definitions for missing identifiers and
// duplicates.
func validateLanguages(cfg *config.Config, result *ValidationResult) {
	seen := make(map[string]int, len(cfg.Languages))

	for i, def := range cfg.Languages {
		field := fmt.Sprintf("languages[%d]", i)

		if def.Language == "" {
			result.Errors = append(result.Errors, ValidationError{
				Field:   field + ".language",
				Message: "language identifier must not be empty",
			})
			continue
		}

		if strings.ContainsFunc(def.Language, unicode.IsSpace) {
			result.Errors = append(result.Errors, ValidationError{
				Field:   field + ".language",
				Value:   def.Language,
				Message: fmt.Sprintf("language identifier %q must not contain whitespace", def.Language),
			})
		}

		if def.Label == "" {
			result.Warnings = append(result.Warnings, ValidationError{
				Field:   field + ".label",
				Value:   def.Language,
				Message: fmt.Sprintf("language %q has no label; the identifier is shown instead", def.Language),
			})
		}

		if first, ok := seen[def.Language]; ok {
			result.Warnings = append(result.Warnings, ValidationError{
				Field:   field + ".language",
				Value:   def.Language,
				Message: fmt.Sprintf("language %q is already defined at languages[%d]", def.Language, first),
			})
			continue
		}
		seen[def.Language] = i
	}

	if len(cfg.Languages) > 0 && cfg.Languages[0].Language != "" && cfg.Languages[0].Language != language.PlainText {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "languages[0].language",
			Value:   cfg.Languages[0].Language,
			Message: fmt.Sprintf("new code blocks default to %q; list %q first to keep plain text as the default", cfg.Languages[0].Language, language.PlainText),
		})
	}
}

// ValidateWithFile validates configuration and includes file path in errors.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)

	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}

	return result
}

// IsValidFlavor returns true if the flavor is valid.
func IsValidFlavor(f config.Flavor) bool {
	return knownFlavors[f]
}

// IsValidLogLevel returns true if the log level is valid.
func IsValidLogLevel(level string) bool {
	return knownLogLevels[level]
}

// IsValidColorMode returns true if the color mode is valid.
func IsValidColorMode(mode config.ColorMode) bool {
	return knownColorModes[mode]
}
