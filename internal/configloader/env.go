package configloader

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/yaklabco/codeblock/pkg/config"
)

// envVarPrefix is the prefix for all codeblock environment variables.
const envVarPrefix = "CODEBLOCK_"

// envMapping defines an environment variable to config field mapping.
type envMapping struct {
	field       string
	description string
	unquote     bool
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"HIGHLIGHT_PREFIX": {field: "highlight_prefix", description: "Class prefix marking highlight spans"},
	"INDENT_SEQUENCE": {
		field:       "indent_sequence",
		description: `Indent sequence; Go escapes such as "\t" are accepted`,
		unquote:     true,
	},
	"FLAVOR":    {field: "flavor", description: "Markdown flavor: commonmark or gfm"},
	"STYLE":     {field: "style", description: "Chroma style for stylesheets"},
	"LOG_LEVEL": {field: "log_level", description: "Log level: debug, info, warn, or error"},
	"COLOR":     {field: "color", description: "Styled output: auto, always, or never"},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with CODEBLOCK_ (e.g., CODEBLOCK_FLAVOR).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value, ok := os.LookupEnv(envVar)
		if !ok || value == "" {
			continue
		}

		if mapping.unquote {
			unquoted, err := unquoteEscapes(value)
			if err != nil {
				return fmt.Errorf("invalid value for %s: %q: %w", envVar, value, err)
			}
			value = unquoted
		}

		if err := setStringField(cfg, mapping.field, value); err != nil {
			return err
		}
	}

	return nil
}

// unquoteEscapes interprets Go string escapes in value.
func unquoteEscapes(value string) (string, error) {
	unquoted, err := strconv.Unquote(`"` + value + `"`)
	if err != nil {
		return "", fmt.Errorf("unquote: %w", err)
	}
	return unquoted, nil
}

// setStringField sets a string field on the config by field path.
func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "highlight_prefix":
		cfg.HighlightPrefix = value
	case "indent_sequence":
		cfg.IndentSequence = value
	case "flavor":
		cfg.Flavor = config.Flavor(value)
	case "style":
		cfg.Style = value
	case "log_level":
		cfg.LogLevel = value
	case "color":
		cfg.Color = config.ColorMode(value)
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

// GetEnvVarName returns the full environment variable name for a config field.
func GetEnvVarName(field string) string {
	for suffix, mapping := range envMappings {
		if mapping.field == field {
			return envVarPrefix + suffix
		}
	}
	return ""
}

// ListEnvVars returns all supported environment variables with their
// descriptions, sorted by name.
func ListEnvVars() [][2]string {
	vars := make([][2]string, 0, len(envMappings))
	for suffix, mapping := range envMappings {
		vars = append(vars, [2]string{envVarPrefix + suffix, mapping.description})
	}
	sort.Slice(vars, func(i, j int) bool {
		return vars[i][0] < vars[j][0]
	})
	return vars
}
