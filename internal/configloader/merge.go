package configloader

import (
	"slices"

	"github.com/yaklabco/codeblock/pkg/config"
)

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Slices: override replaces base entirely if override is non-empty
//   - Unset values in override do not override values in base
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.HighlightPrefix != "" {
		result.HighlightPrefix = override.HighlightPrefix
	}
	if override.IndentSequence != "" {
		result.IndentSequence = override.IndentSequence
	}
	if override.Flavor != "" {
		result.Flavor = override.Flavor
	}
	if override.Style != "" {
		result.Style = override.Style
	}
	if override.LogLevel != "" {
		result.LogLevel = override.LogLevel
	}
	if override.Color != "" {
		result.Color = override.Color
	}

	// A language list is replaced as a whole; the first entry is the default
	// language, so appending would change its meaning.
	if len(override.Languages) > 0 {
		result.Languages = slices.Clone(override.Languages)
	} else {
		result.Languages = slices.Clone(base.Languages)
	}

	return &result
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
