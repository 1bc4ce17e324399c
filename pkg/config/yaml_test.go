package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/codeblock/pkg/config"
	"github.com/yaklabco/codeblock/pkg/language"
)

func TestConfigClone(t *testing.T) {
	t.Run("nil config returns nil", func(t *testing.T) {
		var c *config.Config
		clone := c.Clone()
		assert.Nil(t, clone)
	})

	t.Run("empty config", func(t *testing.T) {
		c := &config.Config{}
		clone := c.Clone()
		require.NotNil(t, clone)
		assert.NotSame(t, c, clone)
	})

	t.Run("deep copies Languages slice", func(t *testing.T) {
		original := &config.Config{
			Languages: []language.Definition{
				{Language: "go", Label: "Go"},
				{Language: "php", Label: "PHP", Class: "php-code"},
			},
		}

		clone := original.Clone()
		require.NotNil(t, clone)
		assert.Equal(t, original.Languages, clone.Languages)

		clone.Languages[0].Label = "changed"
		assert.Equal(t, "Go", original.Languages[0].Label)
	})

	t.Run("preserves all fields", func(t *testing.T) {
		original := config.NewConfig()
		original.Flavor = config.FlavorGFM
		original.IndentSequence = "    "
		original.HighlightPrefix = "tok-"
		original.Style = "monokai"
		original.LogLevel = "debug"
		original.Color = config.ColorNever

		clone := original.Clone()
		require.NotNil(t, clone)
		assert.Equal(t, original, clone)
	})
}

func TestConfigToYAML(t *testing.T) {
	t.Run("nil config returns nil", func(t *testing.T) {
		var cfg *config.Config
		data, err := cfg.ToYAML()
		require.NoError(t, err)
		assert.Nil(t, data)
	})

	t.Run("basic config serializes", func(t *testing.T) {
		cfg := &config.Config{
			Flavor:         config.FlavorGFM,
			IndentSequence: "  ",
			Color:          config.ColorAlways,
		}

		data, err := cfg.ToYAML()
		require.NoError(t, err)
		assert.Contains(t, string(data), "flavor: gfm")
		assert.NotContains(t, string(data), "always", "CLI-only fields are not written")

		parsed, err := config.FromYAML(data)
		require.NoError(t, err)
		assert.Equal(t, "  ", parsed.IndentSequence)
		assert.NotContains(t, string(data), "languages")
	})

	t.Run("header is prepended", func(t *testing.T) {
		data, err := config.NewConfig().ToYAMLWithHeader("# header")
		require.NoError(t, err)
		assert.Regexp(t, `^# header\n\nhighlight_prefix: hljs-`, string(data))
	})
}

func TestFromYAML(t *testing.T) {
	t.Run("parses valid YAML", func(t *testing.T) {
		yaml := []byte(`
flavor: gfm
indent_sequence: "    "
languages:
  - language: go
    label: Go
  - language: php
    label: PHP
    class: php-code
`)
		cfg, err := config.FromYAML(yaml)
		require.NoError(t, err)
		assert.Equal(t, config.FlavorGFM, cfg.Flavor)
		assert.Equal(t, "    ", cfg.IndentSequence)
		require.Len(t, cfg.Languages, 2)
		assert.Equal(t, "php-code", cfg.Languages[1].Class)
	})

	t.Run("absent keys stay empty", func(t *testing.T) {
		cfg, err := config.FromYAML([]byte(`flavor: commonmark`))
		require.NoError(t, err)
		assert.Empty(t, cfg.IndentSequence)
		assert.Empty(t, cfg.HighlightPrefix)
	})

	t.Run("rejects malformed YAML", func(t *testing.T) {
		_, err := config.FromYAML([]byte("flavor: [unterminated"))
		require.Error(t, err)
	})
}

func TestLanguageDefinitions(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	defs := cfg.LanguageDefinitions(nil)
	require.NotEmpty(t, defs)
	assert.Equal(t, language.PlainText, defs[0].Language)
	assert.Equal(t, "language-plaintext", defs[0].Class)

	cfg.Languages = []language.Definition{{Language: "go", Label: "Go"}}
	defs = cfg.LanguageDefinitions(nil)
	require.Len(t, defs, 1)
	assert.Equal(t, "language-go", defs[0].Class)
	assert.Empty(t, cfg.Languages[0].Class, "configured definitions are not modified")
}
