package pretty_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/codeblock/internal/ui/pretty"
)

func TestFormatLanguages(t *testing.T) {
	t.Parallel()

	formatter := pretty.NewTableFormatter(pretty.NewStyles(false), 0)
	got := formatter.FormatLanguages([]pretty.LanguageRow{
		{Language: "plaintext", Label: "Plain text", Class: "language-plaintext", Lexer: "plaintext", Default: true},
		{Language: "go", Label: "Go", Class: "language-go", Lexer: "Go"},
	})

	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	require.Len(t, lines, 6)

	assert.True(t, strings.HasPrefix(lines[0], "   LANGUAGE"))
	assert.Regexp(t, `^=+$`, lines[1])
	assert.True(t, strings.HasPrefix(lines[2], " * plaintext"))
	assert.True(t, strings.HasPrefix(lines[3], "   go "))
	assert.Contains(t, lines[3], "language-go")
	assert.Equal(t, " * = default for new code blocks", lines[5])
}

func TestFormatLanguagesTruncatesClass(t *testing.T) {
	t.Parallel()

	formatter := pretty.NewTableFormatter(pretty.NewStyles(false), 60)
	got := formatter.FormatLanguages([]pretty.LanguageRow{
		{Language: "go", Label: "Go", Class: strings.Repeat("c", 80), Lexer: "Go"},
	})

	assert.Contains(t, got, "...")
	assert.Empty(t, formatter.FormatLanguages(nil))
}
