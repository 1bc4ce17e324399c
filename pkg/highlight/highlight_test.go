package highlight_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/codeblock/pkg/domconv"
	"github.com/yaklabco/codeblock/pkg/highlight"
	"github.com/yaklabco/codeblock/pkg/model"
)

func TestHighlightUsesPrefix(t *testing.T) {
	t.Parallel()

	h := highlight.New()
	assert.Equal(t, highlight.DefaultPrefix, h.Prefix())

	out, err := h.Highlight("go", "package main\n")
	require.NoError(t, err)

	assert.Contains(t, out, `class="hljs-`)
	assert.Contains(t, out, "package")
}

func TestHighlightRoundTripsThroughConverter(t *testing.T) {
	t.Parallel()

	code := "func main() {\n\tif x < 1 {\n\t\treturn\n\t}\n}\n"

	h := highlight.New(highlight.WithPrefix("tok-"))
	out, err := h.Highlight("go", code)
	require.NoError(t, err)

	fragment := domconv.New(domconv.WithPrefix(h.Prefix())).ConvertString(out)

	assert.Equal(t, code, fragment.TextContent())
	assert.NotEmpty(t, model.FindByKind(fragment, model.NodeHighlight))
	for _, span := range model.FindByKind(fragment, model.NodeHighlight) {
		class, _ := span.Attr(model.AttrClass)
		assert.True(t, strings.Contains(class, "tok-"), class)
	}
}

func TestHighlightSpansOnlyTokens(t *testing.T) {
	t.Parallel()

	h := highlight.New()
	out, err := h.Highlight("go", "if x {\n\ty()\n}")
	require.NoError(t, err)

	fragment := domconv.New().ConvertString(out)
	assert.True(t, strings.HasPrefix(model.Stringify(fragment), `<hljs class="hljs-k">if</hljs> `),
		model.Stringify(fragment))

	spans := model.FindByKind(fragment, model.NodeHighlight)
	require.NotEmpty(t, spans)
	for _, span := range spans {
		class, _ := span.Attr(model.AttrClass)
		assert.NotContains(t, []string{"hljs-chroma", "hljs-line", "hljs-cl", "hljs-w"}, class)
		assert.Equal(t, model.NodeFragment, span.Parent.Kind, "span %q is nested", class)
		assert.NotEmpty(t, span.TextContent())
		assert.NotContains(t, span.TextContent(), "\n", "token %q spans lines", class)
	}
}

func TestHighlightEscapesText(t *testing.T) {
	t.Parallel()

	code := "a := \"<b>\" && 'c'\n"

	out, err := highlight.New().Highlight("go", code)
	require.NoError(t, err)
	assert.NotContains(t, out, "<b>")

	fragment := domconv.New().ConvertString(out)
	assert.Equal(t, code, fragment.TextContent())
}

func TestLexerName(t *testing.T) {
	t.Parallel()

	h := highlight.New()
	assert.Equal(t, "Go", h.LexerName("go", ""))
	assert.Equal(t, "Python", h.LexerName("python", ""))
	assert.NotEmpty(t, h.LexerName("no-such-language", "plain words"))
}

func TestWriteCSS(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, highlight.New(highlight.WithStyle("monokai")).WriteCSS(&buf))
	assert.Contains(t, buf.String(), ".hljs-")
}
