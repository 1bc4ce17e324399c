// Package highlight renders code as class-annotated HTML with chroma. Only
// token spans carry the class prefix, so domconv reads the output back as
// highlight spans holding tokens and nothing else.
package highlight

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"golang.org/x/net/html"
)

// Defaults for a new Highlighter.
const (
	DefaultPrefix = "hljs-"
	DefaultStyle  = "github"
)

// Highlighter renders code to HTML.
type Highlighter struct {
	prefix    string
	style     *chroma.Style
	formatter *chromahtml.Formatter
}

// Option configures a Highlighter.
type Option func(*Highlighter)

// WithPrefix sets the class prefix of every emitted token class.
func WithPrefix(prefix string) Option {
	return func(h *Highlighter) {
		if prefix != "" {
			h.prefix = prefix
		}
	}
}

// WithStyle selects a chroma style by name. Unknown names use chroma's fallback style.
func WithStyle(name string) Option {
	return func(h *Highlighter) {
		if name != "" {
			h.style = styles.Get(name)
		}
	}
}

// New creates a Highlighter.
func New(opts ...Option) *Highlighter {
	h := &Highlighter{
		prefix: DefaultPrefix,
		style:  styles.Get(DefaultStyle),
	}
	for _, opt := range opts {
		opt(h)
	}

	h.formatter = chromahtml.New(
		chromahtml.WithClasses(true),
		chromahtml.ClassPrefix(h.prefix),
	)
	return h
}

// Prefix returns the class prefix of emitted token classes.
func (h *Highlighter) Prefix() string {
	return h.prefix
}

// Highlight renders code written in language as a <pre><code> block. An
// unknown or empty language is guessed from the content, falling back to
// plain text. Plain text and whitespace tokens are written without a span.
func (h *Highlighter) Highlight(language, code string) (string, error) {
	lexer := chroma.Coalesce(h.lexer(language, code))

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return "", fmt.Errorf("tokenise %s: %w", lexer.Config().Name, err)
	}

	var sb strings.Builder
	sb.WriteString("<pre><code>")
	for _, token := range iterator.Tokens() {
		text := html.EscapeString(token.Value)

		class := h.tokenClass(token.Type)
		if class == "" {
			sb.WriteString(text)
			continue
		}
		fmt.Fprintf(&sb, `<span class="%s">%s</span>`, class, text)
	}
	sb.WriteString("</code></pre>")
	return sb.String(), nil
}

// tokenClass returns the prefixed short class of a token type, looking up its
// sub-category and category when the type has no class of its own.
func (h *Highlighter) tokenClass(tokenType chroma.TokenType) string {
	if tokenType == chroma.Text || tokenType == chroma.TextWhitespace {
		return ""
	}

	for _, candidate := range []chroma.TokenType{tokenType, tokenType.SubCategory(), tokenType.Category()} {
		if class, ok := chroma.StandardTypes[candidate]; ok && class != "" {
			return h.prefix + class
		}
	}
	return ""
}

// LexerName returns the name of the lexer Highlight would use.
func (h *Highlighter) LexerName(language, code string) string {
	return h.lexer(language, code).Config().Name
}

// WriteCSS writes the stylesheet for the configured style and prefix. The
// token rules match the spans Highlight emits.
func (h *Highlighter) WriteCSS(w io.Writer) error {
	if err := h.formatter.WriteCSS(w, h.style); err != nil {
		return fmt.Errorf("write css: %w", err)
	}
	return nil
}

//nolint:ireturn // chroma.Lexer is an external interface type
func (h *Highlighter) lexer(language, code string) chroma.Lexer {
	if language != "" {
		if lexer := lexers.Get(language); lexer != nil {
			return lexer
		}
	}
	if lexer := lexers.Analyse(code); lexer != nil {
		return lexer
	}
	return lexers.Fallback
}
