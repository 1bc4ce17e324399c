// Package markdown loads Markdown documents into the document model and
// writes them back. Code blocks become code block elements holding one text
// run per line; all other blocks become paragraphs holding their text.
package markdown

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/yaklabco/codeblock/pkg/language"
	"github.com/yaklabco/codeblock/pkg/lines"
	"github.com/yaklabco/codeblock/pkg/model"
)

// Flavors supported by the importer.
const (
	FlavorCommonMark = "commonmark"
	FlavorGFM        = "gfm"
)

// Importer converts Markdown source into a model document.
type Importer struct {
	flavor    string
	languages []language.Definition
	md        goldmark.Markdown
}

// Option configures an Importer.
type Option func(*Importer)

// WithFlavor selects the Markdown flavor. Unknown flavors use CommonMark.
func WithFlavor(flavor string) Option {
	return func(im *Importer) {
		im.flavor = flavorOrDefault(flavor)
	}
}

// WithLanguages sets the definitions used to detect the language of code
// blocks without an info string.
func WithLanguages(defs []language.Definition) Option {
	return func(im *Importer) {
		im.languages = defs
	}
}

// NewImporter creates an Importer.
func NewImporter(opts ...Option) *Importer {
	im := &Importer{
		flavor:    FlavorCommonMark,
		languages: language.Defaults(),
	}
	for _, opt := range opts {
		opt(im)
	}
	im.md = newGoldmarkInstance(im.flavor)
	return im
}

// Flavor returns the configured Markdown flavor.
func (im *Importer) Flavor() string {
	return im.flavor
}

// Import parses source with an importer for flavor and the default language
// definitions.
func Import(ctx context.Context, source []byte, flavor string) (*model.Node, error) {
	return NewImporter(WithFlavor(flavor)).Import(ctx, source)
}

// Import parses source and returns a new document root.
func (im *Importer) Import(ctx context.Context, source []byte) (*model.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("import cancelled: %w", err)
	}

	reader := text.NewReader(source)
	doc := im.md.Parser().Parse(reader, parser.WithContext(parser.NewContext()))

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("import cancelled: %w", err)
	}

	m := &mapper{source: source, languages: im.languages}
	root := model.NewRoot()
	for child := doc.FirstChild(); child != nil; child = child.NextSibling() {
		m.mapBlock(root, child, "")
	}
	return root, nil
}

// mapper converts goldmark block nodes into model blocks.
type mapper struct {
	source    []byte
	languages []language.Definition
}

// mapBlock appends the model blocks for n to root. prefix carries container
// markers (quote and list markers) for the paragraphs produced inside them.
func (m *mapper) mapBlock(root *model.Node, n ast.Node, prefix string) {
	switch node := n.(type) {
	case *ast.FencedCodeBlock:
		info := ""
		if lang := node.Language(m.source); lang != nil {
			info = string(lang)
		}
		m.appendCode(root, info, m.linesOf(node))

	case *ast.CodeBlock:
		m.appendCode(root, "", m.linesOf(node))

	case *ast.Heading:
		m.appendParagraph(root, prefix+strings.Repeat("#", node.Level)+" "+m.inlineText(node))

	case *ast.Paragraph, *ast.TextBlock:
		m.appendParagraph(root, prefix+m.inlineText(node))

	case *ast.HTMLBlock:
		m.appendParagraph(root, prefix+strings.TrimRight(m.linesOf(node), "\n"))

	case *ast.ThematicBreak:
		m.appendParagraph(root, prefix+"---")

	case *ast.Blockquote:
		for child := node.FirstChild(); child != nil; child = child.NextSibling() {
			m.mapBlock(root, child, prefix+"> ")
		}

	case *ast.List:
		index := node.Start
		for item := node.FirstChild(); item != nil; item = item.NextSibling() {
			marker := string(node.Marker) + " "
			if node.IsOrdered() {
				marker = fmt.Sprintf("%d%c ", index, node.Marker)
				index++
			}
			for child := item.FirstChild(); child != nil; child = child.NextSibling() {
				m.mapBlock(root, child, prefix+marker)
			}
		}

	default:
		if n.Type() == ast.TypeBlock && n.Lines().Len() > 0 {
			m.appendParagraph(root, prefix+strings.TrimRight(m.linesOf(n), "\n"))
			return
		}
		for child := n.FirstChild(); child != nil; child = child.NextSibling() {
			m.mapBlock(root, child, prefix)
		}
	}
}

func (m *mapper) appendCode(root *model.Node, info, content string) {
	content = strings.TrimSuffix(content, "\n")

	lang := strings.TrimSpace(info)
	if fields := strings.Fields(lang); len(fields) > 0 {
		lang = fields[0]
	}
	if lang == "" {
		lang = language.Detect([]byte(content), m.languages)
	}

	block := model.NewCodeBlock(lang)
	model.AppendFragment(block, lines.ToFragment(content))
	model.AppendChild(root, block)
}

func (m *mapper) appendParagraph(root *model.Node, data string) {
	para := model.NewNode(model.NodeParagraph)
	model.AppendText(para, data)
	model.AppendChild(root, para)
}

// linesOf returns the raw source lines of a block node.
func (m *mapper) linesOf(n ast.Node) string {
	var buf bytes.Buffer
	segments := n.Lines()
	for i := 0; i < segments.Len(); i++ {
		segment := segments.At(i)
		buf.Write(segment.Value(m.source))
	}
	return buf.String()
}

// inlineText returns the source lines of a leaf block joined with line feeds
// and without trailing whitespace.
func (m *mapper) inlineText(n ast.Node) string {
	return strings.TrimRight(m.linesOf(n), " \t\n")
}

// flavorOrDefault returns the flavor if valid, otherwise defaults to CommonMark.
func flavorOrDefault(flavor string) string {
	switch flavor {
	case FlavorCommonMark, FlavorGFM:
		return flavor
	default:
		return FlavorCommonMark
	}
}

// newGoldmarkInstance creates a configured goldmark.Markdown instance.
//
//nolint:ireturn // goldmark.Markdown is an external interface type
func newGoldmarkInstance(flavor string) goldmark.Markdown {
	var opts []goldmark.Option

	switch flavor {
	case FlavorGFM:
		opts = append(opts, goldmark.WithExtensions(extension.GFM))
	case FlavorCommonMark:
		// No extensions for pure CommonMark.
	}

	return goldmark.New(opts...)
}
