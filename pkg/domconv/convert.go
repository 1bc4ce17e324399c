// Package domconv converts syntax-highlighted markup back into document model
// fragments. Highlight spans are kept, every other wrapper element is
// flattened into its parent, and only text survives in between.
package domconv

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/yaklabco/codeblock/pkg/model"
)

// DefaultPrefix is the class prefix highlight.js style highlighters use for token spans.
const DefaultPrefix = "hljs-"

// Converter rebuilds rendered highlighter output as model fragments.
type Converter struct {
	prefix string
}

// Option configures a Converter.
type Option func(*Converter)

// WithPrefix sets the class marker that identifies highlight spans.
// An empty prefix is ignored.
func WithPrefix(prefix string) Option {
	return func(c *Converter) {
		if prefix != "" {
			c.prefix = prefix
		}
	}
}

// New creates a Converter. The default marker is DefaultPrefix.
func New(opts ...Option) *Converter {
	c := &Converter{prefix: DefaultPrefix}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Prefix returns the configured highlight class marker.
func (c *Converter) Prefix() string {
	return c.prefix
}

// frame is one pending unit of work: a rendered node and the model parent its
// output attaches to.
type frame struct {
	source *html.Node
	target *model.Node
}

// Convert walks the children of root's first element child and returns a new
// fragment mirroring their highlight structure. A root without an element
// child yields an empty fragment.
func (c *Converter) Convert(root *html.Node) *model.Node {
	fragment := model.NewFragment()

	container := firstElementChild(root)
	if container == nil {
		return fragment
	}

	var stack []frame
	stack = pushChildren(stack, container, fragment)

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch top.source.Type {
		case html.TextNode:
			model.AppendText(top.target, top.source.Data)

		case html.ElementNode:
			if class, ok := c.highlightClass(top.source); ok {
				span := model.NewHighlight(class)
				model.AppendChild(top.target, span)
				stack = pushChildren(stack, top.source, span)
				continue
			}
			// Not a highlight span: its content lands in the current parent.
			stack = pushChildren(stack, top.source, top.target)

		default:
			// Comments, doctypes and anything else produce nothing.
		}
	}

	return fragment
}

// ConvertString parses markup and converts it. Unparseable markup yields an
// empty fragment.
func (c *Converter) ConvertString(markup string) *model.Node {
	root, err := ParseRendered(strings.NewReader(markup))
	if err != nil {
		return model.NewFragment()
	}
	return c.Convert(root)
}

// highlightClass returns the full class attribute of n when it contains the marker.
func (c *Converter) highlightClass(n *html.Node) (string, bool) {
	for _, attr := range n.Attr {
		if attr.Namespace == "" && attr.Key == "class" && strings.Contains(attr.Val, c.prefix) {
			return attr.Val, true
		}
	}
	return "", false
}

// pushChildren pushes the children of n in reverse so they pop in document order.
func pushChildren(stack []frame, n *html.Node, target *model.Node) []frame {
	for child := n.LastChild; child != nil; child = child.PrevSibling {
		stack = append(stack, frame{source: child, target: target})
	}
	return stack
}

func firstElementChild(n *html.Node) *html.Node {
	if n == nil {
		return nil
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.ElementNode {
			return child
		}
	}
	return nil
}

// ParseRendered parses highlighter output as an HTML fragment in a <div>
// context. The returned synthetic root holds the parsed nodes as children.
func ParseRendered(r io.Reader) (*html.Node, error) {
	context := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}

	nodes, err := html.ParseFragment(r, context)
	if err != nil {
		return nil, err
	}

	root := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		root.AppendChild(n)
	}
	return root, nil
}
