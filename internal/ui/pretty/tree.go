package pretty

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/yaklabco/codeblock/pkg/model"
)

// treeIndent is the indentation added per tree level.
const treeIndent = "  "

// FormatTree renders node and its descendants one per line, children
// indented below their parent. Text nodes are shown quoted. Fragments and
// roots render as their children.
func (s *Styles) FormatTree(node *model.Node) string {
	if node == nil {
		return ""
	}

	var builder strings.Builder
	if node.Kind == model.NodeFragment || node.Kind == model.NodeRoot {
		for child := node.FirstChild; child != nil; child = child.Next {
			s.writeTree(&builder, child, 0)
		}
		return builder.String()
	}

	s.writeTree(&builder, node, 0)
	return builder.String()
}

func (s *Styles) writeTree(builder *strings.Builder, node *model.Node, depth int) {
	builder.WriteString(strings.Repeat(treeIndent, depth))
	builder.WriteString(s.FormatNode(node))
	builder.WriteByte('\n')

	for child := node.FirstChild; child != nil; child = child.Next {
		s.writeTree(builder, child, depth+1)
	}
}

// FormatNode renders a single node without its children.
func (s *Styles) FormatNode(node *model.Node) string {
	switch node.Kind {
	case model.NodeText:
		return s.Text.Render(strconv.Quote(node.Data))
	case model.NodeSoftBreak:
		return s.Break.Render(node.Name())
	}

	tag := s.Tag
	if node.Kind == model.NodeHighlight {
		tag = s.Highlight
	}

	var builder strings.Builder
	builder.WriteString(tag.Render(node.Name()))

	keys := make([]string, 0, len(node.Attrs))
	for key := range node.Attrs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		fmt.Fprintf(&builder, " %s=%s",
			s.AttrName.Render(key),
			s.AttrValue.Render(strconv.Quote(node.Attrs[key])),
		)
	}

	return builder.String()
}
