package model

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Stringify renders a node in the compact tag notation used by tests and dumps:
//
//	<codeBlock language="go">foo<softBreak></softBreak>bar</codeBlock>
//
// Fragments and roots render as their children only. Attributes are sorted.
func Stringify(node *Node) string {
	var sb strings.Builder
	writeNode(&sb, node)
	return sb.String()
}

func writeNode(sb *strings.Builder, node *Node) {
	if node == nil {
		return
	}

	switch node.Kind {
	case NodeText:
		sb.WriteString(node.Data)
		return
	case NodeFragment, NodeRoot:
		for child := node.FirstChild; child != nil; child = child.Next {
			writeNode(sb, child)
		}
		return
	}

	sb.WriteByte('<')
	sb.WriteString(node.Name())
	keys := make([]string, 0, len(node.Attrs))
	for k := range node.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(sb, " %s=%q", k, node.Attrs[k])
	}
	sb.WriteByte('>')

	for child := node.FirstChild; child != nil; child = child.Next {
		writeNode(sb, child)
	}

	sb.WriteString("</")
	sb.WriteString(node.Name())
	sb.WriteByte('>')
}

// ErrMalformed is returned by Parse for input it cannot read.
var ErrMalformed = errors.New("malformed model data")

//nolint:gochecknoglobals // Read-only lookup table.
var kindsByName = map[string]NodeKind{
	NameParagraph: NodeParagraph,
	NameCodeBlock: NodeCodeBlock,
	NameContainer: NodeContainer,
	NameHighlight: NodeHighlight,
	NameSoftBreak: NodeSoftBreak,
}

var attrPattern = regexp.MustCompile(`([A-Za-z_][\w-]*)="([^"]*)"`)

// Parse reads the notation produced by Stringify into a new root. The
// characters '[' and ']' mark the selection anchor and focus; "[]" marks a
// collapsed selection. The returned selection is nil when no markers appear.
func Parse(data string) (*Node, *Selection, error) {
	root := NewRoot()
	stack := []*Node{root}

	var anchor, focus *Position

	for i := 0; i < len(data); {
		current := stack[len(stack)-1]

		switch data[i] {
		case '[':
			pos := PositionAt(current, current.MaxOffset())
			anchor = &pos
			i++
		case ']':
			pos := PositionAt(current, current.MaxOffset())
			focus = &pos
			i++
		case '<':
			end := strings.IndexByte(data[i:], '>')
			if end < 0 {
				return nil, nil, fmt.Errorf("%w: unterminated tag at %d", ErrMalformed, i)
			}
			tag := data[i+1 : i+end]
			i += end + 1

			if strings.HasPrefix(tag, "/") {
				name := tag[1:]
				if len(stack) == 1 || current.Name() != name {
					return nil, nil, fmt.Errorf("%w: unexpected closing tag %q", ErrMalformed, name)
				}
				stack = stack[:len(stack)-1]
				continue
			}

			selfClosing := strings.HasSuffix(tag, "/")
			tag = strings.TrimSuffix(tag, "/")
			name, rest, _ := strings.Cut(tag, " ")
			kind, ok := kindsByName[name]
			if !ok {
				return nil, nil, fmt.Errorf("%w: unknown element %q", ErrMalformed, name)
			}

			attrs := make(map[string]string)
			for _, m := range attrPattern.FindAllStringSubmatch(rest, -1) {
				attrs[m[1]] = m[2]
			}

			element := AppendElement(current, kind, attrs)
			if !selfClosing {
				stack = append(stack, element)
			}
		default:
			next := strings.IndexAny(data[i:], "[]<")
			if next < 0 {
				next = len(data) - i
			}
			AppendText(current, data[i:i+next])
			i += next
		}
	}

	if len(stack) != 1 {
		return nil, nil, fmt.Errorf("%w: unclosed element %q", ErrMalformed, stack[len(stack)-1].Name())
	}

	switch {
	case anchor == nil && focus == nil:
		return root, nil, nil
	case anchor == nil || focus == nil:
		return nil, nil, fmt.Errorf("%w: selection needs both '[' and ']'", ErrMalformed)
	}

	sel := NewSelection(*anchor, *focus)
	return root, &sel, nil
}
