package model

import "unicode/utf8"

// NodeKind classifies the type of a model node.
type NodeKind uint16

// Node kinds for the document model.
const (
	// NodeFragment is a detached, unrooted staging container.
	NodeFragment NodeKind = iota

	// NodeRoot is the root of a live document.
	NodeRoot

	// Block-level elements.
	NodeParagraph
	NodeCodeBlock

	// Inline-level elements.
	NodeContainer
	NodeHighlight
	NodeSoftBreak

	// NodeText is a run of characters.
	NodeText
)

// String returns the element name for the kind.
func (k NodeKind) String() string {
	return (&Node{Kind: k}).Name()
}

// Element names used when stringifying.
const (
	NameRoot      = "$root"
	NameFragment  = "$fragment"
	NameParagraph = "paragraph"
	NameCodeBlock = "codeBlock"
	NameContainer = "container"
	NameHighlight = "hljs"
	NameSoftBreak = "softBreak"
)

// Attribute keys.
const (
	AttrClass    = "class"
	AttrLanguage = "language"
)

// Node represents a single node in the document model.
// Nodes form a tree structure with parent/child/sibling relationships.
type Node struct {
	// Kind identifies what type of node this is.
	Kind NodeKind

	// Tree structure pointers.
	Parent     *Node
	FirstChild *Node
	LastChild  *Node
	Prev       *Node
	Next       *Node

	// Attrs holds element attributes. Nil for text nodes.
	Attrs map[string]string

	// Data holds the characters of a NodeText.
	Data string
}

// Name returns the element name of the node, or "$text" for text nodes.
func (n *Node) Name() string {
	switch n.Kind {
	case NodeFragment:
		return NameFragment
	case NodeRoot:
		return NameRoot
	case NodeParagraph:
		return NameParagraph
	case NodeCodeBlock:
		return NameCodeBlock
	case NodeContainer:
		return NameContainer
	case NodeHighlight:
		return NameHighlight
	case NodeSoftBreak:
		return NameSoftBreak
	default:
		return "$text"
	}
}

// IsText returns true if this is a text node.
func (n *Node) IsText() bool {
	return n != nil && n.Kind == NodeText
}

// IsBlock returns true if this is a block-level element.
func (n *Node) IsBlock() bool {
	switch n.Kind {
	case NodeParagraph, NodeCodeBlock:
		return true
	default:
		return false
	}
}

// IsCodeBlock returns true if this is a code block element.
func (n *Node) IsCodeBlock() bool {
	return n != nil && n.Kind == NodeCodeBlock
}

// Attr returns the value of the named attribute and whether it is set.
func (n *Node) Attr(name string) (string, bool) {
	if n.Attrs == nil {
		return "", false
	}
	v, ok := n.Attrs[name]
	return v, ok
}

// Size returns the number of offsets the node occupies in its parent.
// Text nodes occupy one offset per rune; elements occupy exactly one.
func (n *Node) Size() int {
	if n.Kind == NodeText {
		return utf8.RuneCountInString(n.Data)
	}
	return 1
}

// MaxOffset returns the offset just after the last child.
func (n *Node) MaxOffset() int {
	total := 0
	for child := n.FirstChild; child != nil; child = child.Next {
		total += child.Size()
	}
	return total
}

// StartOffset returns the offset at which this node begins in its parent.
// Returns 0 for detached nodes.
func (n *Node) StartOffset() int {
	offset := 0
	for sibling := n.Prev; sibling != nil; sibling = sibling.Prev {
		offset += sibling.Size()
	}
	return offset
}

// EndOffset returns the offset just after this node in its parent.
func (n *Node) EndOffset() int {
	return n.StartOffset() + n.Size()
}

// Index returns the position of this node among its siblings.
func (n *Node) Index() int {
	idx := 0
	for sibling := n.Prev; sibling != nil; sibling = sibling.Prev {
		idx++
	}
	return idx
}

// Root returns the topmost ancestor of the node (the node itself when detached).
func (n *Node) Root() *Node {
	node := n
	for node.Parent != nil {
		node = node.Parent
	}
	return node
}

// HasChildren returns true if this node has any children.
func (n *Node) HasChildren() bool {
	return n.FirstChild != nil
}

// ChildCount returns the number of direct children.
func (n *Node) ChildCount() int {
	count := 0
	for child := n.FirstChild; child != nil; child = child.Next {
		count++
	}
	return count
}

// Children returns a slice of all direct children.
func (n *Node) Children() []*Node {
	var children []*Node
	for child := n.FirstChild; child != nil; child = child.Next {
		children = append(children, child)
	}
	return children
}

// ChildAtOffset returns the child occupying offset and the child's start offset.
// Returns nil when offset is at or past MaxOffset.
func (n *Node) ChildAtOffset(offset int) (*Node, int) {
	start := 0
	for child := n.FirstChild; child != nil; child = child.Next {
		end := start + child.Size()
		if offset >= start && offset < end {
			return child, start
		}
		start = end
	}
	return nil, start
}

// TextContent returns the concatenated data of all descendant text nodes.
func (n *Node) TextContent() string {
	if n.Kind == NodeText {
		return n.Data
	}

	var out []byte
	//nolint:errcheck,revive // Walk only returns nil errors in this usage
	Walk(n, func(node *Node) error {
		if node.Kind == NodeText {
			out = append(out, node.Data...)
		}
		return nil
	})
	return string(out)
}
