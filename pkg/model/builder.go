package model

// NewNode creates a new node of the specified kind.
// The node has no parent or children.
func NewNode(kind NodeKind) *Node {
	node := &Node{Kind: kind}
	if kind != NodeText {
		node.Attrs = make(map[string]string)
	}
	return node
}

// NewFragment creates a new, empty document fragment.
func NewFragment() *Node {
	return NewNode(NodeFragment)
}

// NewRoot creates a new document root.
func NewRoot() *Node {
	return NewNode(NodeRoot)
}

// NewText creates a detached text node.
func NewText(data string) *Node {
	return &Node{Kind: NodeText, Data: data}
}

// NewElement creates a detached element with the given attributes.
// The attribute map is copied.
func NewElement(kind NodeKind, attrs map[string]string) *Node {
	node := NewNode(kind)
	for k, v := range attrs {
		node.Attrs[k] = v
	}
	return node
}

// NewCodeBlock creates a detached code block for the given language.
func NewCodeBlock(language string) *Node {
	node := NewNode(NodeCodeBlock)
	if language != "" {
		node.Attrs[AttrLanguage] = language
	}
	return node
}

// NewHighlight creates a detached highlight span carrying the class string.
func NewHighlight(class string) *Node {
	node := NewNode(NodeHighlight)
	node.Attrs[AttrClass] = class
	return node
}

// AppendChild appends a child node to a parent.
// It maintains the parent/child/sibling relationships correctly.
func AppendChild(parent, child *Node) {
	if parent == nil || child == nil {
		return
	}

	// Remove from previous parent if any.
	if child.Parent != nil {
		RemoveChild(child.Parent, child)
	}

	child.Parent = parent
	child.Prev = parent.LastChild
	child.Next = nil

	if parent.LastChild != nil {
		parent.LastChild.Next = child
	} else {
		parent.FirstChild = child
	}

	parent.LastChild = child
}

// InsertBefore inserts newNode before sibling.
// sibling must have a parent.
func InsertBefore(sibling, newNode *Node) {
	if sibling == nil || newNode == nil || sibling.Parent == nil {
		return
	}

	parent := sibling.Parent

	if newNode.Parent != nil {
		RemoveChild(newNode.Parent, newNode)
	}

	newNode.Parent = parent
	newNode.Prev = sibling.Prev
	newNode.Next = sibling

	if sibling.Prev != nil {
		sibling.Prev.Next = newNode
	} else {
		parent.FirstChild = newNode
	}

	sibling.Prev = newNode
}

// RemoveChild removes a child from its parent.
func RemoveChild(parent, child *Node) {
	if parent == nil || child == nil || child.Parent != parent {
		return
	}

	if child.Prev != nil {
		child.Prev.Next = child.Next
	} else {
		parent.FirstChild = child.Next
	}

	if child.Next != nil {
		child.Next.Prev = child.Prev
	} else {
		parent.LastChild = child.Prev
	}

	child.Parent = nil
	child.Prev = nil
	child.Next = nil
}

// AppendFragment moves every child of fragment to the end of parent.
// The fragment is left empty.
func AppendFragment(parent, fragment *Node) {
	if parent == nil || fragment == nil {
		return
	}

	for child := fragment.FirstChild; child != nil; {
		next := child.Next
		AppendChild(parent, child)
		child = next
	}
}
