package model

// Range is an ordered span between two positions in the same tree.
type Range struct {
	Start Position
	End   Position
}

// NewRange returns the range between a and b, ordering the ends.
func NewRange(a, b Position) Range {
	if b.IsBefore(a) {
		a, b = b, a
	}
	return Range{Start: a, End: b}
}

// IsCollapsed returns true if the range has no extent.
func (r Range) IsCollapsed() bool {
	return r.Start.IsEqual(r.End)
}

// Item is a single step of a forward range walk.
type Item struct {
	// Node is a text node or the element being entered.
	Node *Node

	// Block is the nearest block-level ancestor of Node, or nil.
	Block *Node

	// StartOffset and EndOffset clip a text node to the range, in runes
	// relative to the text node. Both are zero for elements.
	StartOffset int
	EndOffset   int
}

// IsText returns true if the item is a (possibly clipped) text node.
func (it Item) IsText() bool {
	return it.Node.Kind == NodeText
}

// Parent returns the parent of the item's node.
func (it Item) Parent() *Node {
	return it.Node.Parent
}

// Data returns the clipped characters of a text item.
func (it Item) Data() string {
	if !it.IsText() {
		return ""
	}
	runes := []rune(it.Node.Data)
	return string(runes[it.StartOffset:it.EndOffset])
}

// ItemFunc is the callback for Range.Walk.
// Return a non-nil error to stop the walk.
type ItemFunc func(it Item) error

// Walk visits, in document order, every text node and every element start
// contained in the range. Element ends are not reported. Zero-length text
// nodes are skipped.
func (r Range) Walk(fn ItemFunc) error {
	if r.Start.Parent == nil || r.End.Parent == nil {
		return nil
	}
	return r.walkChildren(r.Start.Parent.Root(), fn)
}

func (r Range) walkChildren(parent *Node, fn ItemFunc) error {
	offset := 0
	for child := parent.FirstChild; child != nil; child = child.Next {
		start := offset
		end := offset + child.Size()
		offset = end

		before := Position{Parent: parent, Offset: start}
		after := Position{Parent: parent, Offset: end}

		if !before.IsBefore(r.End) {
			return nil
		}
		if !r.Start.IsBefore(after) {
			continue
		}

		if child.Kind == NodeText {
			if start == end {
				continue
			}
			item := Item{
				Node:        child,
				Block:       BlockOf(child),
				StartOffset: 0,
				EndOffset:   end - start,
			}
			if r.Start.Parent == parent && r.Start.Offset > start {
				item.StartOffset = r.Start.Offset - start
			}
			if r.End.Parent == parent && r.End.Offset < end {
				item.EndOffset = r.End.Offset - start
			}
			if err := fn(item); err != nil {
				return err
			}
			continue
		}

		if !before.IsBefore(r.Start) {
			if err := fn(Item{Node: child, Block: BlockOf(child)}); err != nil {
				return err
			}
		}

		if err := r.walkChildren(child, fn); err != nil {
			return err
		}
	}

	return nil
}

// BlockOf returns the nearest block-level ancestor of node, including node
// itself, or nil.
func BlockOf(node *Node) *Node {
	for n := node; n != nil; n = n.Parent {
		if n.IsBlock() {
			return n
		}
	}
	return nil
}

// Selection is an anchor/focus pair over a document.
type Selection struct {
	Anchor Position
	Focus  Position
}

// NewSelection creates a selection from anchor to focus.
func NewSelection(anchor, focus Position) Selection {
	return Selection{Anchor: anchor, Focus: focus}
}

// CollapsedAt creates a caret selection at pos.
func CollapsedAt(pos Position) Selection {
	return Selection{Anchor: pos, Focus: pos}
}

// IsCollapsed returns true if anchor and focus coincide.
func (s Selection) IsCollapsed() bool {
	return s.Anchor.IsEqual(s.Focus)
}

// FirstRange returns the selection as an ordered range.
func (s Selection) FirstRange() Range {
	return NewRange(s.Anchor, s.Focus)
}

// FirstBlock returns the first block touched by the selection, or nil.
func (s Selection) FirstBlock() *Node {
	rng := s.FirstRange()
	if block := BlockOf(rng.Start.Parent); block != nil {
		return block
	}

	var found *Node
	//nolint:errcheck,revive // errStopWalk is expected and intentionally ignored
	rng.Walk(func(it Item) error {
		if it.Node.IsBlock() {
			found = it.Node
			return errStopWalk
		}
		return nil
	})
	return found
}
