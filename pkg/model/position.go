package model

import (
	"fmt"
	"slices"
)

// Position addresses a point between two offsets of a parent node.
// A Position is only valid until the next structural mutation of its tree.
type Position struct {
	// Parent is the element (or fragment/root) the offset is relative to.
	Parent *Node

	// Offset counts runes of text children and one per element child.
	Offset int
}

// PositionAt returns the position at offset inside parent.
func PositionAt(parent *Node, offset int) Position {
	return Position{Parent: parent, Offset: offset}
}

// PositionBefore returns the position directly before node.
func PositionBefore(node *Node) Position {
	return Position{Parent: node.Parent, Offset: node.StartOffset()}
}

// PositionAfter returns the position directly after node.
func PositionAfter(node *Node) Position {
	return Position{Parent: node.Parent, Offset: node.EndOffset()}
}

// IsValid returns true if the position points inside its parent's offset range.
func (p Position) IsValid() bool {
	return p.Parent != nil && p.Offset >= 0 && p.Offset <= p.Parent.MaxOffset()
}

// TextNode returns the text node the position lies strictly inside, or nil
// when the position sits at a child boundary.
func (p Position) TextNode() *Node {
	if p.Parent == nil {
		return nil
	}

	child, start := p.Parent.ChildAtOffset(p.Offset)
	if child == nil || child.Kind != NodeText || p.Offset == start {
		return nil
	}
	return child
}

// Path returns the offsets leading from the tree root to this position.
// The last element is the position's own offset.
func (p Position) Path() []int {
	var path []int
	for node := p.Parent; node != nil && node.Parent != nil; node = node.Parent {
		path = append(path, node.StartOffset())
	}

	// Ancestors were collected leaf first.
	slices.Reverse(path)

	return append(path, p.Offset)
}

// Compare orders two positions in the same tree.
// Returns -1 if p is before other, 1 if after, and 0 if they are equal.
// A position inside an element sorts after the position directly before it.
func (p Position) Compare(other Position) int {
	a := p.Path()
	b := other.Path()

	for i := 0; i < len(a) && i < len(b); i++ {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}

	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

// IsBefore returns true if p is strictly before other.
func (p Position) IsBefore(other Position) bool {
	return p.Compare(other) < 0
}

// IsEqual returns true if both positions address the same point.
func (p Position) IsEqual(other Position) bool {
	return p.Compare(other) == 0
}

// String returns a compact "[path]" form for diagnostics.
func (p Position) String() string {
	return fmt.Sprint(p.Path())
}
