package model

import (
	"errors"
	"fmt"
)

// ErrInvalidPosition is returned when a write targets a position that does not
// exist in the tree, usually because the position went stale after an edit.
var ErrInvalidPosition = errors.New("invalid position")

// AppendText appends data to parent, merging it into a trailing text child.
func AppendText(parent *Node, data string) {
	if parent == nil || data == "" {
		return
	}
	if last := parent.LastChild; last != nil && last.Kind == NodeText {
		last.Data += data
		return
	}
	AppendChild(parent, NewText(data))
}

// AppendElement creates an element of kind and appends it to parent.
func AppendElement(parent *Node, kind NodeKind, attrs map[string]string) *Node {
	element := NewElement(kind, attrs)
	AppendChild(parent, element)
	return element
}

// InsertText inserts text at pos. Text adjacent to an existing text node is
// merged into it.
func InsertText(pos Position, text string) error {
	if !pos.IsValid() {
		return fmt.Errorf("insert text at %s: %w", pos, ErrInvalidPosition)
	}
	if text == "" {
		return nil
	}

	parent := pos.Parent
	start := 0
	for child := parent.FirstChild; child != nil; child = child.Next {
		end := start + child.Size()
		if child.Kind == NodeText && start <= pos.Offset && pos.Offset <= end {
			child.Data = spliceRunes(child.Data, pos.Offset-start, 0, text)
			return nil
		}
		if start >= pos.Offset {
			InsertBefore(child, NewText(text))
			return nil
		}
		start = end
	}

	AppendChild(parent, NewText(text))
	return nil
}

// RemoveText removes count characters starting at pos. The removed span must
// lie within a single text node. A text node left empty is detached.
func RemoveText(pos Position, count int) error {
	if !pos.IsValid() || count < 0 {
		return fmt.Errorf("remove text at %s: %w", pos, ErrInvalidPosition)
	}
	if count == 0 {
		return nil
	}

	parent := pos.Parent
	start := 0
	for child := parent.FirstChild; child != nil; child = child.Next {
		end := start + child.Size()
		if child.Kind == NodeText && start <= pos.Offset && pos.Offset+count <= end {
			child.Data = spliceRunes(child.Data, pos.Offset-start, count, "")
			if child.Data == "" {
				RemoveChild(parent, child)
			}
			return nil
		}
		start = end
	}

	return fmt.Errorf("remove %d characters at %s: %w", count, pos, ErrInvalidPosition)
}

// TextBefore returns up to n characters of the text node ending at pos.
// Returns "" when no text node ends at or contains pos.
func TextBefore(pos Position, n int) string {
	if pos.Parent == nil || n <= 0 {
		return ""
	}

	start := 0
	for child := pos.Parent.FirstChild; child != nil; child = child.Next {
		end := start + child.Size()
		if child.Kind == NodeText && start < pos.Offset && pos.Offset <= end {
			runes := []rune(child.Data)
			local := pos.Offset - start
			from := max(0, local-n)
			return string(runes[from:local])
		}
		start = end
	}
	return ""
}

func spliceRunes(data string, at, remove int, insert string) string {
	runes := []rune(data)
	out := make([]rune, 0, len(runes)-remove+len(insert))
	out = append(out, runes[:at]...)
	out = append(out, []rune(insert)...)
	out = append(out, runes[at+remove:]...)
	return string(out)
}
