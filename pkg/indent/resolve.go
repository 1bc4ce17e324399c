// Package indent resolves where indent and outdent commands act inside code
// blocks and applies those edits.
package indent

import (
	"slices"

	"github.com/yaklabco/codeblock/pkg/model"
)

// Positions returns the positions an indent or outdent command must edit for
// sel, in reverse document order so that applying edits front to back never
// shifts a position still waiting to be used.
//
// A collapsed selection yields its anchor. A range yields, for every code
// block line that starts inside the range, the position right after that
// line's indentation. The line the range starts on is not included; callers
// combine it from the selection itself.
func Positions(sel model.Selection) []model.Position {
	if sel.IsCollapsed() {
		return []model.Position{sel.Anchor}
	}

	var positions []model.Position
	var scanner LineScanner

	//nolint:errcheck,revive // the callback never returns an error
	sel.FirstRange().Walk(func(it model.Item) error {
		parent := it.Parent()
		if !parent.IsCodeBlock() {
			return nil
		}

		switch it.Node.Kind {
		case model.NodeText:
			start := it.Node.StartOffset()
			for _, offset := range scanner.Scan(it.Node.Data) {
				positions = append(positions, model.PositionAt(parent, start+offset))
			}
		case model.NodeSoftBreak:
			scanner.Break()
		default:
		}
		return nil
	})

	slices.Reverse(positions)
	return positions
}

// InCodeBlock reports whether the first block touched by sel is a code block.
func InCodeBlock(sel model.Selection) bool {
	block := sel.FirstBlock()
	return block != nil && block.IsCodeBlock()
}
