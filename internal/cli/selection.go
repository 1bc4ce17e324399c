package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/codeblock/pkg/model"
)

// ErrInvalidSelection is returned when a command cannot build a selection from
// its input and flags.
var ErrInvalidSelection = errors.New("invalid selection")

// lineRange is a 1-based, inclusive range of code block lines. A zero last
// line extends to the end of the block.
type lineRange struct {
	first int
	last  int
}

// parseLineRange reads "N", "N-M", "N-" or "" (all lines).
func parseLineRange(spec string) (lineRange, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return lineRange{first: 1}, nil
	}

	firstPart, lastPart, isRange := strings.Cut(spec, "-")

	first, err := strconv.Atoi(firstPart)
	if err != nil || first < 1 {
		return lineRange{}, fmt.Errorf("%w: bad first line in %q", ErrInvalidSelection, spec)
	}

	if !isRange {
		return lineRange{first: first, last: first}, nil
	}
	if lastPart == "" {
		return lineRange{first: first}, nil
	}

	last, err := strconv.Atoi(lastPart)
	if err != nil || last < first {
		return lineRange{}, fmt.Errorf("%w: bad last line in %q", ErrInvalidSelection, spec)
	}
	return lineRange{first: first, last: last}, nil
}

// codeBlockAt returns the n-th (1-based) code block of root.
func codeBlockAt(root *model.Node, n int) (*model.Node, error) {
	blocks := model.FindByKind(root, model.NodeCodeBlock)
	if n < 1 || n > len(blocks) {
		return nil, fmt.Errorf("%w: code block %d requested, document has %d", ErrInvalidSelection, n, len(blocks))
	}
	return blocks[n-1], nil
}

// lineOffsets returns the start and end offset of every line of block.
func lineOffsets(block *model.Node) [][2]int {
	var offsets [][2]int

	start := 0
	for child := block.FirstChild; child != nil; child = child.Next {
		if child.Kind == model.NodeSoftBreak {
			offsets = append(offsets, [2]int{start, child.StartOffset()})
			start = child.EndOffset()
		}
	}
	return append(offsets, [2]int{start, block.MaxOffset()})
}

// selectLines selects the given lines of block, from the start of the first
// line to the end of the last.
func selectLines(block *model.Node, lines lineRange) (model.Selection, error) {
	offsets := lineOffsets(block)

	last := lines.last
	if last == 0 {
		last = len(offsets)
	}
	if lines.first > len(offsets) || last > len(offsets) {
		return model.Selection{}, fmt.Errorf("%w: lines %d-%d requested, block has %d",
			ErrInvalidSelection, lines.first, last, len(offsets))
	}

	return model.NewSelection(
		model.PositionAt(block, offsets[lines.first-1][0]),
		model.PositionAt(block, offsets[last-1][1]),
	), nil
}
