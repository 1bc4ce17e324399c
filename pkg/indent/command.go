package indent

import (
	"fmt"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/yaklabco/codeblock/pkg/model"
)

// DefaultSequence is the text one indentation step inserts.
const DefaultSequence = "\t"

// Command edits code block lines touched by a selection.
type Command struct {
	sequence string
}

// NewCommand creates a Command inserting or removing sequence per step.
// An empty sequence falls back to DefaultSequence.
func NewCommand(sequence string) *Command {
	if sequence == "" {
		sequence = DefaultSequence
	}
	return &Command{sequence: sequence}
}

// Sequence returns the indentation step.
func (c *Command) Sequence() string {
	return c.sequence
}

// Indent inserts one indentation step at every target position of sel and
// returns the number of edits made. Selections that do not start in a code
// block are left alone.
func (c *Command) Indent(sel model.Selection) (int, error) {
	if !InCodeBlock(sel) {
		return 0, nil
	}

	applied := 0
	for _, pos := range c.targets(sel) {
		if err := model.InsertText(pos, c.sequence); err != nil {
			return applied, fmt.Errorf("indent line at %s: %w", pos, err)
		}
		applied++
	}
	return applied, nil
}

// Outdent removes one indentation step from the end of the indentation of
// every target line and returns the number of edits made. Lines whose
// indentation does not end with the step are left alone.
func (c *Command) Outdent(sel model.Selection) (int, error) {
	if !InCodeBlock(sel) {
		return 0, nil
	}

	stepLen := utf8.RuneCountInString(c.sequence)
	applied := 0
	for _, pos := range c.targets(sel) {
		start := lineStart(pos)
		indentation, _ := lineIndentation(pos.Parent, start)
		if !strings.HasSuffix(indentation, c.sequence) {
			continue
		}

		at := model.PositionAt(pos.Parent, start+utf8.RuneCountInString(indentation)-stepLen)
		if err := model.RemoveText(at, stepLen); err != nil {
			return applied, fmt.Errorf("outdent line at %s: %w", pos, err)
		}
		applied++
	}
	return applied, nil
}

// targets combines the resolver output with the line the range starts on.
// The result stays in reverse document order and holds every line once.
func (c *Command) targets(sel model.Selection) []model.Position {
	positions := Positions(sel)
	if sel.IsCollapsed() {
		return positions
	}

	first, ok := firstLinePosition(sel.FirstRange().Start)
	if !ok || slices.ContainsFunc(positions, first.IsEqual) {
		return positions
	}

	at := slices.IndexFunc(positions, func(pos model.Position) bool {
		return pos.IsBefore(first)
	})
	if at < 0 {
		return append(positions, first)
	}
	return slices.Insert(positions, at, first)
}

// firstLinePosition returns the position after the indentation of the line
// containing pos, if pos is inside a code block and the line has content.
// A position inside an inline element of the code block is lifted to the
// code block first.
func firstLinePosition(pos model.Position) (model.Position, bool) {
	for pos.Parent != nil && !pos.Parent.IsCodeBlock() {
		if pos.Parent.IsBlock() || pos.Parent.Parent == nil {
			return model.Position{}, false
		}
		pos = model.PositionBefore(pos.Parent)
	}
	if pos.Parent == nil {
		return model.Position{}, false
	}

	start := lineStart(pos)
	indentation, hasContent := lineIndentation(pos.Parent, start)
	if !hasContent {
		return model.Position{}, false
	}
	return model.PositionAt(pos.Parent, start+utf8.RuneCountInString(indentation)), true
}

// lineStart returns the offset in pos.Parent where the line holding pos
// begins: just after the closest preceding soft break or line feed.
func lineStart(pos model.Position) int {
	start := 0
	offset := 0
	for child := pos.Parent.FirstChild; child != nil; child = child.Next {
		end := offset + child.Size()
		if offset >= pos.Offset {
			break
		}

		switch child.Kind {
		case model.NodeSoftBreak:
			start = end
		case model.NodeText:
			runes := []rune(child.Data)[:min(end, pos.Offset)-offset]
			for i := len(runes) - 1; i >= 0; i-- {
				if runes[i] == '\n' {
					start = offset + i + 1
					break
				}
			}
		default:
		}
		offset = end
	}
	return start
}

// lineIndentation returns the run of indentation characters starting at
// offset in parent and whether content follows it on the same line. An inline
// element such as a highlight span counts as content.
func lineIndentation(parent *model.Node, offset int) (string, bool) {
	child, childStart := parent.ChildAtOffset(offset)
	if child == nil || child.Kind == model.NodeSoftBreak {
		return "", false
	}
	if child.Kind != model.NodeText {
		return "", true
	}

	rest := []rune(child.Data)[offset-childStart:]
	n := 0
	for n < len(rest) && isIndentation(rest[n]) {
		n++
	}

	if n == len(rest) {
		next := child.Next
		return string(rest), next != nil && next.Kind != model.NodeText && next.Kind != model.NodeSoftBreak
	}
	return string(rest[:n]), !isSpace(rest[n])
}

// isSpace matches the whitespace class of the line patterns.
func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ', '\uFEFF':
		return true
	default:
		return unicode.Is(unicode.Z, r)
	}
}

// isIndentation reports whitespace that does not end a line.
func isIndentation(r rune) bool {
	return r != '\n' && r != '\r' && r != '\u2028' && r != '\u2029' && isSpace(r)
}
