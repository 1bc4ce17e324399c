package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/codeblock/pkg/model"
)

// sourceIndent aligns source lines below position headers.
const sourceIndent = "    "

// LineColumn returns the 1-based line and column (in runes) of pos inside
// its parent. Soft breaks end lines.
func LineColumn(pos model.Position) (line, column int) {
	line = 1
	lineStart := 0

	if pos.Parent == nil {
		return line, pos.Offset + 1
	}

	for child := pos.Parent.FirstChild; child != nil; child = child.Next {
		if child.StartOffset() >= pos.Offset {
			break
		}
		if child.Kind == model.NodeSoftBreak {
			line++
			lineStart = child.EndOffset()
		}
	}

	return line, pos.Offset - lineStart + 1
}

// LineText returns the text of the given 1-based line of parent.
func LineText(parent *model.Node, line int) string {
	var builder strings.Builder

	current := 1
	for child := parent.FirstChild; child != nil; child = child.Next {
		if child.Kind == model.NodeSoftBreak {
			current++
			if current > line {
				break
			}
			continue
		}
		if current == line {
			builder.WriteString(child.TextContent())
		}
	}

	return builder.String()
}

// FormatPosition renders a position header with its line and column,
// followed by the source line and a caret under the column.
func (s *Styles) FormatPosition(pos model.Position) string {
	line, column := LineColumn(pos)

	var builder strings.Builder
	fmt.Fprintf(&builder, "%s %s\n",
		s.Position.Render(fmt.Sprintf("%d:%d", line, column)),
		s.Dim.Render(pos.String()),
	)

	if pos.Parent == nil {
		return builder.String()
	}

	builder.WriteString(sourceIndent + s.Text.Render(LineText(pos.Parent, line)) + "\n")
	builder.WriteString(sourceIndent + strings.Repeat(" ", column-1) + s.Caret.Render("^") + "\n")

	return builder.String()
}

// FormatPositions renders each position in order.
func (s *Styles) FormatPositions(positions []model.Position) string {
	if len(positions) == 0 {
		return s.Dim.Render("no positions") + "\n"
	}

	var builder strings.Builder
	for _, pos := range positions {
		builder.WriteString(s.FormatPosition(pos))
	}
	return builder.String()
}
