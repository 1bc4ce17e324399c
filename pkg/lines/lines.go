// Package lines converts between raw multi-line strings and the code block
// line representation: text runs separated by soft break elements.
package lines

import (
	"regexp"
	"strings"

	"github.com/yaklabco/codeblock/pkg/model"
)

var leadingWhitespace = regexp.MustCompile(`^\s*`)

// ToFragment splits text on "\n" and returns a fragment with one text node per
// line and a soft break between consecutive lines. Empty lines become empty
// text nodes, so N line feeds always give N+1 text nodes and N breaks.
func ToFragment(text string) *model.Node {
	fragment := model.NewFragment()

	segments := strings.Split(text, "\n")
	for i, segment := range segments {
		model.AppendChild(fragment, model.NewText(segment))

		if i < len(segments)-1 {
			model.AppendElement(fragment, model.NodeSoftBreak, nil)
		}
	}

	return fragment
}

// Join is the inverse of ToFragment: it concatenates the text of every child
// and writes "\n" for every soft break.
func Join(fragment *model.Node) string {
	if fragment == nil {
		return ""
	}

	var sb strings.Builder
	for child := fragment.FirstChild; child != nil; child = child.Next {
		switch child.Kind {
		case model.NodeSoftBreak:
			sb.WriteByte('\n')
		default:
			sb.WriteString(child.TextContent())
		}
	}
	return sb.String()
}

// LeadingWhitespace returns the whitespace that precedes other characters in a
// text node: the indentation of a code block line.
func LeadingWhitespace(text *model.Node) string {
	if text == nil || text.Kind != model.NodeText {
		return ""
	}
	return leadingWhitespace.FindString(text.Data)
}
