package markdown

import (
	"bytes"
	"strings"

	"github.com/yaklabco/codeblock/pkg/lines"
	"github.com/yaklabco/codeblock/pkg/model"
)

const minFenceLength = 3

// Render writes root back to Markdown. Code blocks are emitted as backtick
// fences carrying their language; paragraphs are emitted as their text.
// Blocks are separated by one blank line.
func Render(root *model.Node) []byte {
	var buf bytes.Buffer

	first := true
	for child := root.FirstChild; child != nil; child = child.Next {
		if !first {
			buf.WriteByte('\n')
		}
		first = false

		if child.IsCodeBlock() {
			writeCodeBlock(&buf, child)
			continue
		}
		buf.WriteString(child.TextContent())
		buf.WriteByte('\n')
	}

	return buf.Bytes()
}

func writeCodeBlock(buf *bytes.Buffer, block *model.Node) {
	content := lines.Join(block)
	fence := strings.Repeat("`", fenceLength(content))
	lang, _ := block.Attr(model.AttrLanguage)

	buf.WriteString(fence)
	buf.WriteString(lang)
	buf.WriteByte('\n')
	if content != "" {
		buf.WriteString(content)
		buf.WriteByte('\n')
	}
	buf.WriteString(fence)
	buf.WriteByte('\n')
}

// fenceLength returns a backtick fence length longer than any backtick run
// at the start of a content line.
func fenceLength(content string) int {
	longest := 0
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimLeft(line, " ")
		run := len(trimmed) - len(strings.TrimLeft(trimmed, "`"))
		longest = max(longest, run)
	}
	return max(minFenceLength, longest+1)
}
