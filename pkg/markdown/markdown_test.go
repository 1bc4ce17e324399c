package markdown_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/codeblock/pkg/lines"
	"github.com/yaklabco/codeblock/pkg/markdown"
	"github.com/yaklabco/codeblock/pkg/model"
)

func TestNewImporterFlavor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		flavor string
		want   string
	}{
		{"commonmark", markdown.FlavorCommonMark, markdown.FlavorCommonMark},
		{"gfm", markdown.FlavorGFM, markdown.FlavorGFM},
		{"invalid defaults to commonmark", "invalid", markdown.FlavorCommonMark},
		{"empty defaults to commonmark", "", markdown.FlavorCommonMark},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			im := markdown.NewImporter(markdown.WithFlavor(testCase.flavor))
			assert.Equal(t, testCase.want, im.Flavor())
		})
	}
}

func TestImportBlocks(t *testing.T) {
	t.Parallel()

	source := "# Title\n\nSome text.\n\n```go\nfunc main() {\n\tfmt.Println(\"hi\")\n}\n```\n\n> quoted\n\n- a\n- b\n"

	root, err := markdown.NewImporter().Import(context.Background(), []byte(source))
	require.NoError(t, err)

	assert.Equal(t,
		`<paragraph># Title</paragraph>`+
			`<paragraph>Some text.</paragraph>`+
			`<codeBlock language="go">func main() {<softBreak></softBreak>`+
			"\tfmt.Println(\"hi\")"+
			`<softBreak></softBreak>}</codeBlock>`+
			`<paragraph>> quoted</paragraph>`+
			`<paragraph>- a</paragraph>`+
			`<paragraph>- b</paragraph>`,
		model.Stringify(root))
}

func TestImportCodeBlockLines(t *testing.T) {
	t.Parallel()

	source := "```python extra words\nif x:\n\n    pass\n```\n"

	root, err := markdown.NewImporter().Import(context.Background(), []byte(source))
	require.NoError(t, err)

	blocks := model.FindByKind(root, model.NodeCodeBlock)
	require.Len(t, blocks, 1)

	lang, _ := blocks[0].Attr(model.AttrLanguage)
	assert.Equal(t, "python", lang, "only the first word of the info string is kept")
	assert.Equal(t, "if x:\n\n    pass", lines.Join(blocks[0]))
	assert.Len(t, model.FindByKind(blocks[0], model.NodeSoftBreak), 2)
}

func TestImportIndentedCodeDetectsLanguage(t *testing.T) {
	t.Parallel()

	source := "Intro.\n\n    package main\n\n    func main() {}\n"

	root, err := markdown.NewImporter().Import(context.Background(), []byte(source))
	require.NoError(t, err)

	blocks := model.FindByKind(root, model.NodeCodeBlock)
	require.Len(t, blocks, 1)

	lang, _ := blocks[0].Attr(model.AttrLanguage)
	assert.Equal(t, "go", lang)
	assert.Equal(t, "package main\n\nfunc main() {}", lines.Join(blocks[0]))
}

func TestImportCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := markdown.NewImporter().Import(ctx, []byte("text"))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRender(t *testing.T) {
	t.Parallel()

	root := model.NewRoot()
	para := model.NewNode(model.NodeParagraph)
	model.AppendText(para, "Hello")
	model.AppendChild(root, para)

	block := model.NewCodeBlock("go")
	model.AppendFragment(block, lines.ToFragment("a\n\tb"))
	model.AppendChild(root, block)

	assert.Equal(t, "Hello\n\n```go\na\n\tb\n```\n", string(markdown.Render(root)))
}

func TestRenderLengthensFence(t *testing.T) {
	t.Parallel()

	root := model.NewRoot()
	block := model.NewCodeBlock("md")
	model.AppendFragment(block, lines.ToFragment("```\nx\n```"))
	model.AppendChild(root, block)

	assert.Equal(t, "````md\n```\nx\n```\n````\n", string(markdown.Render(root)))
}

func TestRenderEmptyCodeBlock(t *testing.T) {
	t.Parallel()

	root := model.NewRoot()
	block := model.NewCodeBlock("plaintext")
	model.AppendFragment(block, lines.ToFragment(""))
	model.AppendChild(root, block)

	assert.Equal(t, "```plaintext\n```\n", string(markdown.Render(root)))
}

func TestImportRenderRoundTrip(t *testing.T) {
	t.Parallel()

	source := "# Title\n\n```go\nx := 1\n\nif x > 0 {\n\ty()\n}\n```\n\nDone.\n"

	root, err := markdown.NewImporter().Import(context.Background(), []byte(source))
	require.NoError(t, err)

	assert.Equal(t, source, string(markdown.Render(root)))
}
