package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/codeblock/pkg/model"
)

func TestInsertText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		offset int
		text   string
		want   string
	}{
		{"inside text", "<codeBlock>foo</codeBlock>", 1, "\t", "<codeBlock>f\too</codeBlock>"},
		{"start of text", "<codeBlock>foo</codeBlock>", 0, "  ", "<codeBlock>  foo</codeBlock>"},
		{"end of text", "<codeBlock>foo</codeBlock>", 3, "!", "<codeBlock>foo!</codeBlock>"},
		{
			"after break",
			"<codeBlock>a<softBreak></softBreak>b</codeBlock>",
			2, "\t",
			"<codeBlock>a<softBreak></softBreak>\tb</codeBlock>",
		},
		{
			"between breaks",
			"<codeBlock><softBreak></softBreak><softBreak></softBreak></codeBlock>",
			1, "x",
			"<codeBlock><softBreak></softBreak>x<softBreak></softBreak></codeBlock>",
		},
		{"empty block", "<codeBlock></codeBlock>", 0, "x", "<codeBlock>x</codeBlock>"},
		{"multibyte runes", "<codeBlock>héllo</codeBlock>", 2, "_", "<codeBlock>hé_llo</codeBlock>"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			root, _, err := model.Parse(testCase.input)
			require.NoError(t, err)

			pos := model.PositionAt(root.FirstChild, testCase.offset)
			require.NoError(t, model.InsertText(pos, testCase.text))
			assert.Equal(t, testCase.want, model.Stringify(root))
		})
	}
}

func TestInsertTextInvalidPosition(t *testing.T) {
	t.Parallel()

	code := model.NewCodeBlock("")
	model.AppendText(code, "ab")

	err := model.InsertText(model.PositionAt(code, 5), "x")
	assert.ErrorIs(t, err, model.ErrInvalidPosition)
}

func TestRemoveText(t *testing.T) {
	t.Parallel()

	root, _, err := model.Parse("<codeBlock>\t\tfoo<softBreak></softBreak>\tbar</codeBlock>")
	require.NoError(t, err)
	code := root.FirstChild

	require.NoError(t, model.RemoveText(model.PositionAt(code, 6), 1))
	assert.Equal(t, "<codeBlock>\t\tfoo<softBreak></softBreak>bar</codeBlock>", model.Stringify(root))

	require.NoError(t, model.RemoveText(model.PositionAt(code, 1), 1))
	assert.Equal(t, "<codeBlock>\tfoo<softBreak></softBreak>bar</codeBlock>", model.Stringify(root))

	err = model.RemoveText(model.PositionAt(code, 3), 3)
	assert.ErrorIs(t, err, model.ErrInvalidPosition, "removal may not cross a break")
}

func TestRemoveTextDetachesEmptyNode(t *testing.T) {
	t.Parallel()

	root, _, err := model.Parse("<codeBlock>a<softBreak></softBreak>\t</codeBlock>")
	require.NoError(t, err)
	code := root.FirstChild

	require.NoError(t, model.RemoveText(model.PositionAt(code, 2), 1))
	assert.Equal(t, 2, code.ChildCount())
}

func TestTextBefore(t *testing.T) {
	t.Parallel()

	root, _, err := model.Parse("<codeBlock>ab\t\tc</codeBlock>")
	require.NoError(t, err)
	code := root.FirstChild

	assert.Equal(t, "\t", model.TextBefore(model.PositionAt(code, 4), 1))
	assert.Equal(t, "ab\t\t", model.TextBefore(model.PositionAt(code, 4), 10))
	assert.Empty(t, model.TextBefore(model.PositionAt(code, 0), 1))
}
