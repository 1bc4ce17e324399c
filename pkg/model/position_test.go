package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/codeblock/pkg/model"
)

func TestPositionCompare(t *testing.T) {
	t.Parallel()

	root, _, err := model.Parse(`<paragraph>ab</paragraph><codeBlock>cd</codeBlock>`)
	require.NoError(t, err)

	para := root.FirstChild
	code := para.Next

	beforeCode := model.PositionBefore(code)
	insideCode := model.PositionAt(code, 0)
	afterCode := model.PositionAfter(code)
	insidePara := model.PositionAt(para, 2)

	tests := []struct {
		name string
		a, b model.Position
		want int
	}{
		{"equal", insideCode, model.PositionAt(code, 0), 0},
		{"paragraph before code block", insidePara, insideCode, -1},
		{"before element sorts before its content", beforeCode, insideCode, -1},
		{"content sorts before position after element", insideCode, afterCode, -1},
		{"later offset", model.PositionAt(code, 2), insideCode, 1},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, testCase.want, testCase.a.Compare(testCase.b))
		})
	}
}

func TestPositionTextNode(t *testing.T) {
	t.Parallel()

	root, _, err := model.Parse(`<codeBlock>foo<softBreak></softBreak>bar</codeBlock>`)
	require.NoError(t, err)
	code := root.FirstChild

	assert.Nil(t, model.PositionAt(code, 0).TextNode(), "boundary before text")
	assert.Equal(t, "foo", model.PositionAt(code, 1).TextNode().Data)
	assert.Nil(t, model.PositionAt(code, 3).TextNode(), "boundary before break")
	assert.Equal(t, "bar", model.PositionAt(code, 5).TextNode().Data)
}

func TestPositionIsValid(t *testing.T) {
	t.Parallel()

	code := model.NewCodeBlock("")
	model.AppendText(code, "abc")

	assert.True(t, model.PositionAt(code, 3).IsValid())
	assert.False(t, model.PositionAt(code, 4).IsValid())
	assert.False(t, model.PositionAt(code, -1).IsValid())
	assert.False(t, model.Position{}.IsValid())
}

func TestPositionPath(t *testing.T) {
	t.Parallel()

	root, _, err := model.Parse(`<paragraph>x</paragraph><codeBlock>abc</codeBlock>`)
	require.NoError(t, err)

	pos := model.PositionAt(root.LastChild, 2)
	assert.Equal(t, []int{1, 2}, pos.Path())
	assert.Equal(t, "[1 2]", pos.String())

	nested, _, err := model.Parse(`<paragraph>x</paragraph><codeBlock>ab<hljs class="k">cd</hljs></codeBlock>`)
	require.NoError(t, err)

	span := nested.LastChild.LastChild
	assert.Equal(t, []int{1, 2, 1}, model.PositionAt(span, 1).Path(), "root first")
}
