package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/codeblock/pkg/model"
)

type walked struct {
	name  string
	data  string
	block string
}

func walkAll(t *testing.T, rng model.Range) []walked {
	t.Helper()

	var out []walked
	err := rng.Walk(func(it model.Item) error {
		w := walked{name: it.Node.Name(), data: it.Data()}
		if it.Block != nil {
			w.block = it.Block.Name()
		}
		out = append(out, w)
		return nil
	})
	require.NoError(t, err)
	return out
}

func TestRangeWalkWithinBlock(t *testing.T) {
	t.Parallel()

	_, sel, err := model.Parse(`<codeBlock>fo[o<softBreak></softBreak>ba]r</codeBlock>`)
	require.NoError(t, err)
	require.NotNil(t, sel)

	got := walkAll(t, sel.FirstRange())
	assert.Equal(t, []walked{
		{name: "$text", data: "o", block: "codeBlock"},
		{name: "softBreak", block: "codeBlock"},
		{name: "$text", data: "ba", block: "codeBlock"},
	}, got)
}

func TestRangeWalkAcrossBlocks(t *testing.T) {
	t.Parallel()

	_, sel, err := model.Parse(
		`<codeBlock>a[b</codeBlock><paragraph>text</paragraph><codeBlock>c]d</codeBlock><paragraph>after</paragraph>`)
	require.NoError(t, err)

	got := walkAll(t, sel.FirstRange())
	assert.Equal(t, []walked{
		{name: "$text", data: "b", block: "codeBlock"},
		{name: "paragraph", block: "paragraph"},
		{name: "$text", data: "text", block: "paragraph"},
		{name: "codeBlock", block: "codeBlock"},
		{name: "$text", data: "c", block: "codeBlock"},
	}, got)
}

func TestRangeWalkStops(t *testing.T) {
	t.Parallel()

	_, sel, err := model.Parse(`<paragraph>[a</paragraph><paragraph>b]</paragraph>`)
	require.NoError(t, err)

	count := 0
	stop := assert.AnError
	err = sel.FirstRange().Walk(func(model.Item) error {
		count++
		return stop
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 1, count)
}

func TestSelection(t *testing.T) {
	t.Parallel()

	root, sel, err := model.Parse(`<paragraph>x</paragraph><codeBlock>ab[]c</codeBlock>`)
	require.NoError(t, err)
	require.NotNil(t, sel)

	assert.True(t, sel.IsCollapsed())
	assert.Equal(t, root.LastChild, sel.FirstBlock())

	backward := model.NewSelection(model.PositionAt(root.LastChild, 3), model.PositionAt(root.FirstChild, 0))
	assert.False(t, backward.IsCollapsed())
	rng := backward.FirstRange()
	assert.Equal(t, root.FirstChild, rng.Start.Parent)
	assert.Equal(t, root.FirstChild, backward.FirstBlock())
}
