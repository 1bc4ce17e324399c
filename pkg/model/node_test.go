package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/codeblock/pkg/model"
)

func TestNewNode(t *testing.T) {
	t.Parallel()

	node := model.NewNode(model.NodeParagraph)

	if node.Kind != model.NodeParagraph {
		t.Errorf("expected paragraph, got %s", node.Kind)
	}

	if node.Parent != nil || node.FirstChild != nil || node.LastChild != nil {
		t.Error("expected nil parent and children")
	}

	if node.Attrs == nil {
		t.Error("expected element attrs to be initialized")
	}
}

func TestAppendChild(t *testing.T) {
	t.Parallel()

	parent := model.NewRoot()
	child1 := model.NewNode(model.NodeParagraph)
	child2 := model.NewCodeBlock("go")

	model.AppendChild(parent, child1)
	model.AppendChild(parent, child2)

	if parent.FirstChild != child1 || parent.LastChild != child2 {
		t.Error("children not linked correctly")
	}

	if child1.Next != child2 || child2.Prev != child1 {
		t.Error("sibling links not set correctly")
	}

	// Moving a node detaches it from its previous parent.
	other := model.NewFragment()
	model.AppendChild(other, child1)

	if parent.FirstChild != child2 || child2.Prev != nil {
		t.Error("child1 was not detached from its previous parent")
	}
	if child1.Parent != other {
		t.Error("child1 parent not updated")
	}
}

func TestInsertBeforeAndRemove(t *testing.T) {
	t.Parallel()

	parent := model.NewFragment()
	a := model.NewText("a")
	c := model.NewText("c")
	model.AppendChild(parent, a)
	model.AppendChild(parent, c)

	b := model.NewNode(model.NodeSoftBreak)
	model.InsertBefore(c, b)

	assert.Equal(t, []*model.Node{a, b, c}, parent.Children())

	model.RemoveChild(parent, b)
	assert.Equal(t, []*model.Node{a, c}, parent.Children())
	assert.Nil(t, b.Parent)
}

func TestOffsets(t *testing.T) {
	t.Parallel()

	block := model.NewCodeBlock("")
	model.AppendText(block, "héllo")
	brk := model.AppendElement(block, model.NodeSoftBreak, nil)
	model.AppendText(block, "x")

	text := block.FirstChild
	assert.Equal(t, 5, text.Size(), "text size counts runes")
	assert.Equal(t, 5, brk.StartOffset())
	assert.Equal(t, 6, brk.EndOffset())
	assert.Equal(t, 7, block.MaxOffset())

	child, start := block.ChildAtOffset(6)
	require.NotNil(t, child)
	assert.Equal(t, "x", child.Data)
	assert.Equal(t, 6, start)

	child, _ = block.ChildAtOffset(7)
	assert.Nil(t, child)
}

func TestAppendTextMerges(t *testing.T) {
	t.Parallel()

	fragment := model.NewFragment()
	model.AppendText(fragment, "foo")
	model.AppendText(fragment, "bar")
	model.AppendText(fragment, "")

	assert.Equal(t, 1, fragment.ChildCount())
	assert.Equal(t, "foobar", fragment.FirstChild.Data)
}

func TestTextContent(t *testing.T) {
	t.Parallel()

	root, _, err := model.Parse(`<paragraph>a<hljs class="hljs-x">b</hljs>c</paragraph>`)
	require.NoError(t, err)

	assert.Equal(t, "abc", root.TextContent())
}

func TestFindByKind(t *testing.T) {
	t.Parallel()

	root, _, err := model.Parse(`<codeBlock>a<softBreak></softBreak>b<softBreak></softBreak>c</codeBlock>`)
	require.NoError(t, err)

	breaks := model.FindByKind(root, model.NodeSoftBreak)
	assert.Len(t, breaks, 2)

	first := model.FindFirst(root, func(n *model.Node) bool { return n.IsText() })
	require.NotNil(t, first)
	assert.Equal(t, "a", first.Data)
}
