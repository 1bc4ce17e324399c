package pretty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/codeblock/internal/ui/pretty"
	"github.com/yaklabco/codeblock/pkg/model"
)

func TestFormatTree(t *testing.T) {
	t.Parallel()

	root, _, err := model.Parse(`<codeBlock language="go">x<softBreak></softBreak><hljs class="hljs-keyword">func</hljs> f</codeBlock>`)
	require.NoError(t, err)

	got := pretty.NewStyles(false).FormatTree(root)

	want := "" +
		"codeBlock language=\"go\"\n" +
		"  \"x\"\n" +
		"  softBreak\n" +
		"  hljs class=\"hljs-keyword\"\n" +
		"    \"func\"\n" +
		"  \" f\"\n"
	assert.Equal(t, want, got)
}

func TestFormatTreeEscapesText(t *testing.T) {
	t.Parallel()

	fragment := model.NewFragment()
	model.AppendText(fragment, "\tline\n")

	assert.Equal(t, "\"\\tline\\n\"\n", pretty.NewStyles(false).FormatTree(fragment))
	assert.Empty(t, pretty.NewStyles(false).FormatTree(nil))
}
