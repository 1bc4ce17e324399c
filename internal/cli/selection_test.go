package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/codeblock/pkg/lines"
	"github.com/yaklabco/codeblock/pkg/model"
)

func TestParseLineRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		spec    string
		want    lineRange
		wantErr bool
	}{
		{"", lineRange{first: 1}, false},
		{"3", lineRange{first: 3, last: 3}, false},
		{"2-5", lineRange{first: 2, last: 5}, false},
		{"4-", lineRange{first: 4}, false},
		{"0", lineRange{}, true},
		{"5-2", lineRange{}, true},
		{"a-b", lineRange{}, true},
	}

	for _, tt := range tests {
		got, err := parseLineRange(tt.spec)
		if tt.wantErr {
			require.ErrorIs(t, err, ErrInvalidSelection, tt.spec)
			continue
		}
		require.NoError(t, err, tt.spec)
		assert.Equal(t, tt.want, got, tt.spec)
	}
}

func TestSelectLines(t *testing.T) {
	t.Parallel()

	block := model.NewCodeBlock("go")
	model.AppendFragment(block, lines.ToFragment("ab\n\ncd"))

	sel, err := selectLines(block, lineRange{first: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, sel.Anchor.Offset)
	assert.Equal(t, 6, sel.Focus.Offset)

	sel, err = selectLines(block, lineRange{first: 1, last: 1})
	require.NoError(t, err)
	assert.Equal(t, 0, sel.Anchor.Offset)
	assert.Equal(t, 2, sel.Focus.Offset)

	_, err = selectLines(block, lineRange{first: 4})
	require.ErrorIs(t, err, ErrInvalidSelection)
}
