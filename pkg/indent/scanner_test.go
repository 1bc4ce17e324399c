package indent_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/codeblock/pkg/indent"
)

func TestLineScannerScan(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
		want []int
	}{
		{"single line", "foo", nil},
		{"internal line starts", "a\n  b\n\tc", []int{4, 7}},
		{"blank line is skipped", "a\n   \nb", []int{6}},
		{"trailing whitespace line", "a\n  ", nil},
		{"multibyte runes count once", "é\n  ü", []int{4}},
		{"no-break space is indentation", "a\n\u00a0x", []int{3}},
		{"vertical tab and ideographic space", "a\n\v\u3000x", []int{4}},
		{"byte order mark is indentation", "a\n\uFEFFx", []int{3}},
		{"line of separators is blank", "a\n\u2003\u00a0\nb", []int{5}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			var scanner indent.LineScanner
			assert.Equal(t, testCase.want, scanner.Scan(testCase.data))
		})
	}
}

func TestLineScannerCarry(t *testing.T) {
	t.Parallel()

	var scanner indent.LineScanner

	assert.Empty(t, scanner.Scan("x\n  "))
	assert.True(t, scanner.Pending(), "run ending on an open line")

	assert.Equal(t, []int{2}, scanner.Scan("  y"))
	assert.False(t, scanner.Pending())

	scanner.Break()
	assert.Equal(t, []int{0}, scanner.Scan("z"))

	scanner.Break()
	assert.Empty(t, scanner.Scan("   "), "whitespace-only line")
	assert.False(t, scanner.Pending())

	scanner.Break()
	assert.Equal(t, []int{2}, scanner.Scan("\n x"), "carry needs content before the next line feed")

	assert.Empty(t, scanner.Scan("x\n\u00a0"))
	assert.True(t, scanner.Pending(), "no-break space keeps the line open")
	assert.Equal(t, []int{1}, scanner.Scan("\u2002y"))
}

func TestLineScannerIdleIgnoresLeadingIndentation(t *testing.T) {
	t.Parallel()

	var scanner indent.LineScanner
	assert.Empty(t, scanner.Scan("  foo"))

	scanner.Break()
	scanner.Reset()
	assert.False(t, scanner.Pending())
	assert.Empty(t, scanner.Scan("  foo"))
}
