package indent

import (
	"regexp"
	"unicode/utf8"
)

// Whitespace follows the ECMAScript \s class: ASCII whitespace, Unicode
// separators and the byte order mark. Indentation excludes line terminators.
const (
	spaceClass       = `[\t\n\v\f\r \p{Z}\x{FEFF}]`
	contentClass     = `[^\t\n\v\f\r \p{Z}\x{FEFF}]`
	indentationClass = `[\t\v\f \p{Zs}\x{FEFF}]`
)

var (
	// carryPattern finds the first content character of a run that continues
	// a line opened by the previous run.
	carryPattern = regexp.MustCompile(`^` + indentationClass + `*(` + contentClass + `)`)

	// lineStartPattern finds the first content character after each line feed.
	lineStartPattern = regexp.MustCompile(`\n` + spaceClass + `*(` + contentClass + `)`)

	// openBreakPattern matches a run that ends on a line feed followed only by whitespace.
	openBreakPattern = regexp.MustCompile(`\n` + spaceClass + `*$`)
)

type scanState uint8

const (
	stateIdle scanState = iota
	statePendingBreak
)

// LineScanner finds the line starts inside a sequence of text runs. It carries
// one bit between runs: whether the previous run left a line open, so the next
// run's leading indentation belongs to a new line.
//
// The zero value is ready to use.
type LineScanner struct {
	state scanState
}

// Scan consumes the next run and returns, in order, the rune offsets within
// data that sit directly after the indentation of every line starting there.
// Lines holding only whitespace produce no offset.
func (s *LineScanner) Scan(data string) []int {
	var offsets []int

	if s.state == statePendingBreak {
		if m := carryPattern.FindStringSubmatchIndex(data); m != nil {
			offsets = append(offsets, utf8.RuneCountInString(data[:m[2]]))
		}
	}

	for _, m := range lineStartPattern.FindAllStringSubmatchIndex(data, -1) {
		offsets = append(offsets, utf8.RuneCountInString(data[:m[2]]))
	}

	if openBreakPattern.MatchString(data) {
		s.state = statePendingBreak
	} else {
		s.state = stateIdle
	}

	return offsets
}

// Break records a structural line break between runs.
func (s *LineScanner) Break() {
	s.state = statePendingBreak
}

// Pending reports whether the next run starts a new line.
func (s *LineScanner) Pending() bool {
	return s.state == statePendingBreak
}

// Reset returns the scanner to its initial state.
func (s *LineScanner) Reset() {
	s.state = stateIdle
}
