// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Tree dump components
	Tag       lipgloss.Style
	Highlight lipgloss.Style
	AttrName  lipgloss.Style
	AttrValue lipgloss.Style
	Text      lipgloss.Style
	Break     lipgloss.Style

	// Position components
	Position lipgloss.Style
	Caret    lipgloss.Style

	// Status styles
	Success lipgloss.Style
	Failure lipgloss.Style
	Warning lipgloss.Style

	// Table styles
	TableHeader    lipgloss.Style
	TableDefault   lipgloss.Style
	TableSeparator lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

// newColorStyles creates styles with ANSI 256 colors.
func newColorStyles() *Styles {
	return &Styles{
		Tag:       lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		AttrName:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		AttrValue: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Text:      lipgloss.NewStyle(),
		Break:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")),

		Position: lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Caret:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),

		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),

		TableHeader:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7")),
		TableDefault:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		TableSeparator: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),

		Dim:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold: lipgloss.NewStyle().Bold(true),
	}
}

// newNoColorStyles creates styles without any formatting.
func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Tag:            plain,
		Highlight:      plain,
		AttrName:       plain,
		AttrValue:      plain,
		Text:           plain,
		Break:          plain,
		Position:       plain,
		Caret:          plain,
		Success:        plain,
		Failure:        plain,
		Warning:        plain,
		TableHeader:    plain,
		TableDefault:   plain,
		TableSeparator: plain,
		Dim:            plain,
		Bold:           plain,
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		// https://no-color.org/
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
