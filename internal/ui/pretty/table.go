package pretty

import (
	"fmt"
	"strings"
)

// Table formatting constants.
const (
	defaultSymbol      = "*"
	tablePadding       = 2
	tableColumnCount   = 4 // LANGUAGE, LABEL, CLASS, LEXER
	defaultColumnWidth = 2 // width for default marker column
	minLanguageWidth   = 8
	minLabelWidth      = 10
	minClassWidth      = 12
	minLexerWidth      = 8
	heavySeparator     = "="
	defaultTermWidth   = 100
)

// LanguageRow represents a single row in the language table.
type LanguageRow struct {
	Language string
	Label    string
	Class    string
	Lexer    string
	Default  bool
}

// TableFormatter formats language definitions as a styled table.
type TableFormatter struct {
	styles    *Styles
	termWidth int
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(styles *Styles, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{
		styles:    styles,
		termWidth: termWidth,
	}
}

type columnWidths struct {
	language int
	label    int
	class    int
	lexer    int
}

// FormatLanguages formats language rows as a table with a header, a
// separator and a legend for the default marker.
func (t *TableFormatter) FormatLanguages(rows []LanguageRow) string {
	if len(rows) == 0 {
		return ""
	}

	widths := t.calculateColumnWidths(rows)

	var builder strings.Builder

	builder.WriteString(t.formatHeader(widths))
	builder.WriteString("\n")
	builder.WriteString(t.formatSeparator(widths))
	builder.WriteString("\n")

	for _, row := range rows {
		builder.WriteString(t.formatRow(row, widths))
		builder.WriteString("\n")
	}

	builder.WriteString(t.formatSeparator(widths))
	builder.WriteString("\n")
	builder.WriteString(t.styles.Dim.Render(
		fmt.Sprintf(" %s = default for new code blocks", t.styles.TableDefault.Render(defaultSymbol))))
	builder.WriteString("\n")

	return builder.String()
}

// calculateColumnWidths sizes columns to their content, shrinking the class
// column when the table is wider than the terminal.
func (t *TableFormatter) calculateColumnWidths(rows []LanguageRow) columnWidths {
	widths := columnWidths{
		language: minLanguageWidth,
		label:    minLabelWidth,
		class:    minClassWidth,
		lexer:    minLexerWidth,
	}

	for _, row := range rows {
		widths.language = max(widths.language, len(row.Language))
		widths.label = max(widths.label, len(row.Label))
		widths.class = max(widths.class, len(row.Class))
		widths.lexer = max(widths.lexer, len(row.Lexer))
	}

	totalWidth := t.calculateTotalWidth(widths)
	if totalWidth > t.termWidth {
		excess := totalWidth - t.termWidth
		widths.class = max(minClassWidth, widths.class-excess)
	}

	return widths
}

// calculateTotalWidth calculates the total table width from column widths.
func (t *TableFormatter) calculateTotalWidth(widths columnWidths) int {
	return widths.language + widths.label + widths.class + widths.lexer +
		(tablePadding * tableColumnCount) + defaultColumnWidth
}

// formatHeader formats the table header row.
func (t *TableFormatter) formatHeader(widths columnWidths) string {
	header := fmt.Sprintf("   %-*s  %-*s  %-*s  %-*s",
		widths.language, "LANGUAGE",
		widths.label, "LABEL",
		widths.class, "CLASS",
		widths.lexer, "LEXER",
	)
	return t.styles.TableHeader.Render(header)
}

// formatSeparator formats a separator line.
func (t *TableFormatter) formatSeparator(widths columnWidths) string {
	sep := strings.Repeat(heavySeparator, t.calculateTotalWidth(widths))
	return t.styles.TableSeparator.Render(sep)
}

// formatRow formats a single table row.
func (t *TableFormatter) formatRow(row LanguageRow, widths columnWidths) string {
	marker := " "
	if row.Default {
		marker = t.styles.TableDefault.Render(defaultSymbol)
	}

	return fmt.Sprintf(" %s %-*s  %-*s  %-*s  %-*s",
		marker,
		widths.language, truncateString(row.Language, widths.language),
		widths.label, truncateString(row.Label, widths.label),
		widths.class, truncateString(row.Class, widths.class),
		widths.lexer, truncateString(row.Lexer, widths.lexer),
	)
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(str string, maxLen int) string {
	if len(str) <= maxLen {
		return str
	}
	if maxLen <= 3 {
		return str[:maxLen]
	}
	return str[:maxLen-3] + "..."
}
