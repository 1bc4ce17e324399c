package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/codeblock/internal/ui/pretty"
	"github.com/yaklabco/codeblock/pkg/highlight"
	"github.com/yaklabco/codeblock/pkg/language"
)

func newLanguagesCommand() *cobra.Command {
	var detect string

	cmd := &cobra.Command{
		Use:   "languages",
		Short: "List the configured code block languages",
		Long: `List the code block languages from the configuration, or the built-in
set when none are configured. The first language is the default for new
code blocks. The LEXER column names the highlighter lexer each one uses.

--detect prints the language detected for a file instead.

Examples:
  codeblock languages
  codeblock languages --detect script.py`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLanguages(cmd, detect)
		},
	}

	cmd.Flags().StringVar(&detect, "detect", "", "detect the language of a file")

	return cmd
}

func runLanguages(cmd *cobra.Command, detect string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	defs := cfg.LanguageDefinitions(nil)

	if detect != "" {
		content, err := os.ReadFile(detect)
		if err != nil {
			return fmt.Errorf("read %s: %w", detect, err)
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), language.Detect(content, defs))
		return err
	}

	highlighter := highlight.New(highlight.WithPrefix(cfg.HighlightPrefix))

	rows := make([]pretty.LanguageRow, 0, len(defs))
	for i, def := range defs {
		rows = append(rows, pretty.LanguageRow{
			Language: def.Language,
			Label:    def.Label,
			Class:    def.Class,
			Lexer:    highlighter.LexerName(def.Language, ""),
			Default:  i == 0,
		})
	}

	formatter := pretty.NewTableFormatter(stylesFor(cmd, cfg), terminalWidth(cmd))
	_, err = fmt.Fprint(cmd.OutOrStdout(), formatter.FormatLanguages(rows))
	return err
}

// terminalWidth returns the width of the command's output terminal, or zero
// when the output is not a terminal.
func terminalWidth(cmd *cobra.Command) int {
	f, ok := cmd.OutOrStdout().(*os.File)
	if !ok {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}
