package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/codeblock/internal/logging"
	"github.com/yaklabco/codeblock/pkg/domconv"
	"github.com/yaklabco/codeblock/pkg/highlight"
	"github.com/yaklabco/codeblock/pkg/language"
)

// formatHTML prints the highlighter markup unchanged.
const formatHTML = "html"

type highlightFlags struct {
	lang   string
	style  string
	format string
	css    bool
}

func newHighlightCommand() *cobra.Command {
	flags := &highlightFlags{}

	cmd := &cobra.Command{
		Use:   "highlight [file]",
		Short: "Render code as highlighted HTML",
		Long: `Render code as HTML whose token classes carry the highlight prefix, the
markup paste reads back into highlight spans.

Without --lang the language is detected from the content among the
configured languages. --format tree or model converts the markup into a
model fragment straight away. --css prints the stylesheet for the style
instead.

Examples:
  codeblock highlight --lang go main.go
  codeblock highlight --format tree < script.py
  codeblock highlight --css --style monokai`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHighlight(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.lang, "lang", "l", "", "language of the code (default: detect)")
	cmd.Flags().StringVar(&flags.style, "style", "", "chroma style for --css (overrides config)")
	cmd.Flags().StringVar(&flags.format, "format", formatHTML, "output format: html, tree, model")
	cmd.Flags().BoolVar(&flags.css, "css", false, "print the stylesheet and exit")

	return cmd
}

func runHighlight(cmd *cobra.Command, args []string, flags *highlightFlags) error {
	if flags.format != formatHTML {
		if err := validateFormat(flags.format); err != nil {
			return fmt.Errorf("invalid format %q: must be html, tree or model", flags.format)
		}
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	style := cfg.Style
	if flags.style != "" {
		style = flags.style
	}

	highlighter := highlight.New(
		highlight.WithPrefix(cfg.HighlightPrefix),
		highlight.WithStyle(style),
	)

	if flags.css {
		return highlighter.WriteCSS(cmd.OutOrStdout())
	}

	data, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	lang := flags.lang
	if lang == "" {
		lang = language.Detect(data, cfg.LanguageDefinitions(nil))
	}

	logging.FromContext(cmd.Context()).Debug("highlighting",
		logging.FieldLanguage, lang,
		logging.FieldLexer, highlighter.LexerName(lang, string(data)),
	)

	markup, err := highlighter.Highlight(lang, string(data))
	if err != nil {
		return fmt.Errorf("highlight: %w", err)
	}

	if flags.format == formatHTML {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), markup); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		return nil
	}

	fragment := domconv.New(domconv.WithPrefix(highlighter.Prefix())).ConvertString(markup)
	return writeModel(cmd.OutOrStdout(), stylesFor(cmd, cfg), fragment, flags.format)
}
