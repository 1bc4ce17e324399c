package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/codeblock/internal/logging"
	"github.com/yaklabco/codeblock/pkg/domconv"
	"github.com/yaklabco/codeblock/pkg/model"
)

type pasteFlags struct {
	format string
	prefix string
}

func newPasteCommand() *cobra.Command {
	flags := &pasteFlags{}

	cmd := &cobra.Command{
		Use:   "paste [file]",
		Short: "Convert highlighted HTML into a code block fragment",
		Long: `Read rendered, syntax-highlighted HTML and convert it into a model fragment.

Elements whose class contains the highlight prefix (hljs- by default) are kept
as highlight spans. Every other wrapper is flattened into its children. The
markup is read from the given file, or from stdin when no file is given.

Examples:
  codeblock paste snippet.html
  codeblock paste --format model < snippet.html
  codeblock paste --prefix tok- snippet.html`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPaste(cmd, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", formatTree, "output format: tree, model")
	cmd.Flags().StringVar(&flags.prefix, "prefix", "", "highlight class prefix (overrides config)")

	return cmd
}

func runPaste(cmd *cobra.Command, args []string, flags *pasteFlags) error {
	if err := validateFormat(flags.format); err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	prefix := cfg.HighlightPrefix
	if flags.prefix != "" {
		prefix = flags.prefix
	}

	data, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	converter := domconv.New(domconv.WithPrefix(prefix))
	fragment := converter.ConvertString(string(data))

	logging.FromContext(cmd.Context()).Debug("converted markup",
		logging.FieldPrefix, converter.Prefix(),
		"highlights", len(model.FindByKind(fragment, model.NodeHighlight)),
	)

	return writeModel(cmd.OutOrStdout(), stylesFor(cmd, cfg), fragment, flags.format)
}
