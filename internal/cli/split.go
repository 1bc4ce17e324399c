package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/codeblock/internal/logging"
	"github.com/yaklabco/codeblock/pkg/lines"
	"github.com/yaklabco/codeblock/pkg/model"
)

type splitFlags struct {
	format       string
	keepTrailing bool
}

func newSplitCommand() *cobra.Command {
	flags := &splitFlags{}

	cmd := &cobra.Command{
		Use:   "split [file]",
		Short: "Split text into lines joined by soft breaks",
		Long: `Split raw text on newlines into a fragment of text nodes separated by soft
breaks, the shape pasted plain text takes inside a code block.

A single trailing newline, as written by most editors, is dropped unless
--keep-trailing is set.

Examples:
  codeblock split main.go
  printf 'a\n\nb' | codeblock split --format model`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSplit(cmd, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", formatTree, "output format: tree, model")
	cmd.Flags().BoolVar(&flags.keepTrailing, "keep-trailing", false, "keep a trailing newline as an empty last line")

	return cmd
}

func runSplit(cmd *cobra.Command, args []string, flags *splitFlags) error {
	if err := validateFormat(flags.format); err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	data, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	text := string(data)
	if !flags.keepTrailing {
		text = strings.TrimSuffix(text, "\n")
	}

	fragment := lines.ToFragment(text)

	logging.FromContext(cmd.Context()).Debug("split text",
		"lines", len(model.FindByKind(fragment, model.NodeSoftBreak))+1,
	)

	return writeModel(cmd.OutOrStdout(), stylesFor(cmd, cfg), fragment, flags.format)
}
