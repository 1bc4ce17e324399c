package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/codeblock/internal/logging"
	"github.com/yaklabco/codeblock/pkg/config"
	"github.com/yaklabco/codeblock/pkg/fsutil"
	"github.com/yaklabco/codeblock/pkg/indent"
	"github.com/yaklabco/codeblock/pkg/markdown"
	"github.com/yaklabco/codeblock/pkg/model"
)

// direction selects between the indent and outdent commands.
type direction string

const (
	directionIndent  direction = "indent"
	directionOutdent direction = "outdent"
)

// Input kinds accepted by indent and outdent.
const (
	inputModel    = "model"
	inputMarkdown = "markdown"
)

type indentFlags struct {
	input     string
	format    string
	block     int
	lines     string
	sequence  string
	positions bool
	write     bool
	backup    bool
}

func newIndentCommand(dir direction) *cobra.Command {
	flags := &indentFlags{}

	short := "Indent the code block lines touched by a selection"
	verb := "inserts"
	if dir == directionOutdent {
		short = "Outdent the code block lines touched by a selection"
		verb = "removes"
	}

	cmd := &cobra.Command{
		Use:   string(dir) + " [file]",
		Short: short,
		Long: fmt.Sprintf(`Resolve the line starts a selection touches inside code blocks and %s one
indent sequence at each of them.

With --input model the document is written in model notation and the
selection is marked with '[' and ']':

  <codeBlock language="go">[foo<softBreak></softBreak>bar]</codeBlock>

With --input markdown the document is imported and --block and --lines pick
the selection: lines of the n-th fenced or indented code block.

--positions prints the resolved positions instead of editing. --write
replaces the input file with the result, refusing if the file changed while
it was being edited; --backup keeps a copy of the original next to it.

Examples:
  codeblock %[2]s doc.model
  codeblock %[2]s --input markdown --block 2 --lines 3-5 README.md
  codeblock %[2]s --positions < doc.model
  codeblock %[2]s --input markdown --write --backup README.md`, verb, dir),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIndent(cmd, args, dir, flags)
		},
	}

	cmd.Flags().StringVar(&flags.input, "input", inputModel, "input kind: model, markdown")
	cmd.Flags().StringVar(&flags.format, "format", formatModel, "output format for model input: tree, model")
	cmd.Flags().IntVar(&flags.block, "block", 1, "code block to select (markdown input, 1-based)")
	cmd.Flags().StringVar(&flags.lines, "lines", "", "lines to select, e.g. 2 or 2-4 (markdown input, default all)")
	cmd.Flags().StringVar(&flags.sequence, "sequence", "", "indent sequence (overrides config)")
	cmd.Flags().BoolVar(&flags.positions, "positions", false, "print resolved positions instead of editing")
	cmd.Flags().BoolVarP(&flags.write, "write", "w", false, "write the result back to the input file")
	cmd.Flags().BoolVar(&flags.backup, "backup", false, "keep a backup of the input file when writing")

	return cmd
}

func runIndent(cmd *cobra.Command, args []string, dir direction, flags *indentFlags) error {
	if flags.input != inputModel && flags.input != inputMarkdown {
		return fmt.Errorf("invalid input %q: must be %s or %s", flags.input, inputModel, inputMarkdown)
	}
	if err := validateFormat(flags.format); err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	var data []byte
	var snap *fsutil.Snapshot
	if flags.write {
		if len(args) == 0 || args[0] == stdinName {
			return fmt.Errorf("%w: --write needs a file argument", ErrNoInput)
		}
		data, snap, err = fsutil.ReadSnapshot(cmd.Context(), args[0])
	} else {
		data, err = readInput(cmd, args)
	}
	if err != nil {
		return err
	}

	root, sel, err := loadSelection(cmd, cfg, data, flags)
	if err != nil {
		return err
	}

	ctx := logging.WithFields(cmd.Context(), logging.FieldCommand, string(dir))
	logger := logging.FromContext(ctx)
	logger.Debug("selection resolved", logging.FieldSelection, fmt.Sprintf("%s..%s", sel.Anchor, sel.Focus))

	if flags.positions {
		positions := indent.Positions(sel)
		logger.Debug("positions resolved", logging.FieldPositions, len(positions))

		_, err := fmt.Fprint(cmd.OutOrStdout(), stylesFor(cmd, cfg).FormatPositions(positions))
		if err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		return nil
	}

	sequence := cfg.IndentSequence
	if flags.sequence != "" {
		sequence = flags.sequence
	}
	command := indent.NewCommand(sequence)

	var edits int
	if dir == directionIndent {
		edits, err = command.Indent(sel)
	} else {
		edits, err = command.Outdent(sel)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", dir, err)
	}

	logger.Debug("lines edited", logging.FieldEdits, edits)

	if snap != nil {
		return writeBack(cmd, snap, renderDocument(root, flags.input), flags.backup)
	}

	if flags.input == inputMarkdown {
		if _, err := cmd.OutOrStdout().Write(markdown.Render(root)); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		return nil
	}

	return writeModel(cmd.OutOrStdout(), stylesFor(cmd, cfg), root, flags.format)
}

// renderDocument serializes an edited document in its input kind.
func renderDocument(root *model.Node, input string) []byte {
	if input == inputMarkdown {
		return markdown.Render(root)
	}
	return []byte(model.Stringify(root) + "\n")
}

// writeBack replaces the file a snapshot was taken of, optionally keeping a
// backup of the original.
func writeBack(cmd *cobra.Command, snap *fsutil.Snapshot, content []byte, backup bool) error {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	if backup {
		backupPath, err := fsutil.CreateBackup(ctx, snap.Path)
		if err != nil {
			return err
		}
		if backupPath != "" {
			logger.Info("created backup", logging.FieldPath, backupPath)
		}
	}

	written, err := fsutil.Update(ctx, snap, content)
	if err != nil {
		return fmt.Errorf("write %s: %w", snap.Path, err)
	}

	if written {
		logger.Info("updated file", logging.FieldPath, snap.Path)
	} else {
		logger.Debug("file unchanged", logging.FieldPath, snap.Path)
	}
	return nil
}

// loadSelection builds the document and the selection the command acts on.
func loadSelection(
	cmd *cobra.Command, cfg *config.Config, data []byte, flags *indentFlags,
) (*model.Node, model.Selection, error) {
	if flags.input == inputModel {
		root, sel, err := model.Parse(strings.TrimRight(string(data), "\n"))
		if err != nil {
			return nil, model.Selection{}, fmt.Errorf("%w: %w", ErrInvalidSelection, err)
		}
		if sel == nil {
			return nil, model.Selection{}, fmt.Errorf("%w: mark the selection with '[' and ']'", ErrInvalidSelection)
		}
		return root, *sel, nil
	}

	importer := markdown.NewImporter(
		markdown.WithFlavor(string(cfg.Flavor)),
		markdown.WithLanguages(cfg.LanguageDefinitions(nil)),
	)

	root, err := importer.Import(cmd.Context(), data)
	if err != nil {
		return nil, model.Selection{}, fmt.Errorf("import markdown: %w", err)
	}

	block, err := codeBlockAt(root, flags.block)
	if err != nil {
		return nil, model.Selection{}, err
	}

	lines, err := parseLineRange(flags.lines)
	if err != nil {
		return nil, model.Selection{}, err
	}

	sel, err := selectLines(block, lines)
	if err != nil {
		return nil, model.Selection{}, err
	}
	return root, sel, nil
}
