package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/codeblock/internal/configloader"
	"github.com/yaklabco/codeblock/internal/logging"
)

type migrateFlags struct {
	force  bool
	output string
}

func newMigrateCommand() *cobra.Command {
	flags := &migrateFlags{}

	cmd := &cobra.Command{
		Use:   "migrate [input]",
		Short: "Convert an editor codeBlock configuration to codeblock format",
		Long: `Convert the codeBlock section of an editor configuration (editor.config.json,
ckeditor.config.jsonc, or a YAML file with the same shape) to .codeblock.yml.

The languages list and indentSequence option are carried over. Language
aliases are renamed to their canonical identifiers. An indentSequence of
false cannot be expressed and keeps the default.

If no input file is specified, the current directory is searched.

Examples:
  codeblock migrate                        Auto-detect and convert
  codeblock migrate editor.config.jsonc    Convert a specific file
  codeblock migrate --output config.yml    Write to a custom output path`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := ""
			if len(args) == 1 {
				input = args[0]
			}
			return runMigrate(cmd, input, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "overwrite existing output file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", defaultYAMLConfigName, "output file path")

	return cmd
}

func runMigrate(cmd *cobra.Command, inputPath string, flags *migrateFlags) error {
	logger := logging.NewInteractive()
	logger.SetOutput(cmd.ErrOrStderr())

	if inputPath == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("get working directory: %w", err)
		}

		inputPath = configloader.FindEditorConfig(cwd)
		if inputPath == "" {
			return errors.New("no editor configuration file found in current directory")
		}

		logger.Info("found editor config", logging.FieldPath, inputPath)
	}

	if _, err := os.Stat(inputPath); err != nil {
		return fmt.Errorf("input file: %w", err)
	}

	absOutput, err := filepath.Abs(flags.output)
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}

	if _, err := os.Stat(absOutput); err == nil {
		if !flags.force {
			return fmt.Errorf("output file %q already exists; use --force to overwrite", flags.output)
		}
		logger.Warn("overwriting existing file", logging.FieldPath, flags.output)
	}

	result, err := configloader.ConvertEditorConfig(inputPath)
	if err != nil {
		return fmt.Errorf("convert configuration: %w", err)
	}

	for _, warning := range result.Warnings {
		logger.Warn(warning)
	}

	header := configloader.GenerateMigrationHeader(inputPath)
	if err := configloader.WriteConfig(cmd.Context(), result.Config, absOutput, header); err != nil {
		return fmt.Errorf("write output file: %w", err)
	}

	logger.Info("migration complete", logging.FieldInput, inputPath, logging.FieldOutput, flags.output)

	if len(result.Warnings) > 0 {
		logger.Warn("review warnings above and verify the migrated configuration")
	}

	return nil
}
