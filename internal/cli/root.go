// Package cli provides the Cobra command structure for codeblock.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/codeblock/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root codeblock command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "codeblock",
		Short: "Convert, split and indent code blocks of a rich-text document model",
		Long: `codeblock drives the code block editing feature of a rich-text document model.

It reads highlighted HTML back into model fragments while keeping highlight
spans, splits source text into lines joined by soft breaks, and resolves the
line starts an indent or outdent touches for any selection. Markdown documents
can be imported so their fenced code blocks are edited in place.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	rootCmd.AddCommand(newPasteCommand())
	rootCmd.AddCommand(newSplitCommand())
	rootCmd.AddCommand(newIndentCommand(directionIndent))
	rootCmd.AddCommand(newIndentCommand(directionOutdent))
	rootCmd.AddCommand(newHighlightCommand())
	rootCmd.AddCommand(newLanguagesCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newMigrateCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
