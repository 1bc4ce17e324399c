package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/codeblock/internal/configloader"
	"github.com/yaklabco/codeblock/internal/logging"
	"github.com/yaklabco/codeblock/internal/ui/pretty"
	"github.com/yaklabco/codeblock/pkg/config"
)

// loadConfig resolves the configuration for cmd from files, the environment
// and the global flags. It applies the configured log level and attaches the
// logger to the command context.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	cliCfg := &config.Config{}
	if cmd.Flags().Changed("color") {
		color, err := cmd.Flags().GetString("color")
		if err != nil {
			return nil, fmt.Errorf("get color flag: %w", err)
		}
		cliCfg.Color = config.ColorMode(color)
	}
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		cliCfg.LogLevel = "debug"
	}

	result, err := configloader.Load(ctx, configloader.LoadOptions{
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	cfg := result.Config
	logging.SetLevel(cfg.LogLevel)
	logger := logging.Default()

	for _, warning := range result.Warnings {
		logger.Warn(warning)
	}

	logger.Debug("configuration loaded",
		logging.FieldLoadedFrom, result.LoadedFrom,
		logging.FieldFlavor, cfg.Flavor,
		logging.FieldPrefix, cfg.HighlightPrefix,
		logging.FieldSequence, fmt.Sprintf("%q", cfg.IndentSequence),
	)

	cmd.SetContext(logging.WithLogger(ctx, logger))

	return cfg, nil
}

// stylesFor returns output styles honoring the configured color mode.
func stylesFor(cmd *cobra.Command, cfg *config.Config) *pretty.Styles {
	return pretty.NewStyles(pretty.IsColorEnabled(string(cfg.Color), cmd.OutOrStdout()))
}
