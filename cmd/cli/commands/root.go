package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lucax88x/datetoday/cmd/cli/config"
	"github.com/lucax88x/datetoday/cmd/cli/console"
)

func NewRootCmd(
	ctx context.Context,
	logger *slog.Logger,
	level *slog.LevelVar,
	viper *viper.Viper,
	console *console.Console,
) (*cobra.Command, error) {
	rootCmd := &cobra.Command{
		Use:           "datetoday",
		Short:         "keep today's date on screen",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default "+config.DefaultPath()+")")
	flags.String("log-level", "", "debug, info, warn or error")
	flags.String("display", "", "console or sketchybar")
	flags.String("locale", "", "locale of day and month names, e.g. en-GB")

	for key, flag := range map[string]string{
		config.KeyConfig:   "config",
		config.KeyLogLevel: "log-level",
		config.KeyDisplay:  "display",
		config.KeyLocale:   "locale",
	} {
		if err := viper.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return nil, fmt.Errorf("commands: could not bind flag '%s'. %w", flag, err)
		}
	}

	rootCmd.AddCommand(
		NewStartCmd(ctx, logger, level, viper, console),
		NewPreviewCmd(ctx, logger, level, viper, console),
		NewSetCmd(ctx, logger, level, viper, console),
		NewStopCmd(ctx, logger, level, viper, console),
	)

	rootCmd.SetOut(console.Stdout)
	rootCmd.SetErr(console.Stderr)

	return rootCmd, nil
}

// suffixFlag returns the --suffix value, or nil when it was not given.
func suffixFlag(cmd *cobra.Command) (*int, error) {
	if !cmd.Flags().Changed("suffix") {
		return nil, nil //nolint:nilnil // no suffix
	}

	position, err := cmd.Flags().GetInt("suffix")
	if err != nil {
		return nil, err
	}

	return &position, nil
}
