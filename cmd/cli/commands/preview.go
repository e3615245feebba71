package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lucax88x/datetoday/cmd/cli/console"
	"github.com/lucax88x/datetoday/cmd/cli/runner"
	"github.com/lucax88x/datetoday/internal/datetoday"
	"github.com/lucax88x/datetoday/internal/dateformat"
)

func NewPreviewCmd(
	ctx context.Context,
	logger *slog.Logger,
	level *slog.LevelVar,
	viper *viper.Viper,
	console *console.Console,
) *cobra.Command {
	previewCmd := &cobra.Command{
		Use:   "preview",
		Short: "print today's date in a format without applying it",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := cmd.Flags().GetString("format")
			if err != nil {
				return err
			}

			suffix, err := suffixFlag(cmd)
			if err != nil {
				return err
			}

			return runner.RunCmdE(ctx, logger, level, viper, console, args, runPreviewCmd(format, suffix))
		},
	}

	previewCmd.Flags().String("format", "", "date format, the active one when empty")
	previewCmd.Flags().Int("suffix", 0, "position where the ordinal day suffix goes")

	previewCmd.SetOut(console.Stdout)
	previewCmd.SetErr(console.Stderr)

	return previewCmd
}

func runPreviewCmd(format string, suffix *int) runner.RunE {
	return func(
		_ context.Context,
		console *console.Console,
		_ []string,
		di *datetoday.DateToday,
	) error {
		if format == "" {
			active := di.Widget.Configuration()
			format, suffix = active.Pattern, active.OrdinalSuffixPosition
		}

		text, err := di.Widget.Preview(format, suffix)
		if err != nil {
			fmt.Fprintf(console.Stderr, "%s: %v\n", dateformat.Condition(err), err)
			return err
		}

		fmt.Fprintln(console.Stdout, text)

		return nil
	}
}
