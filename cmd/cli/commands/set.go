package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lucax88x/datetoday/cmd/cli/config/args"
	"github.com/lucax88x/datetoday/cmd/cli/console"
	"github.com/lucax88x/datetoday/cmd/cli/runner"
	"github.com/lucax88x/datetoday/internal/datetoday"
	"github.com/lucax88x/datetoday/internal/dateformat"
	"github.com/lucax88x/datetoday/internal/fifo"
)

func NewSetCmd(
	ctx context.Context,
	logger *slog.Logger,
	level *slog.LevelVar,
	viper *viper.Viper,
	console *console.Console,
) *cobra.Command {
	setCmd := &cobra.Command{
		Use:   "set",
		Short: "validate and apply a date format",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := cmd.Flags().GetString("format")
			if err != nil {
				return err
			}

			suffix, err := suffixFlag(cmd)
			if err != nil {
				return err
			}

			return runner.RunCmdE(ctx, logger, level, viper, console, args, runSetCmd(format, suffix))
		},
	}

	setCmd.Flags().String("format", "", "date format")
	setCmd.Flags().Int("suffix", 0, "position where the ordinal day suffix goes")
	_ = setCmd.MarkFlagRequired("format")

	setCmd.SetOut(console.Stdout)
	setCmd.SetErr(console.Stderr)

	return setCmd
}

// runSetCmd commits through the running widget when there is one, so that
// the display updates at once; otherwise it writes the store directly.
func runSetCmd(format string, suffix *int) runner.RunE {
	return func(
		ctx context.Context,
		console *console.Console,
		_ []string,
		di *datetoday.DateToday,
	) error {
		session := di.Widget.Edit()
		session.SetPattern(format)
		session.SetSuffixPosition(suffix)

		text, err := session.Preview()
		if err != nil {
			fmt.Fprintf(console.Stderr, "%s: %v\n", dateformat.Condition(err), err)
			return err
		}

		pid, running, err := runner.IsRunning(di.Config.PidPath)
		if err != nil {
			di.Logger.WarnContext(ctx, "set: could not check for a running widget", slog.Any("error", err))
		}

		if running {
			msg, err := args.BuildCommit(format, suffix)
			if err != nil {
				return err
			}

			if err := fifo.Send(di.Config.FifoPath, msg); err != nil {
				return err
			}

			di.Logger.InfoContext(ctx, "set: sent to running widget", slog.Int("pid", pid))
		} else {
			if _, err := session.Commit(); err != nil {
				return err
			}

			if err := di.Persist(); err != nil {
				return err
			}
		}

		fmt.Fprintln(console.Stdout, text)

		return nil
	}
}
