package commands

import (
	"context"
	"errors"
	"log/slog"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lucax88x/datetoday/cmd/cli/console"
	"github.com/lucax88x/datetoday/cmd/cli/runner"
	"github.com/lucax88x/datetoday/internal/datetoday"
)

func NewStopCmd(
	ctx context.Context,
	logger *slog.Logger,
	level *slog.LevelVar,
	viper *viper.Viper,
	console *console.Console,
) *cobra.Command {
	stopCmd := &cobra.Command{
		Use:   "stop",
		Short: "stop the running date widget",
		RunE: func(_ *cobra.Command, args []string) error {
			return runner.RunCmdE(ctx, logger, level, viper, console, args, runStopCmd())
		},
	}

	stopCmd.SetOut(console.Stdout)
	stopCmd.SetErr(console.Stderr)

	return stopCmd
}

func runStopCmd() runner.RunE {
	return func(
		ctx context.Context,
		_ *console.Console,
		_ []string,
		di *datetoday.DateToday,
	) error {
		_, running, err := runner.IsRunning(di.Config.PidPath)
		if err != nil {
			return err
		}

		if !running {
			return errors.New("stop: no running widget")
		}

		pid, err := runner.SignalPid(di.Config.PidPath, syscall.SIGTERM)
		if err != nil {
			return err
		}

		di.Logger.InfoContext(ctx, "stop: signalled widget", slog.Int("pid", pid))

		return nil
	}
}
