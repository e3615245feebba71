package commands

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/lucax88x/datetoday/cmd/cli/config/args"
	"github.com/lucax88x/datetoday/cmd/cli/config/settings"
	"github.com/lucax88x/datetoday/cmd/cli/console"
	"github.com/lucax88x/datetoday/cmd/cli/runner"
	"github.com/lucax88x/datetoday/internal/datetoday"
	"github.com/lucax88x/datetoday/internal/fifo"
	"github.com/lucax88x/datetoday/internal/sketchybar"
)

func NewStartCmd(
	ctx context.Context,
	logger *slog.Logger,
	level *slog.LevelVar,
	viper *viper.Viper,
	console *console.Console,
) *cobra.Command {
	startCmd := &cobra.Command{
		Use:   "start",
		Short: "start the date widget",
		RunE: func(_ *cobra.Command, args []string) error {
			return runner.RunCmdE(ctx, logger, level, viper, console, args, runStartCmd())
		},
	}

	startCmd.SetOut(console.Stdout)
	startCmd.SetErr(console.Stderr)

	return startCmd
}

func runStartCmd() runner.RunE {
	return func(
		ctx context.Context,
		_ *console.Console,
		_ []string,
		di *datetoday.DateToday,
	) error {
		ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := runner.CreatePidFile(di.Config.PidPath); err != nil {
			return err
		}

		defer func() {
			if err := runner.RemovePidFile(di.Config.PidPath); err != nil {
				di.Logger.ErrorContext(ctx, "start: could not remove pid file", slog.Any("error", err))
			}
		}()

		fifoReady := startFifoWithRetry(ctx, di)

		if fifoReady {
			defer func() {
				if err := fifo.Remove(di.Config.FifoPath); err != nil {
					di.Logger.ErrorContext(ctx, "start: could not remove fifo", slog.Any("error", err))
				}
			}()
		}

		if di.Sketchybar != nil {
			options := settings.DateItem(di.State(), args.BuildRefreshScript(di.Config.FifoPath))

			err := di.Sketchybar.Init(ctx, di.Config.Sketchybar.Position, options, sketchybar.SystemWoke)
			if err != nil {
				return err
			}
		}

		group, groupCtx := errgroup.WithContext(ctx)

		group.Go(func() error {
			return di.Widget.Run(groupCtx)
		})

		if fifoReady {
			group.Go(func() error {
				if err := di.Server.Start(groupCtx); err != nil {
					di.Logger.ErrorContext(groupCtx, "start: continuing without fifo", slog.Any("error", err))
				}
				return nil
			})
		}

		if di.Config.MetricsAddr != "" {
			group.Go(func() error {
				return di.Metrics.Serve(groupCtx, di.Logger, di.Config.MetricsAddr)
			})
		}

		err := group.Wait()

		if persistErr := di.Persist(); persistErr != nil {
			di.Logger.ErrorContext(ctx, "start: could not persist on shutdown", slog.Any("error", persistErr))
		}

		di.Logger.InfoContext(ctx, "start: shutdown complete")

		return err
	}
}

func startFifoWithRetry(ctx context.Context, di *datetoday.DateToday) bool {
	maxRetries := 5
	retryDelay := time.Second * 2

	for attempt := 1; attempt <= maxRetries; attempt++ {
		di.Logger.InfoContext(
			ctx,
			"start: starting fifo",
			slog.String("path", di.Config.FifoPath),
			slog.Int("attempt", attempt),
		)

		err := di.Fifo.Start(di.Config.FifoPath)

		if err == nil {
			return true
		}

		di.Logger.ErrorContext(ctx, "start: could not start fifo",
			slog.Any("error", err),
			slog.Int("attempt", attempt),
			slog.Int("maxRetries", maxRetries))

		if attempt == maxRetries {
			break
		}

		select {
		case <-ctx.Done():
			return false
		case <-time.After(retryDelay):
		}
	}

	di.Logger.ErrorContext(ctx, "start: fifo failed to start after all retries, continuing without fifo")

	return false
}
