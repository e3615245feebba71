package runner

import (
	"context"
	"log/slog"

	"github.com/spf13/viper"

	"github.com/lucax88x/datetoday/cmd/cli/config"
	"github.com/lucax88x/datetoday/cmd/cli/console"
	"github.com/lucax88x/datetoday/internal/clock"
	"github.com/lucax88x/datetoday/internal/datetoday"
	"github.com/lucax88x/datetoday/internal/setup"
)

type RunE func(
	ctx context.Context,
	console *console.Console,
	args []string,
	di *datetoday.DateToday,
) error

// RunCmdE loads the configuration, applies its log level and runs runE
// with the resulting dependencies.
func RunCmdE(
	ctx context.Context,
	logger *slog.Logger,
	level *slog.LevelVar,
	viper *viper.Viper,
	console *console.Console,
	args []string,
	runE RunE,
) error {
	cfg, err := config.Load(viper)
	if err != nil {
		return err
	}

	level.Set(setup.ParseLevel(cfg.LogLevel))

	logger.DebugContext(
		ctx,
		"runner: configuration loaded",
		slog.String("display", cfg.Display),
		slog.String("state_path", cfg.StatePath),
		slog.String("fifo_path", cfg.FifoPath),
	)

	di, err := datetoday.NewDateToday(logger, cfg, console, clock.NewSystemClock())
	if err != nil {
		return err
	}

	return runE(ctx, console, args, di)
}
