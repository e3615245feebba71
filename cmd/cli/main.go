package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/viper"

	"github.com/lucax88x/datetoday/cmd/cli/commands"
	"github.com/lucax88x/datetoday/cmd/cli/console"
	"github.com/lucax88x/datetoday/internal/setup"
)

func cli(viper *viper.Viper, console *console.Console) setup.ProgramExecutor {
	return func(ctx context.Context, logger *slog.Logger, level *slog.LevelVar) error {
		rootCmd, err := commands.NewRootCmd(ctx, logger, level, viper, console)
		if err != nil {
			return err
		}

		return rootCmd.ExecuteContext(ctx)
	}
}

func main() {
	result := setup.Run(cli)

	if result == setup.NotOk {
		os.Exit(1)
	}
}
