package command_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/lucax88x/datetoday/internal/command"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunReturnsStdout(t *testing.T) {
	c := command.NewCommand(slog.New(slog.NewTextHandler(io.Discard, nil)))

	out, err := c.Run(context.Background(), "sh", "-c", "printf hello")

	require.NoError(t, err)
	assert.Equal(t, "hello", out)
}

func TestRunIncludesStderrOnFailure(t *testing.T) {
	c := command.NewCommand(slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := c.Run(context.Background(), "sh", "-c", "echo broken >&2; exit 3")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
}

func TestRunMissingBinary(t *testing.T) {
	c := command.NewCommand(slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := c.Run(context.Background(), "datetoday-no-such-binary")

	require.Error(t, err)
}
