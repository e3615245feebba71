package fifo_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lucax88x/datetoday/cmd/cli/config/args"
	"github.com/lucax88x/datetoday/internal/fifo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, ch <-chan string) string {
	t.Helper()

	select {
	case msg := <-ch:
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for fifo message")
		return ""
	}
}

func TestStartCreatesNamedPipe(t *testing.T) {
	path := filepath.Join(t.TempDir(), "datetoday.fifo")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o600))

	reader := fifo.NewFifoReader(slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, reader.Start(path))

	stat, err := os.Stat(path)
	require.NoError(t, err)
	assert.NotZero(t, stat.Mode()&os.ModeNamedPipe)

	require.NoError(t, fifo.Remove(path))
	require.NoError(t, fifo.Remove(path))
}

func TestListenForwardsMessages(t *testing.T) {
	path := filepath.Join(t.TempDir(), "datetoday.fifo")
	reader := fifo.NewFifoReader(slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, reader.Start(path))

	ctx, cancel := context.WithCancel(context.Background())
	ch := make(chan string, 4)
	done := make(chan error, 1)
	go func() { done <- reader.Listen(ctx, path, ch) }()

	require.Eventually(t, func() bool {
		return fifo.Send(path, "refresh") == nil
	}, 2*time.Second, 10*time.Millisecond)
	require.NoError(t, fifo.Send(path, `commit args: {"format":"yyyy-MM-dd"}`))
	require.NoError(t, fifo.Send(path, `commit args: {"format":"'lunedì' d"}`))

	assert.Equal(t, "refresh", receive(t, ch))
	assert.Equal(t, `commit args: {"format":"yyyy-MM-dd"}`, receive(t, ch))
	assert.Equal(t, `commit args: {"format":"'lunedì' d"}`, receive(t, ch), "runes sharing the separator's last byte must not split a message")

	cancel()

	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("listen did not stop")
	}
}

func TestSendWithoutReaderFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "datetoday.fifo")
	reader := fifo.NewFifoReader(slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, reader.Start(path))

	require.Error(t, fifo.Send(path, "refresh"))
}

func TestCommitWithSeparatorInPatternArrivesWhole(t *testing.T) {
	path := filepath.Join(t.TempDir(), "datetoday.fifo")
	reader := fifo.NewFifoReader(slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, reader.Start(path))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := make(chan string, 4)
	go func() { _ = reader.Listen(ctx, path, ch) }()

	msg, err := args.BuildCommit("d '¬' MMMM", nil)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return fifo.Send(path, msg) == nil
	}, 2*time.Second, 10*time.Millisecond)

	in, err := args.FromEvent(receive(t, ch))
	require.NoError(t, err)
	assert.Equal(t, "d '¬' MMMM", in.Format)
}
