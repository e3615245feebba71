package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/lucax88x/datetoday/cmd/cli/config/args"
	"github.com/lucax88x/datetoday/internal/dateformat"
)

type Listener interface {
	Listen(ctx context.Context, path string, ch chan<- string) error
}

// Widget is the part of the widget the FIFO can drive.
type Widget interface {
	Commit(pattern string, suffixPosition *int) (string, error)
	Refresh()
}

// Persister writes the active widget configuration to the store.
type Persister interface {
	Persist() error
}

type FifoServer struct {
	logger     *slog.Logger
	listener   Listener
	path       string
	widget     Widget
	persister  Persister
	maxRetries int
	retryDelay time.Duration
}

func NewFifoServer(
	logger *slog.Logger,
	listener Listener,
	path string,
	widget Widget,
	persister Persister,
) *FifoServer {
	return &FifoServer{
		logger:     logger,
		listener:   listener,
		path:       path,
		widget:     widget,
		persister:  persister,
		maxRetries: 3,
		retryDelay: time.Second * 5,
	}
}

// WithRetry overrides how often and how fast a failed listener is restarted.
func (f *FifoServer) WithRetry(maxRetries int, delay time.Duration) *FifoServer {
	f.maxRetries = maxRetries
	f.retryDelay = delay
	return f
}

// Start serves the FIFO until ctx is done. A listener that fails is
// restarted up to maxRetries times in a row.
func (f *FifoServer) Start(ctx context.Context) error {
	f.logger.InfoContext(ctx, "server: starting FIFO server", slog.String("path", f.path))

	var err error

	for attempt := 1; attempt <= f.maxRetries; attempt++ {
		err = f.listen(ctx)

		if ctx.Err() != nil {
			f.logger.InfoContext(ctx, "server: context cancelled")
			return nil
		}

		f.logger.ErrorContext(ctx, "server: FIFO listener failed",
			slog.Any("error", err),
			slog.Int("attempt", attempt),
			slog.Int("maxRetries", f.maxRetries))

		if attempt == f.maxRetries {
			break
		}

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(f.retryDelay):
		}
	}

	return fmt.Errorf("server: FIFO listener failed after %d attempts. %w", f.maxRetries, err)
}

func (f *FifoServer) listen(ctx context.Context) error {
	ch := make(chan string, 16)

	listenerCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- fmt.Errorf("server: recovered from panic in FIFO listener: %v", r)
			}
		}()

		done <- f.listener.Listen(listenerCtx, f.path, ch)
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-done:
			if err == nil {
				err = errors.New("server: FIFO listener stopped")
			}
			return err
		case msg := <-ch:
			f.handleSafely(ctx, msg)
		}
	}
}

func (f *FifoServer) handleSafely(ctx context.Context, msg string) {
	defer func() {
		if r := recover(); r != nil {
			f.logger.ErrorContext(ctx, "server: recovered from panic while handling message",
				slog.Any("panic", r),
				slog.String("message", msg))
		}
	}()

	if err := f.Handle(ctx, msg); err != nil {
		f.logger.ErrorContext(ctx, "server: message handling failed",
			slog.Any("error", err),
			slog.String("message", msg))
	}
}

// Handle runs one control message.
func (f *FifoServer) Handle(ctx context.Context, msg string) error {
	switch {
	case msg == args.Refresh || strings.HasPrefix(msg, args.Refresh+" "):
		f.logger.DebugContext(ctx, "server: handling refresh")
		f.widget.Refresh()
		return nil

	case msg == args.Save:
		f.logger.InfoContext(ctx, "server: handling save")
		return f.persister.Persist()

	case strings.HasPrefix(msg, args.Commit):
		in, err := args.FromEvent(msg)
		if err != nil {
			return err
		}

		text, err := f.widget.Commit(in.Format, in.SuffixPosition)
		if err != nil {
			f.logger.WarnContext(ctx, "server: commit rejected",
				slog.String("condition", dateformat.Condition(err)),
				slog.String("format", in.Format),
				slog.Any("error", err))
			return nil
		}

		f.logger.InfoContext(ctx, "server: commit accepted", slog.String("text", text))

		return f.persister.Persist()
	}

	f.logger.DebugContext(ctx, "server: unhandled message", slog.String("message", msg))
	return nil
}
