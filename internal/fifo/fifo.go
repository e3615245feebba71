package fifo

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"syscall"

	"github.com/lucax88x/datetoday/internal/encoding"
)

// Separator ends every message written to the FIFO.
const Separator = '¬'

//nolint:gochecknoglobals // ok
var separatorBytes = []byte(string(Separator))

type Reader struct {
	logger *slog.Logger
}

func NewFifoReader(logger *slog.Logger) *Reader {
	return &Reader{
		logger,
	}
}

func (f *Reader) makeSureFifoExists(path string) error {
	stat, err := os.Stat(path)
	if err == nil {
		if stat.Mode()&os.ModeNamedPipe != 0 {
			return nil
		}

		f.logger.Warn(
			"fifo: path exists but is not a named pipe, replacing it",
			slog.String("path", path),
		)
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("fifo: could not remove existing file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("fifo: could not stat file: %w", err)
	}

	if err := syscall.Mkfifo(path, 0o640); err != nil {
		return fmt.Errorf("fifo: could not create fifo file: %w", err)
	}

	f.logger.Info("fifo: created fifo file", slog.String("path", path))

	return nil
}

func (f *Reader) Start(path string) error {
	if err := f.makeSureFifoExists(path); err != nil {
		return fmt.Errorf("fifo: error creating file: %w", err)
	}
	return nil
}

// Listen forwards every message written to the FIFO at path to ch until
// ctx is done. The pipe is opened read-write so that writers coming and
// going never produce EOF.
func (f *Reader) Listen(
	ctx context.Context,
	path string,
	ch chan<- string,
) error {
	if err := f.makeSureFifoExists(path); err != nil {
		return err
	}

	pipe, err := os.OpenFile(path, os.O_RDWR|syscall.O_NONBLOCK, os.ModeNamedPipe)
	if err != nil {
		return fmt.Errorf("fifo: error opening for reading: %w", err)
	}

	stop := make(chan struct{})
	defer close(stop)

	go func() {
		select {
		case <-ctx.Done():
		case <-stop:
		}
		_ = pipe.Close()
	}()

	f.logger.InfoContext(ctx, "fifo: listening", slog.String("path", path))

	reader := bufio.NewReader(pipe)

	for {
		line, readErr := readMessage(reader)

		if readErr != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if errors.Is(readErr, os.ErrClosed) {
				return nil
			}
			return fmt.Errorf("fifo: read error: %w", readErr)
		}

		msg, err := encoding.DecodeMessage(line, Separator)
		if err != nil {
			f.logger.WarnContext(ctx, "fifo: could not decode message, dropping it", slog.Any("error", err))
			continue
		}

		if msg == "" {
			continue
		}

		select {
		case ch <- msg:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// readMessage reads up to and including the UTF-8 encoded separator. The
// separator's last byte can also be a continuation byte of other runes, so
// a match on it alone is not enough.
func readMessage(reader *bufio.Reader) ([]byte, error) {
	var message []byte
	tail := separatorBytes[len(separatorBytes)-1]

	for {
		chunk, err := reader.ReadBytes(tail)
		message = append(message, chunk...)

		if err != nil {
			return message, err
		}

		if bytes.HasSuffix(message, separatorBytes) {
			return message, nil
		}
	}
}

// Send writes one message to the FIFO at path. It fails when nobody is
// reading, instead of blocking.
func Send(path string, msg string) error {
	pipe, err := os.OpenFile(path, os.O_WRONLY|syscall.O_NONBLOCK, os.ModeNamedPipe)
	if err != nil {
		return fmt.Errorf("fifo: could not open for writing: %w", err)
	}

	defer pipe.Close()

	if _, err := pipe.WriteString(msg + string(Separator) + "\n"); err != nil {
		return fmt.Errorf("fifo: could not write message: %w", err)
	}

	return nil
}

func Remove(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("fifo: could not remove fifo: %w", err)
	}

	return nil
}
