package console

import (
	"context"
	"fmt"
	"io"
	"sync"
)

type Console struct {
	Stdout io.Writer
	Stderr io.Writer

	mu sync.Mutex
}

// SetText prints the widget text as a line on stdout, which makes the
// console a display surface for terminals and status-line scripts.
func (c *Console) SetText(_ context.Context, text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := fmt.Fprintln(c.Stdout, text); err != nil {
		return fmt.Errorf("console: could not write text. %w", err)
	}

	return nil
}
