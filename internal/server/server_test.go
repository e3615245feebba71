package server_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucax88x/datetoday/internal/dateformat"
	"github.com/lucax88x/datetoday/internal/server"
)

type fakeWidget struct {
	mu        sync.Mutex
	refreshes int
	commits   []string
	err       error
}

func (w *fakeWidget) Commit(pattern string, _ *int) (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.err != nil {
		return "", w.err
	}

	w.commits = append(w.commits, pattern)
	return pattern, nil
}

func (w *fakeWidget) Refresh() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.refreshes++
}

func (w *fakeWidget) counts() (int, int) {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.refreshes, len(w.commits)
}

type fakePersister struct {
	mu    sync.Mutex
	calls int
}

func (p *fakePersister) Persist() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.calls++
	return nil
}

func (p *fakePersister) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.calls
}

type fakeListener struct {
	messages []string
	err      error
	calls    int
}

func (l *fakeListener) Listen(ctx context.Context, _ string, ch chan<- string) error {
	l.calls++

	if l.err != nil {
		return l.err
	}

	for _, msg := range l.messages {
		ch <- msg
	}

	<-ctx.Done()
	return ctx.Err()
}

func newServer(listener server.Listener, widget *fakeWidget, persister *fakePersister) *server.FifoServer {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return server.NewFifoServer(logger, listener, "/tmp/unused.fifo", widget, persister).
		WithRetry(2, time.Millisecond)
}

func TestHandleRefresh(t *testing.T) {
	widget := &fakeWidget{}
	srv := newServer(&fakeListener{}, widget, &fakePersister{})

	require.NoError(t, srv.Handle(context.Background(), "refresh"))
	require.NoError(t, srv.Handle(context.Background(), "refresh from system_woke"))

	refreshes, _ := widget.counts()
	assert.Equal(t, 2, refreshes)
}

func TestHandleCommitPersists(t *testing.T) {
	widget := &fakeWidget{}
	persister := &fakePersister{}
	srv := newServer(&fakeListener{}, widget, persister)

	require.NoError(t, srv.Handle(context.Background(), `commit args: {"format":"yyyy","suffix_position":0}`))

	assert.Equal(t, []string{"yyyy"}, widget.commits)
	assert.Equal(t, 1, persister.count())
}

func TestHandleRejectedCommitDoesNotPersist(t *testing.T) {
	widget := &fakeWidget{err: dateformat.ErrEmptyPattern}
	persister := &fakePersister{}
	srv := newServer(&fakeListener{}, widget, persister)

	require.NoError(t, srv.Handle(context.Background(), `commit args: {"format":" "}`))

	assert.Equal(t, 0, persister.count())
}

func TestHandleMalformedCommit(t *testing.T) {
	srv := newServer(&fakeListener{}, &fakeWidget{}, &fakePersister{})

	assert.Error(t, srv.Handle(context.Background(), "commit args: {"))
}

func TestHandleSaveAndUnknown(t *testing.T) {
	persister := &fakePersister{}
	srv := newServer(&fakeListener{}, &fakeWidget{}, persister)

	require.NoError(t, srv.Handle(context.Background(), "save"))
	require.NoError(t, srv.Handle(context.Background(), "bogus"))

	assert.Equal(t, 1, persister.count())
}

func TestStartDispatchesMessagesUntilCancelled(t *testing.T) {
	widget := &fakeWidget{}
	persister := &fakePersister{}
	listener := &fakeListener{messages: []string{"refresh", `commit args: {"format":"d"}`}}
	srv := newServer(listener, widget, persister)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() { done <- srv.Start(ctx) }()

	assert.Eventually(t, func() bool {
		refreshes, commits := widget.counts()
		return refreshes == 1 && commits == 1
	}, time.Second, time.Millisecond)

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("server did not stop")
	}

	assert.Equal(t, 1, persister.count())
}

func TestStartGivesUpAfterRetries(t *testing.T) {
	listener := &fakeListener{err: errors.New("no pipe")}
	srv := newServer(listener, &fakeWidget{}, &fakePersister{})

	err := srv.Start(context.Background())

	require.Error(t, err)
	assert.ErrorContains(t, err, "no pipe")
	assert.Equal(t, 2, listener.calls)
}
