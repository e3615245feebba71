package ticker

import (
	"sync"
	"time"

	"github.com/lucax88x/datetoday/internal/clock"
)

const minute = 60 * time.Second

// NextDelay returns the time left until the next whole minute, at
// millisecond resolution. Exactly on a boundary it is a full minute.
func NextDelay(now time.Time) time.Duration {
	elapsed := time.Duration(now.Second())*time.Second +
		time.Duration(now.Nanosecond()/int(time.Millisecond))*time.Millisecond

	return minute - elapsed
}

// MinuteTicker delivers a tick at every minute boundary of the wall clock.
// Each fire arms a fresh one-shot timer computed from the current time, so
// dispatch latency and clock changes never accumulate.
type MinuteTicker struct {
	clock clock.Clock
	ch    chan time.Time

	mu      sync.Mutex
	timer   clock.Timer
	next    time.Time
	stopped bool
}

func NewMinuteTicker(c clock.Clock) *MinuteTicker {
	t := &MinuteTicker{
		clock: c,
		ch:    make(chan time.Time, 1),
	}

	t.mu.Lock()
	t.arm(c.Now())
	t.mu.Unlock()

	return t
}

// C is the channel ticks are delivered on. A tick that finds the previous
// one still undrained is dropped.
func (t *MinuteTicker) C() <-chan time.Time {
	return t.ch
}

// Next is the wall-clock time the pending timer is due.
func (t *MinuteTicker) Next() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.next
}

func (t *MinuteTicker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stopped {
		return
	}
	t.stopped = true

	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}

	// fire sends under t.mu, so nothing can be queued after this drain
	select {
	case <-t.ch:
	default:
	}
}

// must hold t.mu
func (t *MinuteTicker) arm(now time.Time) {
	delay := NextDelay(now)
	t.next = now.Add(delay)
	t.timer = t.clock.AfterFunc(delay, t.fire)
}

func (t *MinuteTicker) fire() {
	t.mu.Lock()
	if t.stopped {
		t.mu.Unlock()
		return
	}

	defer t.mu.Unlock()

	now := t.clock.Now()
	t.arm(now)

	select {
	case t.ch <- now:
	default:
	}
}
