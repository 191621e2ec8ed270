package generation

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"
)

// idleTimer cancels a stream's context when a single read waits longer than
// d. A zero d disables it.
type idleTimer struct {
	d      time.Duration
	cancel context.CancelFunc
	timer  *time.Timer
	fired  atomic.Bool
}

func newIdleTimer(d time.Duration, cancel context.CancelFunc) *idleTimer {
	return &idleTimer{d: d, cancel: cancel}
}

// arm starts or restarts the countdown before a blocking read.
func (t *idleTimer) arm() {
	if t.d <= 0 {
		return
	}
	if t.timer == nil {
		t.timer = time.AfterFunc(t.d, t.expire)
		return
	}
	t.timer.Reset(t.d)
}

// disarm stops the countdown once a read returns.
func (t *idleTimer) disarm() {
	if t.timer != nil {
		t.timer.Stop()
	}
}

func (t *idleTimer) expire() {
	t.fired.Store(true)
	t.cancel()
}

func (t *idleTimer) expired() bool {
	return t.fired.Load()
}

// readError reports caller cancellation first, then an idle timeout, and
// only then the underlying transport error.
func readError(parent context.Context, timer *idleTimer, err error, what string) error {
	if ctxErr := parent.Err(); ctxErr != nil {
		return ctxErr
	}
	if timer.expired() {
		return ErrReadTimeout
	}
	return fmt.Errorf("%s: %w", what, err)
}
