package event

import (
	"context"
	"time"

	"github.com/flixhummel/mcduterm/internal/logging"
	"github.com/flixhummel/mcduterm/internal/timing"
)

// Loop serializes all work onto a single goroutine. Front-ends and timers
// post closures; Run executes them in arrival order.
type Loop struct {
	jobs chan func()
}

// NewLoop creates a loop with a buffered job queue. Posting never blocks
// the front-end under normal key rates.
func NewLoop() *Loop {
	return &Loop{jobs: make(chan func(), 64)}
}

// Post queues fn for execution on the loop goroutine. Safe to call from any
// goroutine. A full queue drops the job; sustained overflow means the loop
// is stuck, and stalling the front-end would not help.
func (l *Loop) Post(fn func()) {
	select {
	case l.jobs <- fn:
	default:
		logging.Warn("Event loop queue full, job dropped")
	}
}

// Run executes posted jobs until the context is cancelled. It is the only
// goroutine that touches the input subsystem's state.
func (l *Loop) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case fn := <-l.jobs:
			fn()
		}
	}
}

// Clock wraps a clock so timer callbacks fire on the loop goroutine instead
// of the runtime timer goroutine.
func (l *Loop) Clock(base timing.Clock) timing.Clock {
	return loopClock{base: base, loop: l}
}

type loopClock struct {
	base timing.Clock
	loop *Loop
}

func (c loopClock) Now() time.Time {
	return c.base.Now()
}

func (c loopClock) AfterFunc(d time.Duration, fn func()) timing.Timer {
	return c.base.AfterFunc(d, func() {
		c.loop.Post(fn)
	})
}
