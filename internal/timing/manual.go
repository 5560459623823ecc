package timing

import (
	"sort"
	"time"
)

// ManualClock is a Clock for tests. Time only moves when Advance is called,
// and due callbacks run synchronously on the calling goroutine in deadline
// order, which matches the single-threaded event loop the subsystem runs on.
type ManualClock struct {
	now    time.Time
	timers []*manualTimer
}

type manualTimer struct {
	clock    *ManualClock
	deadline time.Time
	fn       func()
	stopped  bool
	fired    bool
}

// NewManualClock creates a manual clock starting at the given time.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the clock's current time.
func (c *ManualClock) Now() time.Time {
	return c.now
}

// AfterFunc registers fn to run when the clock is advanced past d from now.
func (c *ManualClock) AfterFunc(d time.Duration, fn func()) Timer {
	t := &manualTimer{
		clock:    c,
		deadline: c.now.Add(d),
		fn:       fn,
	}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves the clock forward by d, firing due timers in deadline order.
// Callbacks may schedule further timers; those fire too if they fall within
// the advanced window.
func (c *ManualClock) Advance(d time.Duration) {
	target := c.now.Add(d)
	for {
		next := c.nextDue(target)
		if next == nil {
			break
		}
		// Move time to the timer's deadline before firing so callbacks
		// observe a consistent Now.
		if next.deadline.After(c.now) {
			c.now = next.deadline
		}
		next.fired = true
		next.fn()
	}
	c.now = target
}

// PendingCount returns the number of timers that have neither fired nor been
// stopped. Useful for asserting cancel-before-reschedule behavior.
func (c *ManualClock) PendingCount() int {
	n := 0
	for _, t := range c.timers {
		if !t.fired && !t.stopped {
			n++
		}
	}
	return n
}

func (c *ManualClock) nextDue(limit time.Time) *manualTimer {
	var due []*manualTimer
	for _, t := range c.timers {
		if !t.fired && !t.stopped && !t.deadline.After(limit) {
			due = append(due, t)
		}
	}
	if len(due) == 0 {
		return nil
	}
	sort.SliceStable(due, func(i, j int) bool {
		return due[i].deadline.Before(due[j].deadline)
	})
	return due[0]
}

func (t *manualTimer) Stop() bool {
	if t.fired || t.stopped {
		return false
	}
	t.stopped = true
	return true
}
