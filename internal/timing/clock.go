package timing

import "time"

// Clock abstracts wall time and one-shot timer creation.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// AfterFunc schedules fn to run once after d elapses and returns the
	// pending timer. Where the callback runs is implementation-defined;
	// the event loop's clock marshals callbacks back onto the loop.
	AfterFunc(d time.Duration, fn func()) Timer
}

// Timer is a pending one-shot timer.
type Timer interface {
	// Stop cancels the timer. It reports whether the timer was still
	// pending; a false return means the callback already ran or was
	// already stopped.
	Stop() bool
}

// SystemClock is a Clock backed by the time package. Callbacks run on their
// own goroutine, so callers that need loop affinity must wrap it (see the
// event package).
type SystemClock struct{}

// Now returns the current wall time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// AfterFunc schedules fn via time.AfterFunc.
func (SystemClock) AfterFunc(d time.Duration, fn func()) Timer {
	return systemTimer{t: time.AfterFunc(d, fn)}
}

type systemTimer struct {
	t *time.Timer
}

func (st systemTimer) Stop() bool {
	return st.t.Stop()
}
