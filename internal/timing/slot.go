package timing

import "time"

// Slot holds at most one pending timer for its owner. Scheduling cancels any
// previous timer before installing the new one, so an owner can never have
// two timers in flight.
//
// The zero value is an empty slot ready for use.
type Slot struct {
	timer   Timer
	pending bool
}

// Schedule cancels any pending timer and schedules fn to run after d.
// The callback clears the pending flag before running fn.
func (s *Slot) Schedule(clock Clock, d time.Duration, fn func()) {
	s.Cancel()
	s.pending = true
	s.timer = clock.AfterFunc(d, func() {
		s.pending = false
		fn()
	})
}

// Cancel stops the pending timer, if any. Safe to call repeatedly.
func (s *Slot) Cancel() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.pending = false
}

// Pending reports whether a scheduled callback has not yet run.
func (s *Slot) Pending() bool {
	return s.pending
}
