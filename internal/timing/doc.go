// Package timing provides the clock and timer primitives used by the input
// subsystem.
//
// Every timed behavior in the terminal (render debounce, double-CLR window,
// countdown ticks, transient overlay auto-revert) is built on a Clock so that
// tests can drive time manually with ManualClock instead of sleeping.
//
// The Slot type enforces the subsystem's one timer rule: each owner holds at
// most one pending timer, and scheduling always cancels the previous timer
// first. A stale timer can therefore never fire against superseded state.
package timing
