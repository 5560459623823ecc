package timing

import (
	"testing"
	"time"
)

// TestSlotSchedule tests that a scheduled callback fires when time advances
func TestSlotSchedule(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))
	var slot Slot

	fired := 0
	slot.Schedule(clock, 80*time.Millisecond, func() { fired++ })

	if !slot.Pending() {
		t.Fatal("expected slot to be pending after Schedule")
	}

	clock.Advance(79 * time.Millisecond)
	if fired != 0 {
		t.Errorf("callback fired too early: fired = %d", fired)
	}

	clock.Advance(1 * time.Millisecond)
	if fired != 1 {
		t.Errorf("callback not fired at deadline: fired = %d", fired)
	}
	if slot.Pending() {
		t.Error("slot still pending after fire")
	}
}

// TestSlotRescheduleCancelsPrevious tests the one-timer-per-owner rule
func TestSlotRescheduleCancelsPrevious(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))
	var slot Slot

	first := 0
	second := 0
	slot.Schedule(clock, 50*time.Millisecond, func() { first++ })
	slot.Schedule(clock, 50*time.Millisecond, func() { second++ })

	clock.Advance(200 * time.Millisecond)

	if first != 0 {
		t.Errorf("superseded callback fired %d times, want 0", first)
	}
	if second != 1 {
		t.Errorf("current callback fired %d times, want 1", second)
	}
	if clock.PendingCount() != 0 {
		t.Errorf("PendingCount = %d, want 0", clock.PendingCount())
	}
}

// TestSlotCancel tests that Cancel stops the pending timer and is idempotent
func TestSlotCancel(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))
	var slot Slot

	fired := 0
	slot.Schedule(clock, 10*time.Millisecond, func() { fired++ })
	slot.Cancel()
	slot.Cancel()

	clock.Advance(time.Second)
	if fired != 0 {
		t.Errorf("cancelled callback fired %d times, want 0", fired)
	}
	if slot.Pending() {
		t.Error("slot pending after Cancel")
	}
}

// TestManualClockOrdering tests that due timers fire in deadline order
func TestManualClockOrdering(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))

	var order []string
	clock.AfterFunc(30*time.Millisecond, func() { order = append(order, "c") })
	clock.AfterFunc(10*time.Millisecond, func() { order = append(order, "a") })
	clock.AfterFunc(20*time.Millisecond, func() { order = append(order, "b") })

	clock.Advance(time.Second)

	want := "abc"
	got := ""
	for _, s := range order {
		got += s
	}
	if got != want {
		t.Errorf("fire order = %q, want %q", got, want)
	}
}

// TestManualClockNestedSchedule tests that a callback scheduling a new timer
// within the advanced window fires during the same Advance
func TestManualClockNestedSchedule(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))

	nested := 0
	clock.AfterFunc(10*time.Millisecond, func() {
		clock.AfterFunc(10*time.Millisecond, func() { nested++ })
	})

	clock.Advance(25 * time.Millisecond)
	if nested != 1 {
		t.Errorf("nested callback fired %d times, want 1", nested)
	}
	if got := clock.Now(); !got.Equal(time.Unix(0, 0).Add(25 * time.Millisecond)) {
		t.Errorf("Now = %v, want start+25ms", got)
	}
}
