package datapoint

import (
	"context"
	"testing"
)

func numPtr(f float64) *float64 { return &f }

func newTestStore() *MemStore {
	s := NewMemStore()
	s.Define("cabin.temp.setpoint",
		Metadata{Writable: true, Type: TypeNumber, Min: numPtr(16), Max: numPtr(30), Unit: "C"},
		NumberValue(21),
	)
	s.Define("cabin.lights.main",
		Metadata{Writable: true, Type: TypeBoolean},
		BoolValue(false),
	)
	s.Define("system.serial",
		Metadata{Writable: false, Type: TypeString},
		StringValue("MCDU-01"),
	)
	return s
}

// TestMemStoreGetSet tests basic read/write behavior
func TestMemStoreGetSet(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	v, err := s.Get(ctx, "cabin.temp.setpoint")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if v.Number != 21 {
		t.Errorf("Number = %v, want 21", v.Number)
	}

	if err := s.Set(ctx, "cabin.temp.setpoint", NumberValue(22.5)); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	v, _ = s.Get(ctx, "cabin.temp.setpoint")
	if v.Number != 22.5 {
		t.Errorf("Number after Set = %v, want 22.5", v.Number)
	}
}

// TestMemStoreUnknownAddress tests that missing datapoints classify as not found
func TestMemStoreUnknownAddress(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	_, err := s.Get(ctx, "no.such.addr")
	if !IsNotFound(err) {
		t.Errorf("Get unknown addr: err = %v, want not-found", err)
	}
	_, err = s.Metadata(ctx, "no.such.addr")
	if !IsNotFound(err) {
		t.Errorf("Metadata unknown addr: err = %v, want not-found", err)
	}
}

// TestMemStoreReadOnly tests that writes to read-only datapoints are rejected
func TestMemStoreReadOnly(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	err := s.Set(ctx, "system.serial", StringValue("HACKED"))
	if !IsNotWritable(err) {
		t.Errorf("Set read-only: err = %v, want not-writable", err)
	}

	v, _ := s.Get(ctx, "system.serial")
	if v.Text != "MCDU-01" {
		t.Errorf("value changed by rejected write: %q", v.Text)
	}
}

// TestMemStoreToggle tests boolean toggling and non-boolean rejection
func TestMemStoreToggle(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	if err := s.Toggle(ctx, "cabin.lights.main"); err != nil {
		t.Fatalf("Toggle error: %v", err)
	}
	v, _ := s.Get(ctx, "cabin.lights.main")
	if !v.Bool {
		t.Error("Bool = false after toggle, want true")
	}

	if err := s.Toggle(ctx, "cabin.temp.setpoint"); err == nil {
		t.Error("Toggle on number datapoint succeeded, want rejection")
	}
}

// TestMemStoreWatch tests that watchers observe successful writes
func TestMemStoreWatch(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	var gotAddr string
	var gotValue Value
	s.Watch(func(addr string, v Value) {
		gotAddr = addr
		gotValue = v
	})

	if err := s.Toggle(ctx, "cabin.lights.main"); err != nil {
		t.Fatalf("Toggle error: %v", err)
	}
	if gotAddr != "cabin.lights.main" {
		t.Errorf("watcher addr = %q", gotAddr)
	}
	if gotValue.Type != TypeBoolean || !gotValue.Bool {
		t.Errorf("watcher value = %+v", gotValue)
	}
}
