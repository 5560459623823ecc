package datapoint

import (
	"context"
	"net"
	"testing"
	"time"
)

// TestConnectRefusedRetryable tests that a refused dial comes back as a
// retryable network error once the retry attempts are exhausted
func TestConnectRefusedRetryable(t *testing.T) {
	// Grab a loopback port with nothing listening on it.
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen failed: %v", err)
	}
	addr := l.Addr().String()
	_ = l.Close()

	c := NewClient("ws://" + addr + "/ws")
	c.RetryDelay = time.Millisecond

	err = c.Connect(context.Background())
	if err == nil {
		t.Fatal("Connect succeeded against a closed port")
	}
	if !IsRetryable(err) {
		t.Errorf("error not classified retryable: %v", err)
	}
}

// TestConnectStopsOnContextCancel tests that a cancelled context ends the
// retry loop instead of sleeping through the remaining attempts
func TestConnectStopsOnContextCancel(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen failed: %v", err)
	}
	addr := l.Addr().String()
	_ = l.Close()

	c := NewClient("ws://" + addr + "/ws")
	c.RetryDelay = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan error, 1)
	go func() { done <- c.Connect(ctx) }()
	select {
	case err := <-done:
		if err == nil {
			t.Error("Connect succeeded with a cancelled context")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Connect still retrying after context cancel")
	}
}
