package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/flixhummel/mcduterm/internal/datapoint"
	"github.com/flixhummel/mcduterm/internal/protocol"
)

// dialTestServer starts a simulator behind httptest and dials it.
func dialTestServer(t *testing.T) (*Server, *websocket.Conn) {
	t.Helper()
	srv, err := New(&Config{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	ts := httptest.NewServer(http.HandlerFunc(srv.handleUpgrade))
	t.Cleanup(ts.Close)

	url := "ws" + strings.TrimPrefix(ts.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return srv, conn
}

func roundTrip(t *testing.T, conn *websocket.Conn, req *protocol.Message) *protocol.Message {
	t.Helper()
	if err := conn.WriteJSON(req); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	for {
		var resp protocol.Message
		if err := conn.ReadJSON(&resp); err != nil {
			t.Fatalf("read failed: %v", err)
		}
		// Skip unsolicited updates; we want the numbered reply.
		if resp.Op == protocol.OpUpdate {
			continue
		}
		return &resp
	}
}

// TestSessionGetReply tests that a get request returns the seeded value
func TestSessionGetReply(t *testing.T) {
	_, conn := dialTestServer(t)

	resp := roundTrip(t, conn, &protocol.Message{
		Op: protocol.OpGet, Seq: 1, Addr: "cabin.temp.setpoint",
	})
	if resp.Op != protocol.OpReply || resp.Seq != 1 {
		t.Fatalf("resp = %+v, want reply seq 1", resp)
	}
	if resp.Value == nil || resp.Value.Number == nil || *resp.Value.Number != 21.5 {
		t.Errorf("value = %+v, want 21.5", resp.Value)
	}
}

// TestSessionSetAndToggle tests write and toggle round trips against the
// store
func TestSessionSetAndToggle(t *testing.T) {
	srv, conn := dialTestServer(t)

	n := 25.0
	resp := roundTrip(t, conn, &protocol.Message{
		Op: protocol.OpSet, Seq: 2, Addr: "cabin.temp.setpoint",
		Value: &protocol.WireValue{Type: "number", Number: &n, Quality: "good"},
	})
	if resp.Op != protocol.OpReply {
		t.Fatalf("set resp = %+v", resp)
	}
	v, err := srv.Store().Get(context.Background(), "cabin.temp.setpoint")
	if err != nil || v.Number != 25.0 {
		t.Errorf("store value = %v (%v), want 25", v.Number, err)
	}

	resp = roundTrip(t, conn, &protocol.Message{
		Op: protocol.OpToggle, Seq: 3, Addr: "cabin.fan.enabled",
	})
	if resp.Op != protocol.OpReply || resp.Value == nil || resp.Value.Bool == nil || !*resp.Value.Bool {
		t.Errorf("toggle resp = %+v, want bool true", resp)
	}
}

// TestSessionMetaReply tests that metadata round-trips with limits intact
func TestSessionMetaReply(t *testing.T) {
	_, conn := dialTestServer(t)

	resp := roundTrip(t, conn, &protocol.Message{
		Op: protocol.OpMeta, Seq: 4, Addr: "cabin.temp.setpoint",
	})
	if resp.Meta == nil {
		t.Fatalf("resp = %+v, want meta", resp)
	}
	if !resp.Meta.Writable || resp.Meta.Type != "number" {
		t.Errorf("meta = %+v", resp.Meta)
	}
	if resp.Meta.Min == nil || *resp.Meta.Min != 15 || resp.Meta.Max == nil || *resp.Meta.Max != 30 {
		t.Errorf("limits = %v..%v, want 15..30", resp.Meta.Min, resp.Meta.Max)
	}
}

// TestSessionErrors tests that bad requests produce error frames and leave
// the session usable
func TestSessionErrors(t *testing.T) {
	_, conn := dialTestServer(t)

	resp := roundTrip(t, conn, &protocol.Message{
		Op: protocol.OpGet, Seq: 5, Addr: "no.such.datapoint",
	})
	if resp.Op != protocol.OpError || !resp.NotFound {
		t.Errorf("resp = %+v, want not-found error", resp)
	}

	resp = roundTrip(t, conn, &protocol.Message{
		Op: protocol.OpSet, Seq: 6, Addr: "system.serial",
		Value: &protocol.WireValue{Type: "string", Text: strPtr("X"), Quality: "good"},
	})
	if resp.Op != protocol.OpError || resp.NotFound || !resp.NotWritable {
		t.Errorf("resp = %+v, want not-writable error", resp)
	}

	// The session survives: a normal request still works.
	resp = roundTrip(t, conn, &protocol.Message{
		Op: protocol.OpGet, Seq: 7, Addr: "system.serial",
	})
	if resp.Op != protocol.OpReply {
		t.Errorf("resp after errors = %+v", resp)
	}
}

// TestUpdateBroadcast tests that a write from one session is pushed to
// another
func TestUpdateBroadcast(t *testing.T) {
	srv, conn := dialTestServer(t)
	_ = conn

	// Second terminal on the same simulator.
	ts := httptest.NewServer(http.HandlerFunc(srv.handleUpgrade))
	defer ts.Close()
	url := "ws" + strings.TrimPrefix(ts.URL, "http")
	watcher, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer watcher.Close()

	n := 60.0
	if err := conn.WriteJSON(&protocol.Message{
		Op: protocol.OpSet, Seq: 8, Addr: "cabin.fan.speed",
		Value: &protocol.WireValue{Type: "number", Number: &n, Quality: "good"},
	}); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	_ = watcher.SetReadDeadline(time.Now().Add(5 * time.Second))
	for {
		var msg protocol.Message
		if err := watcher.ReadJSON(&msg); err != nil {
			t.Fatalf("watcher read failed: %v", err)
		}
		if msg.Op == protocol.OpUpdate && msg.Addr == "cabin.fan.speed" {
			if msg.Value == nil || msg.Value.Number == nil || *msg.Value.Number != 60 {
				t.Errorf("update value = %+v, want 60", msg.Value)
			}
			return
		}
	}
}

// TestClientNotWritableClassification tests that the full client maps a
// write rejection on a read-only datapoint to a typed not-writable error
func TestClientNotWritableClassification(t *testing.T) {
	srv, err := New(&Config{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	ts := httptest.NewServer(http.HandlerFunc(srv.handleUpgrade))
	t.Cleanup(ts.Close)
	url := "ws" + strings.TrimPrefix(ts.URL, "http")

	client := datapoint.NewClient(url)
	if err := client.Connect(context.Background()); err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })

	// Prime the metadata cache before the rejected write.
	meta, err := client.Metadata(context.Background(), "cabin.temp.actual")
	if err != nil {
		t.Fatalf("Metadata failed: %v", err)
	}
	if meta.Writable {
		t.Fatal("cabin.temp.actual seeded writable")
	}

	err = client.Set(context.Background(), "cabin.temp.actual", datapoint.NumberValue(99))
	if !datapoint.IsNotWritable(err) {
		t.Errorf("Set error = %v, want not-writable classification", err)
	}
}

func strPtr(s string) *string { return &s }
