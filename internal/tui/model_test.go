package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/flixhummel/mcduterm/internal/display"
	"github.com/flixhummel/mcduterm/internal/event"
	"github.com/flixhummel/mcduterm/internal/inputmode"
)

func collectEvents() (*[]event.Event, func(event.Event)) {
	var events []event.Event
	return &events, func(ev event.Event) { events = append(events, ev) }
}

// TestLSKRowMapping tests the F-key to line-select row mapping
func TestLSKRowMapping(t *testing.T) {
	cases := []struct {
		key  string
		want int
	}{
		{"f1", 1}, {"f6", 6}, {"f7", 1}, {"f12", 6}, {"f13", 0}, {"a", 0},
	}
	for _, tc := range cases {
		if got := lskRow(tc.key); got != tc.want {
			t.Errorf("lskRow(%q) = %d, want %d", tc.key, got, tc.want)
		}
	}
}

// TestKeyEventsPosted tests that hardware-key stand-ins become events
func TestKeyEventsPosted(t *testing.T) {
	events, post := collectEvents()
	m := NewModel(post)

	m.Update(tea.KeyMsg{Type: tea.KeyF1})
	m.Update(tea.KeyMsg{Type: tea.KeyF9})
	m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	want := []event.Event{
		event.LSKEvent{Side: inputmode.SideLeft, Row: 1},
		event.LSKEvent{Side: inputmode.SideRight, Row: 3},
		event.CLREvent{},
		event.ConfirmEvent{},
	}
	if len(*events) != len(want) {
		t.Fatalf("events = %v, want %v", *events, want)
	}
	for i, ev := range want {
		if (*events)[i] != ev {
			t.Errorf("event[%d] = %v, want %v", i, (*events)[i], ev)
		}
	}
}

// TestRunesUpcased tests that typed characters are upcased before posting
func TestRunesUpcased(t *testing.T) {
	events, post := collectEvents()
	m := NewModel(post)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a2")})

	if len(*events) != 2 {
		t.Fatalf("events = %v, want 2", *events)
	}
	if (*events)[0] != (event.KeyCharEvent{Char: 'A'}) {
		t.Errorf("event[0] = %v, want upcased A", (*events)[0])
	}
	if (*events)[1] != (event.KeyCharEvent{Char: '2'}) {
		t.Errorf("event[1] = %v", (*events)[1])
	}
}

// TestLineMsgUpdatesGrid tests that published rows land in the grid
func TestLineMsgUpdatesGrid(t *testing.T) {
	_, post := collectEvents()
	m := NewModel(post)

	updated, _ := m.Update(LineMsg{Row: 13, Text: "21.5_", Color: display.ColorCyan})
	m = updated.(Model)
	if m.grid[13].Text != "21.5_" || m.grid[13].Color != display.ColorCyan {
		t.Errorf("grid[13] = %+v", m.grid[13])
	}

	// Out-of-range rows are dropped, not panicked on.
	updated, _ = m.Update(LineMsg{Row: 14, Text: "X"})
	m = updated.(Model)

	var full [display.Rows]display.Line
	full[0] = display.Line{Text: "CABIN", Color: display.ColorWhite}
	updated, _ = m.Update(FullMsg{Lines: full})
	m = updated.(Model)
	if m.grid[0].Text != "CABIN" {
		t.Errorf("grid[0] = %+v", m.grid[0])
	}
	if m.grid[13].Text != "" {
		t.Errorf("full repaint kept stale row: %+v", m.grid[13])
	}
}

// TestPublisherBuffersBeforeAttach tests that rows published early are not
// lost
func TestPublisherBuffersBeforeAttach(t *testing.T) {
	p := NewPublisher()
	p.PublishLine(0, "HOME", display.ColorWhite)

	p.mu.Lock()
	n := len(p.pending)
	p.mu.Unlock()
	if n != 1 {
		t.Errorf("pending = %d, want 1", n)
	}
}
