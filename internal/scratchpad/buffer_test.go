package scratchpad

import (
	"strings"
	"testing"
	"time"

	"github.com/flixhummel/mcduterm/internal/display"
	"github.com/flixhummel/mcduterm/internal/timing"
)

// fakePublisher records published lines for assertions.
type fakePublisher struct {
	lines []publishedLine
	full  int
}

type publishedLine struct {
	row   int
	text  string
	color display.Color
}

func (p *fakePublisher) PublishLine(row int, text string, color display.Color) {
	p.lines = append(p.lines, publishedLine{row, text, color})
}

func (p *fakePublisher) PublishFull(lines [display.Rows]display.Line) {
	p.full++
}

func newTestBuffer() (*Buffer, *fakePublisher, *timing.ManualClock, *int) {
	clock := timing.NewManualClock(time.Unix(0, 0))
	pub := &fakePublisher{}
	redraws := 0
	buf := New(clock, pub, func() { redraws++ })
	return buf, pub, clock, &redraws
}

// TestAppendCapacity tests that the buffer never exceeds 20 characters and
// that a rejected append leaves content unchanged
func TestAppendCapacity(t *testing.T) {
	buf, _, _, _ := newTestBuffer()

	for i := 0; i < Capacity; i++ {
		if err := buf.Append('A'); err != nil {
			t.Fatalf("append %d failed: %v", i, err)
		}
	}
	if got := buf.Content(); len(got) != Capacity {
		t.Fatalf("len(content) = %d, want %d", len(got), Capacity)
	}

	before := buf.Content()
	if err := buf.Append('B'); err != ErrBufferFull {
		t.Errorf("append at capacity: err = %v, want ErrBufferFull", err)
	}
	if buf.Content() != before {
		t.Errorf("content mutated by rejected append: %q", buf.Content())
	}
}

// TestAppendResetsAnnotation tests that every keystroke invalidates a prior
// verdict
func TestAppendResetsAnnotation(t *testing.T) {
	buf, _, _, _ := newTestBuffer()
	_ = buf.Append('2')
	buf.SetValid(true, "")
	if buf.Color() != ColorValid {
		t.Fatal("SetValid did not annotate")
	}
	_ = buf.Append('2')
	if buf.Color() != ColorNeutral {
		t.Errorf("Color after append = %v, want neutral", buf.Color())
	}
}

// TestTwoStageRecovery tests that the first clear after an error restores
// the pre-error content and the second clear empties the buffer
func TestTwoStageRecovery(t *testing.T) {
	buf, _, _, _ := newTestBuffer()
	for _, ch := range "99" {
		_ = buf.Append(ch)
	}

	buf.ShowError("ENTRY OUT OF RANGE")
	if !buf.ErrorShowing() {
		t.Fatal("error not showing after ShowError")
	}
	if buf.Content() != "ENTRY OUT OF RANGE" {
		t.Errorf("content = %q, want error token", buf.Content())
	}

	buf.Clear()
	if buf.ErrorShowing() {
		t.Error("error still showing after first clear")
	}
	if buf.Content() != "99" {
		t.Errorf("content after first clear = %q, want %q", buf.Content(), "99")
	}

	buf.Clear()
	if buf.Content() != "" {
		t.Errorf("content after second clear = %q, want empty", buf.Content())
	}
}

// TestFullWarnLatch tests the edge-triggered buffer-full warning
func TestFullWarnLatch(t *testing.T) {
	buf, _, _, _ := newTestBuffer()

	if !buf.WarnFull() {
		t.Error("first WarnFull = false, want true")
	}
	if buf.WarnFull() {
		t.Error("second WarnFull = true, want false")
	}

	// Restoring from an error is not a real clear; the latch holds.
	buf.ShowError("BUFFER FULL")
	buf.Clear()
	if buf.WarnFull() {
		t.Error("WarnFull reset by error-restore clear")
	}

	// A real clear resets the latch.
	buf.Clear()
	if !buf.WarnFull() {
		t.Error("WarnFull not reset by real clear")
	}
}

// TestTypingOverError tests that a keystroke on a shown error restores the
// saved text before appending
func TestTypingOverError(t *testing.T) {
	buf, _, _, _ := newTestBuffer()
	_ = buf.Append('2')
	buf.ShowError("FORMAT ERROR")

	if err := buf.Append('5'); err != nil {
		t.Fatalf("append over error: %v", err)
	}
	if buf.ErrorShowing() {
		t.Error("error still showing after typing")
	}
	if buf.Content() != "25" {
		t.Errorf("content = %q, want %q", buf.Content(), "25")
	}
}

// TestRenderDebounce tests that only the last render in a burst publishes
func TestRenderDebounce(t *testing.T) {
	buf, pub, clock, _ := newTestBuffer()

	for _, ch := range "ABC" {
		_ = buf.Append(ch)
		buf.Render()
	}
	if len(pub.lines) != 0 {
		t.Fatalf("published before debounce elapsed: %d lines", len(pub.lines))
	}

	clock.Advance(RenderDebounce)
	if len(pub.lines) != 1 {
		t.Fatalf("published %d lines, want 1", len(pub.lines))
	}
	got := pub.lines[0]
	if got.row != display.ScratchpadRow {
		t.Errorf("row = %d, want %d", got.row, display.ScratchpadRow)
	}
	if !strings.HasPrefix(got.text, "ABC_") {
		t.Errorf("text = %q, want ABC with entry marker", got.text)
	}
}

// TestRenderEmptyPlaceholder tests the all-placeholder form of an empty buffer
func TestRenderEmptyPlaceholder(t *testing.T) {
	buf, pub, clock, _ := newTestBuffer()
	buf.Render()
	clock.Advance(RenderDebounce)

	if len(pub.lines) != 1 {
		t.Fatalf("published %d lines, want 1", len(pub.lines))
	}
	if pub.lines[0].text != strings.Repeat("-", display.Cols) {
		t.Errorf("empty form = %q", pub.lines[0].text)
	}
}

// TestFlashOverlayRevert tests that transient overlays auto-revert by asking
// the page renderer to redraw
func TestFlashOverlayRevert(t *testing.T) {
	buf, pub, clock, redraws := newTestBuffer()

	buf.FlashError("WRITE FAILED")
	if len(pub.lines) != 1 || pub.lines[0].row != display.OverlayRow {
		t.Fatalf("overlay not published: %+v", pub.lines)
	}
	if pub.lines[0].color != display.ColorAmber {
		t.Errorf("overlay color = %v, want amber", pub.lines[0].color)
	}

	clock.Advance(ErrorOverlayDuration - time.Millisecond)
	if *redraws != 0 {
		t.Fatal("reverted early")
	}
	clock.Advance(time.Millisecond)
	if *redraws != 1 {
		t.Errorf("redraws = %d, want 1", *redraws)
	}

	// A success flash right after an error flash supersedes its revert
	// timer; only one redraw follows.
	buf.FlashError("WRITE FAILED")
	buf.FlashSuccess("DONE")
	clock.Advance(10 * time.Second)
	if *redraws != 2 {
		t.Errorf("redraws = %d, want 2 (one per surviving overlay)", *redraws)
	}
}

// TestSetMarksEditing tests copy-existing-value-for-edit coloring
func TestSetMarksEditing(t *testing.T) {
	buf, _, _, _ := newTestBuffer()
	buf.Set("21.5")
	if buf.Content() != "21.5" {
		t.Errorf("content = %q", buf.Content())
	}
	if buf.Color() != ColorEditing {
		t.Errorf("color = %v, want editing", buf.Color())
	}
}
