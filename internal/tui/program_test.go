package tui

import (
	"testing"
	"time"

	"github.com/flixhummel/mcduterm/internal/dialog"
	"github.com/flixhummel/mcduterm/internal/display"
	"github.com/flixhummel/mcduterm/internal/timing"
)

type nopPublisher struct{}

func (nopPublisher) PublishLine(row int, text string, color display.Color) {}
func (nopPublisher) PublishFull(lines [display.Rows]display.Line)          {}

// TestPageRepaintYieldsToDialog tests that routine page repaints are
// no-ops while a modal dialog owns the screen, and resume after teardown
func TestPageRepaintYieldsToDialog(t *testing.T) {
	clock := timing.NewManualClock(time.Unix(0, 0))
	dlg := dialog.New(clock, nopPublisher{}, func() {})

	repaints := 0
	repaint := pageRepaint(dlg, func() { repaints++ })

	repaint()
	if repaints != 1 {
		t.Fatalf("repaints = %d, want 1 with no dialog up", repaints)
	}

	dlg.ShowHard("REBOOT BRIDGE", "TERMINALS WILL DROP", nil, dialog.Callbacks{})
	repaint()
	if repaints != 1 {
		t.Error("repaint reached the display under an active dialog")
	}

	dlg.HandleResponse(dialog.ResponseHardwareConfirm)
	repaint()
	if repaints != 2 {
		t.Errorf("repaints = %d after dialog teardown, want 2", repaints)
	}
}
