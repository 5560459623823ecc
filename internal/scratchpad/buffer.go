package scratchpad

import (
	"errors"
	"strings"
	"time"

	"github.com/flixhummel/mcduterm/internal/display"
	"github.com/flixhummel/mcduterm/internal/logging"
	"github.com/flixhummel/mcduterm/internal/timing"
	"go.uber.org/zap"
)

const (
	// Capacity is the maximum number of characters the buffer holds.
	Capacity = 20

	// RenderDebounce coalesces renders within a keystroke burst. Only the
	// final render of a burst reaches the display.
	RenderDebounce = 80 * time.Millisecond

	// ErrorOverlayDuration is how long a transient error overlay stays up.
	ErrorOverlayDuration = 3 * time.Second

	// SuccessOverlayDuration is how long a transient success overlay stays up.
	SuccessOverlayDuration = 2 * time.Second

	// entryMarker trails the typed text on the display line.
	entryMarker = "_"
)

// emptyForm is what the scratchpad line shows when the buffer is empty.
var emptyForm = strings.Repeat("-", display.Cols)

// ErrBufferFull is returned by Append when the buffer is at capacity. The
// attempted character is discarded and the content left unchanged.
var ErrBufferFull = errors.New("scratchpad buffer full")

// Color is the buffer's validity annotation.
type Color int

const (
	// ColorNeutral is the default: typed text with no verdict.
	ColorNeutral Color = iota
	// ColorValid marks content that passed validation.
	ColorValid
	// ColorInvalid marks content that failed validation (or an error token).
	ColorInvalid
	// ColorEditing marks an existing value copied in for editing.
	ColorEditing
)

func (c Color) displayColor() display.Color {
	switch c {
	case ColorValid:
		return display.ColorGreen
	case ColorInvalid:
		return display.ColorAmber
	case ColorEditing:
		return display.ColorCyan
	default:
		return display.ColorWhite
	}
}

// Buffer is the scratchpad. One instance lives for the whole terminal
// session; all methods must be called from the event loop goroutine.
type Buffer struct {
	clock  timing.Clock
	pub    display.Publisher
	redraw func()

	content string
	// saved holds the pre-error content while an error token occupies the
	// buffer. Meaningful only when errorShowing is true.
	saved        string
	errorShowing bool
	color        Color
	message      string
	fullWarned   bool

	renderSlot  timing.Slot
	overlaySlot timing.Slot
}

// New creates a scratchpad rendering through pub. redraw is invoked when a
// transient overlay expires and the page underneath must be repainted.
func New(clock timing.Clock, pub display.Publisher, redraw func()) *Buffer {
	if redraw == nil {
		redraw = func() {}
	}
	return &Buffer{clock: clock, pub: pub, redraw: redraw}
}

// Content returns the current buffer text. While an error is showing this is
// the error token, matching what the display shows.
func (b *Buffer) Content() string {
	return b.content
}

// IsEmpty reports whether the buffer holds no text and no error.
func (b *Buffer) IsEmpty() bool {
	return b.content == "" && !b.errorShowing
}

// ErrorShowing reports whether an error token currently occupies the buffer.
func (b *Buffer) ErrorShowing() bool {
	return b.errorShowing
}

// Color returns the current validity annotation.
func (b *Buffer) Color() Color {
	return b.color
}

// Message returns the message stored by the last SetValid or ShowError.
func (b *Buffer) Message() string {
	return b.message
}

// Append adds one character. At capacity the character is discarded and
// ErrBufferFull returned. Every accepted keystroke resets the annotation to
// neutral: a prior pass/fail verdict no longer describes the content.
//
// Typing over a shown error first restores the saved text, then appends.
func (b *Buffer) Append(ch rune) error {
	if b.errorShowing {
		b.restoreSaved()
	}
	if len(b.content) >= Capacity {
		return ErrBufferFull
	}
	b.content += string(ch)
	b.color = ColorNeutral
	b.message = ""
	return nil
}

// WarnFull reports whether a buffer-full error should be surfaced now. It
// latches: the first call in an overflow streak returns true, subsequent
// calls return false until a real clear resets the latch.
func (b *Buffer) WarnFull() bool {
	if b.fullWarned {
		return false
	}
	b.fullWarned = true
	return true
}

// Clear performs two-stage recovery. While an error token is showing, the
// first call restores the content that was in the buffer when the error
// appeared. Otherwise the buffer is emptied for real: content, annotation
// and the buffer-full latch all reset.
func (b *Buffer) Clear() {
	if b.errorShowing {
		b.restoreSaved()
		return
	}
	b.content = ""
	b.saved = ""
	b.color = ColorNeutral
	b.message = ""
	b.fullWarned = false
}

// ForceClear empties the buffer unconditionally, bypassing two-stage
// recovery. Used by the double-CLR emergency exit and after successful
// writes.
func (b *Buffer) ForceClear() {
	b.errorShowing = false
	b.saved = ""
	b.Clear()
}

func (b *Buffer) restoreSaved() {
	b.content = b.saved
	b.saved = ""
	b.errorShowing = false
	b.color = ColorNeutral
	b.message = ""
}

// Set overwrites the buffer with an existing value for editing. The content
// is marked with the editing color.
func (b *Buffer) Set(value string) {
	if len(value) > Capacity {
		value = value[:Capacity]
	}
	b.content = value
	b.saved = ""
	b.errorShowing = false
	b.color = ColorEditing
}

// ShowError replaces the buffer content with an error token, saving the
// current content for recovery by the next Clear. The token occupies the
// buffer until then.
func (b *Buffer) ShowError(message string) {
	if b.errorShowing {
		// A new error while one is showing keeps the original saved
		// text; stacking error tokens as restore targets would strand
		// the user's entry.
		b.content = message
	} else {
		b.saved = b.content
		b.content = message
		b.errorShowing = true
	}
	b.color = ColorInvalid
	b.message = message
	logging.Debug("Scratchpad error shown", zap.String("token", message))
	b.Render()
}

// SetValid annotates the content with a validation verdict.
func (b *Buffer) SetValid(isValid bool, message string) {
	if isValid {
		b.color = ColorValid
	} else {
		b.color = ColorInvalid
	}
	b.message = message
}

// Render schedules a debounced publish of the scratchpad line. Rapid calls
// coalesce; only the last one in a burst reaches the display.
func (b *Buffer) Render() {
	b.renderSlot.Schedule(b.clock, RenderDebounce, func() {
		b.renderNow(b.color)
	})
}

func (b *Buffer) renderNow(color Color) {
	text := emptyForm
	if b.content != "" {
		text = b.content + entryMarker
	}
	b.pub.PublishLine(display.ScratchpadRow, display.Pad(text), color.displayColor())
}

// FlashError publishes a transient error overlay on the overlay row. It
// auto-reverts after ErrorOverlayDuration by asking the page renderer to
// redraw.
func (b *Buffer) FlashError(message string) {
	b.flash(message, display.ColorAmber, ErrorOverlayDuration)
}

// FlashSuccess publishes a transient success overlay, auto-reverting after
// SuccessOverlayDuration.
func (b *Buffer) FlashSuccess(message string) {
	b.flash(message, display.ColorGreen, SuccessOverlayDuration)
}

func (b *Buffer) flash(message string, color display.Color, d time.Duration) {
	b.pub.PublishLine(display.OverlayRow, display.Center(message), color)
	b.overlaySlot.Schedule(b.clock, d, b.redraw)
}

// CancelTimers stops the pending render and overlay timers. Used when the
// display is handed over wholesale, e.g. to a modal dialog.
func (b *Buffer) CancelTimers() {
	b.renderSlot.Cancel()
	b.overlaySlot.Cancel()
}
