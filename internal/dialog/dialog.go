package dialog

import (
	"time"

	"go.uber.org/zap"

	"github.com/flixhummel/mcduterm/internal/display"
	"github.com/flixhummel/mcduterm/internal/logging"
	"github.com/flixhummel/mcduterm/internal/timing"
)

// Type selects the confirmation variant.
type Type int

const (
	// Soft dialogs confirm via the confirm line-key or EXEC and cancel
	// via the cancel line-key.
	Soft Type = iota
	// Hard dialogs confirm only via EXEC; the cancel key is rejected.
	Hard
	// Countdown dialogs behave like Soft and auto-confirm at zero.
	Countdown
)

// Response is a key event routed to the dialog by the event dispatcher.
type Response int

const (
	// ResponseConfirmKey is the designated confirm line-key.
	ResponseConfirmKey Response = iota
	// ResponseCancelKey is the designated cancel line-key.
	ResponseCancelKey
	// ResponseHardwareConfirm is the dedicated EXEC key.
	ResponseHardwareConfirm
)

// Decision receives the outcome of a dialog. Either method may be a no-op.
type Decision interface {
	Confirm()
	Cancel()
}

// Callbacks adapts plain functions to the Decision interface. Nil functions
// are skipped.
type Callbacks struct {
	OnConfirm func()
	OnCancel  func()
}

// Confirm invokes OnConfirm when set.
func (c Callbacks) Confirm() {
	if c.OnConfirm != nil {
		c.OnConfirm()
	}
}

// Cancel invokes OnCancel when set.
func (c Callbacks) Cancel() {
	if c.OnCancel != nil {
		c.OnCancel()
	}
}

const (
	// tickInterval is the countdown decrement period.
	tickInterval = time.Second

	// wrongKeyFlashDuration is how long the Hard variant's wrong-key
	// notice stays up before the dialog repaints.
	wrongKeyFlashDuration = time.Second
)

// Dialog is the one modal confirmation overlay of the terminal. All methods
// must be called from the event loop goroutine.
type Dialog struct {
	clock  timing.Clock
	pub    display.Publisher
	redraw func()

	active     bool
	dialogType Type
	title      string
	warning    string
	details    []string
	decision   Decision
	remaining  int

	tickSlot  timing.Slot
	flashSlot timing.Slot
}

// New creates an inactive dialog. redraw repaints the page that was active
// underneath after teardown.
func New(clock timing.Clock, pub display.Publisher, redraw func()) *Dialog {
	if redraw == nil {
		redraw = func() {}
	}
	return &Dialog{clock: clock, pub: pub, redraw: redraw}
}

// Active reports whether a dialog currently owns the display.
func (d *Dialog) Active() bool {
	return d.active
}

// Remaining returns the countdown seconds left; zero for other variants.
func (d *Dialog) Remaining() int {
	return d.remaining
}

// ShowSoft installs a soft confirmation. Any prior dialog is force-cleared
// first.
func (d *Dialog) ShowSoft(title string, details []string, decision Decision) {
	d.install(Soft, title, "", details, decision, 0)
}

// ShowHard installs a hard confirmation with a warning line.
func (d *Dialog) ShowHard(title, warning string, details []string, decision Decision) {
	d.install(Hard, title, warning, details, decision, 0)
}

// ShowCountdown installs a countdown confirmation that auto-confirms after
// seconds ticks with no input.
func (d *Dialog) ShowCountdown(title string, details []string, seconds int, decision Decision) {
	if seconds < 1 {
		seconds = 1
	}
	d.install(Countdown, title, "", details, decision, seconds)
	d.scheduleTick()
}

// install force-clears prior state, then populates and renders the new
// dialog. Clearing first guarantees a superseded countdown can never tick
// against the new state.
func (d *Dialog) install(t Type, title, warning string, details []string, decision Decision, remaining int) {
	d.reset()
	d.active = true
	d.dialogType = t
	d.title = title
	d.warning = warning
	d.details = details
	d.decision = decision
	d.remaining = remaining
	logging.Debug("Dialog shown",
		zap.String("title", title),
		zap.Int("type", int(t)),
	)
	d.render()
}

// HandleResponse dispatches a routed key per the variant's acceptance rules.
// Out-of-contract keys are ignored.
func (d *Dialog) HandleResponse(r Response) {
	if !d.active {
		return
	}
	switch d.dialogType {
	case Hard:
		if r == ResponseHardwareConfirm {
			d.Confirm()
			return
		}
		if r == ResponseCancelKey {
			// Rejected: flash and stay open. No input path reaches
			// the cancel callback on a hard dialog.
			d.flashWrongKey()
		}
	case Soft, Countdown:
		switch r {
		case ResponseConfirmKey, ResponseHardwareConfirm:
			d.Confirm()
		case ResponseCancelKey:
			d.Cancel()
		}
	}
}

// Confirm stops timers, invokes the confirm callback and clears the dialog.
func (d *Dialog) Confirm() {
	if !d.active {
		return
	}
	d.tickSlot.Cancel()
	d.flashSlot.Cancel()
	d.invoke(true)
	d.Clear()
}

// Cancel stops timers, invokes the cancel callback and clears the dialog.
func (d *Dialog) Cancel() {
	if !d.active {
		return
	}
	d.tickSlot.Cancel()
	d.flashSlot.Cancel()
	d.invoke(false)
	d.Clear()
}

// invoke runs a decision callback under recover; a throwing callback must
// never leave the dialog stuck open.
func (d *Dialog) invoke(confirm bool) {
	if d.decision == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			logging.Error("Dialog callback panicked",
				zap.String("title", d.title),
				zap.Bool("confirm", confirm),
				zap.Any("panic", r),
			)
		}
	}()
	if confirm {
		d.decision.Confirm()
	} else {
		d.decision.Cancel()
	}
}

// Clear tears the dialog down and repaints the page underneath. Idempotent.
func (d *Dialog) Clear() {
	wasActive := d.active
	d.reset()
	if wasActive {
		d.redraw()
	}
}

func (d *Dialog) reset() {
	d.tickSlot.Cancel()
	d.flashSlot.Cancel()
	d.active = false
	d.dialogType = Soft
	d.title = ""
	d.warning = ""
	d.details = nil
	d.decision = nil
	d.remaining = 0
}

func (d *Dialog) scheduleTick() {
	d.tickSlot.Schedule(d.clock, tickInterval, d.tick)
}

func (d *Dialog) tick() {
	if !d.active || d.dialogType != Countdown {
		return
	}
	d.remaining--
	if d.remaining <= 0 {
		d.Confirm()
		return
	}
	d.render()
	d.scheduleTick()
}

func (d *Dialog) flashWrongKey() {
	d.publishStatus("EXEC ONLY", display.ColorAmber)
	d.flashSlot.Schedule(d.clock, wrongKeyFlashDuration, func() {
		if d.active {
			d.render()
		}
	})
}
