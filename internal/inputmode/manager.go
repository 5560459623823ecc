package inputmode

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/flixhummel/mcduterm/internal/config"
	"github.com/flixhummel/mcduterm/internal/datapoint"
	"github.com/flixhummel/mcduterm/internal/dialog"
	"github.com/flixhummel/mcduterm/internal/logging"
	"github.com/flixhummel/mcduterm/internal/scratchpad"
	"github.com/flixhummel/mcduterm/internal/timing"
	"github.com/flixhummel/mcduterm/internal/validation"
)

// Mode is the current interaction mode of the terminal.
type Mode int

const (
	// ModeNormal means line-select keys navigate and trigger actions.
	ModeNormal Mode = iota
	// ModeInput means the operator is composing an entry in the scratchpad.
	ModeInput
)

// String returns the mode name used in log output.
func (m Mode) String() string {
	if m == ModeInput {
		return "input"
	}
	return "normal"
}

// Side selects the left or right half of a line.
type Side int

const (
	// SideLeft is the left line-select key column.
	SideLeft Side = iota
	// SideRight is the right line-select key column.
	SideRight
)

// DoubleCLRWindow is the maximum gap between two CLR presses that counts as
// the emergency exit gesture.
const DoubleCLRWindow = 1000 * time.Millisecond

// Scratchpad tokens shown by the manager itself. Validation messages come
// from the validation engine instead.
const (
	bufferFullToken  = "BUFFER FULL"
	formatErrorToken = "FORMAT ERROR"
	rangeErrorToken  = "ENTRY OUT OF RANGE"
	writeFailedToken = "WRITE FAILED"
	homeToken        = "RETURNING TO HOME"
)

// Confirmer presents a confirmation dialog for actions the page template
// guards with a ConfirmPolicy. *dialog.Dialog satisfies it.
type Confirmer interface {
	ShowSoft(title string, details []string, decision dialog.Decision)
	ShowHard(title, warning string, details []string, decision dialog.Decision)
	ShowCountdown(title string, details []string, seconds int, decision dialog.Decision)
}

// PageControl is the slice of the page controller the manager needs: current
// page structure plus navigation. *pages.Controller satisfies it.
type PageControl interface {
	CurrentPageID() string
	Line(row int) (config.Line, bool)
	Parent() (string, bool)
	Root() string
	SwitchToPage(ctx context.Context, id string)
	RenderCurrentPage(ctx context.Context)
}

// Manager is the input mode state machine. It is single-threaded: all
// methods must be called from the event loop goroutine.
type Manager struct {
	clock timing.Clock
	buf   *scratchpad.Buffer
	store datapoint.Store
	pages PageControl
	// engine is optional; with no engine only format and metadata range
	// checks apply.
	engine *validation.Engine
	// confirmer is optional; with none, confirm policies are skipped and
	// actions commit directly.
	confirmer Confirmer

	mode        Mode
	modeChanged time.Time
	// lastCLR is the time of the previous CLR press that is still eligible
	// to pair into a double-CLR. Zero when no press is pending.
	lastCLR time.Time
	// focusRule is the entry rule of the last selected Number/String field.
	// While set, typing is annotated live against it. Navigation drops it.
	focusRule *config.FieldRule
}

// NewManager wires the state machine to its collaborators. engine may be
// nil.
func NewManager(clock timing.Clock, buf *scratchpad.Buffer, store datapoint.Store, pages PageControl, engine *validation.Engine) *Manager {
	return &Manager{
		clock:  clock,
		buf:    buf,
		store:  store,
		pages:  pages,
		engine: engine,
	}
}

// SetConfirmer installs the dialog engine that presents template-configured
// confirmations.
func (m *Manager) SetConfirmer(c Confirmer) {
	m.confirmer = c
}

// Mode returns the current interaction mode.
func (m *Manager) Mode() Mode {
	return m.mode
}

// keypadChar reports whether the rune belongs to the terminal keypad set.
// Anything else is dropped before it reaches the scratchpad.
func keypadChar(ch rune) bool {
	switch {
	case ch >= '0' && ch <= '9':
		return true
	case ch >= 'A' && ch <= 'Z':
		return true
	}
	switch ch {
	case '.', '/', ' ', '+', '-', '_':
		return true
	}
	return false
}

// HandleKeyInput processes one keypad character. The first accepted
// character of a composition switches the terminal into INPUT mode; every
// accepted character refreshes the mode timestamp.
func (m *Manager) HandleKeyInput(ctx context.Context, ch rune) {
	if !keypadChar(ch) {
		logging.LogKeyEvent("drop", fmt.Sprintf("%q outside keypad set", ch))
		return
	}

	err := m.buf.Append(ch)
	switch {
	case err == nil:
		if m.mode == ModeNormal {
			m.setMode(ModeInput)
		}
		m.modeChanged = m.clock.Now()
		if m.focusRule != nil {
			ok, msg := m.buf.Validate(*m.focusRule)
			m.buf.SetValid(ok, msg)
		}
	case errors.Is(err, scratchpad.ErrBufferFull):
		// The warning latches until the buffer is really cleared, so a
		// streak of overflowing presses produces one error flash.
		if m.buf.WarnFull() {
			m.buf.ShowError(bufferFullToken)
			return
		}
	}
	m.buf.Render()
}

// HandleCLR implements the CLR priority ladder: double-press emergency exit,
// then scratchpad clearing, then parent-page navigation.
func (m *Manager) HandleCLR(ctx context.Context) {
	now := m.clock.Now()

	if !m.lastCLR.IsZero() && now.Sub(m.lastCLR) <= DoubleCLRWindow {
		m.emergencyExit(ctx)
		return
	}

	if !m.buf.IsEmpty() {
		m.buf.Clear()
		m.buf.Render()
		if m.buf.IsEmpty() {
			m.setMode(ModeNormal)
		}
		m.lastCLR = now
		return
	}

	if parent, ok := m.pages.Parent(); ok {
		m.focusRule = nil
		m.pages.SwitchToPage(ctx, parent)
		m.lastCLR = now
		return
	}

	// Root page, empty scratchpad: nothing to do. The press does not arm
	// the double-CLR window either.
	logging.LogKeyEvent("clr", "no-op on root page")
}

// emergencyExit abandons whatever the operator was doing: the scratchpad is
// emptied unconditionally (two-stage recovery does not apply), mode returns
// to NORMAL and the terminal jumps to the root page.
func (m *Manager) emergencyExit(ctx context.Context) {
	logging.LogKeyEvent("clr", "double press, returning to root")
	m.lastCLR = time.Time{}
	m.focusRule = nil
	m.buf.ForceClear()
	m.setMode(ModeNormal)
	m.pages.SwitchToPage(ctx, m.pages.Root())
	m.buf.FlashSuccess(homeToken)
	m.buf.Render()
}

// HandleLSK processes one line-select key press. row is 1-based (1..6).
func (m *Manager) HandleLSK(ctx context.Context, side Side, row int) {
	line, ok := m.pages.Line(row)
	if !ok {
		logging.LogKeyEvent("lsk", fmt.Sprintf("row %d out of range", row))
		return
	}
	half := line.Left
	if side == SideRight {
		half = line.Right
	}

	if half.Button.Actionable() {
		m.executeButton(ctx, half.Button)
		return
	}
	if half.Display.Type == config.DisplayDatapoint && half.Display.Source != "" {
		m.dispatchDatapoint(ctx, half.Display.Source, half.Display.Rule, half.Display.Confirm)
		return
	}
	// Unbound key. Half-configured buttons land here too.
	logging.LogKeyEvent("lsk", fmt.Sprintf("row %d side %d unbound", row, side))
}

func (m *Manager) executeButton(ctx context.Context, btn config.ButtonField) {
	switch btn.Type {
	case config.ButtonNavigation:
		m.focusRule = nil
		m.pages.SwitchToPage(ctx, btn.Target)
	case config.ButtonDatapoint:
		m.dispatchDatapoint(ctx, btn.Target, nil, btn.Confirm)
	}
}

// dispatchDatapoint is the metadata-driven edit path. What a press means is
// decided entirely by the datapoint's declared type: booleans toggle,
// numbers and strings consume the scratchpad.
func (m *Manager) dispatchDatapoint(ctx context.Context, addr string, rule *config.FieldRule, confirm *config.ConfirmPolicy) {
	meta, err := m.store.Metadata(ctx, addr)
	if err != nil {
		logging.LogRemoteAccess("meta", addr, err)
		return
	}
	if !meta.Writable {
		logging.Debug("Datapoint not writable, press ignored", zap.String("addr", addr))
		return
	}

	switch meta.Type {
	case datapoint.TypeBoolean:
		m.commitGated(confirm, func() { m.toggleBoolean(context.Background(), addr) })
	case datapoint.TypeNumber, datapoint.TypeString:
		if m.buf.IsEmpty() || m.buf.ErrorShowing() {
			// Typed entry required; a shown error token is not an entry.
			// Selecting the field focuses its rule so subsequent typing
			// is annotated live.
			m.focusRule = rule
			return
		}
		m.writeEntry(ctx, addr, meta, rule, confirm)
	case datapoint.TypeUnsupported:
		logging.Debug("Datapoint type unsupported, press ignored", zap.String("addr", addr))
	}
}

// commitGated runs commit directly, or behind the template's confirmation
// dialog when one is configured. Cancelling leaves all input state as it
// was so the operator can adjust and retry.
func (m *Manager) commitGated(confirm *config.ConfirmPolicy, commit func()) {
	if confirm == nil || m.confirmer == nil {
		commit()
		return
	}
	// The dialog takes over the whole screen; a pending debounced render
	// or overlay revert must not fire underneath it.
	m.buf.CancelTimers()
	decision := dialog.Callbacks{OnConfirm: commit}
	switch confirm.Type {
	case config.ConfirmHard:
		m.confirmer.ShowHard(confirm.Title, confirm.Warning, confirm.Details, decision)
	case config.ConfirmCountdown:
		m.confirmer.ShowCountdown(confirm.Title, confirm.Details, confirm.Seconds, decision)
	default:
		m.confirmer.ShowSoft(confirm.Title, confirm.Details, decision)
	}
}

// toggleBoolean inverts the value in one round trip. The scratchpad is left
// alone so a half-typed entry survives flipping a switch.
func (m *Manager) toggleBoolean(ctx context.Context, addr string) {
	if err := m.store.Toggle(ctx, addr); err != nil {
		logging.LogRemoteAccess("toggle", addr, err)
		m.buf.FlashError(writeFailedToken)
		return
	}
	m.pages.RenderCurrentPage(ctx)
}

// writeEntry validates the scratchpad content against the field rule and the
// datapoint metadata, then writes. Any failure shows a recoverable error:
// the typed text stays behind it and a single CLR brings it back.
func (m *Manager) writeEntry(ctx context.Context, addr string, meta datapoint.Metadata, rule *config.FieldRule, confirm *config.ConfirmPolicy) {
	entry := m.buf.Content()

	if rule != nil && m.engine != nil {
		res := m.engine.Validate(ctx, entry, *rule, storeAccessor{m.store})
		if !res.Valid {
			m.buf.ShowError(res.Message)
			return
		}
	}

	var value datapoint.Value
	switch meta.Type {
	case datapoint.TypeNumber:
		n, ok := validation.ParseNumeric(entry)
		if !ok {
			m.buf.ShowError(formatErrorToken)
			return
		}
		if (meta.Min != nil && n < *meta.Min) || (meta.Max != nil && n > *meta.Max) {
			m.buf.ShowError(rangeErrorToken)
			return
		}
		value = datapoint.NumberValue(n)
	case datapoint.TypeString:
		value = datapoint.StringValue(entry)
	}

	// Validation happens before any confirmation so the operator is never
	// asked to confirm an entry that would be rejected anyway.
	m.commitGated(confirm, func() {
		m.commitWrite(context.Background(), addr, entry, value)
	})
}

func (m *Manager) commitWrite(ctx context.Context, addr string, entry string, value datapoint.Value) {
	if err := m.store.Set(ctx, addr, value); err != nil {
		logging.LogRemoteAccess("set", addr, err)
		// Recoverable: the entry was valid, only the transport failed.
		m.buf.ShowError(writeFailedToken)
		return
	}

	m.buf.ForceClear()
	m.setMode(ModeNormal)
	m.focusRule = nil
	m.pages.RenderCurrentPage(ctx)
	m.buf.FlashSuccess(fmt.Sprintf("%s SET", entry))
	m.buf.Render()
}

// Reset forces the machine back to its initial state: NORMAL mode, empty
// scratchpad, no pending CLR press. Used when a confirmation dialog takes
// over the screen.
func (m *Manager) Reset() {
	m.buf.ForceClear()
	m.setMode(ModeNormal)
	m.lastCLR = time.Time{}
	m.focusRule = nil
	m.buf.Render()
}

func (m *Manager) setMode(mode Mode) {
	if m.mode == mode {
		return
	}
	logging.LogKeyEvent("mode", mode.String())
	m.mode = mode
	m.modeChanged = m.clock.Now()
}

// storeAccessor exposes store reads to business-rule validators.
type storeAccessor struct {
	store datapoint.Store
}

func (a storeAccessor) Lookup(ctx context.Context, addr string) (datapoint.Value, error) {
	return a.store.Get(ctx, addr)
}
