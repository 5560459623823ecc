package event

import (
	"context"

	"github.com/flixhummel/mcduterm/internal/dialog"
	"github.com/flixhummel/mcduterm/internal/inputmode"
	"github.com/flixhummel/mcduterm/internal/logging"
)

// dialogRow is the line-select row the dialog's cancel/confirm prompts sit
// next to.
const dialogRow = 6

// Dispatcher routes operator events. While a confirmation dialog is active
// it captures CLR, EXEC and the bottom line-select keys; typed characters
// and all other keys are swallowed so no entry can leak past a dialog.
type Dispatcher struct {
	manager *inputmode.Manager
	dialog  *dialog.Dialog
}

// NewDispatcher wires the dispatcher to its two possible targets.
func NewDispatcher(manager *inputmode.Manager, dlg *dialog.Dialog) *Dispatcher {
	return &Dispatcher{manager: manager, dialog: dlg}
}

// Dispatch routes one event. Must be called from the event loop goroutine.
func (d *Dispatcher) Dispatch(ctx context.Context, ev Event) {
	if d.dialog != nil && d.dialog.Active() {
		d.dispatchToDialog(ev)
		return
	}

	switch e := ev.(type) {
	case KeyCharEvent:
		d.manager.HandleKeyInput(ctx, e.Char)
	case LSKEvent:
		d.manager.HandleLSK(ctx, e.Side, e.Row)
	case CLREvent:
		d.manager.HandleCLR(ctx)
	case ConfirmEvent:
		// EXEC with no dialog open has no meaning.
		logging.LogKeyEvent("exec", "no dialog active")
	}
}

func (d *Dispatcher) dispatchToDialog(ev Event) {
	switch e := ev.(type) {
	case ConfirmEvent:
		d.dialog.HandleResponse(dialog.ResponseHardwareConfirm)
	case CLREvent:
		d.dialog.HandleResponse(dialog.ResponseCancelKey)
	case LSKEvent:
		if e.Row != dialogRow {
			return
		}
		if e.Side == inputmode.SideLeft {
			d.dialog.HandleResponse(dialog.ResponseCancelKey)
		} else {
			d.dialog.HandleResponse(dialog.ResponseConfirmKey)
		}
	case KeyCharEvent:
		// Swallowed: no typing while a dialog is up.
	}
}
