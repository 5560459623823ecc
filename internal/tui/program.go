package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/flixhummel/mcduterm/internal/config"
	"github.com/flixhummel/mcduterm/internal/datapoint"
	"github.com/flixhummel/mcduterm/internal/dialog"
	"github.com/flixhummel/mcduterm/internal/event"
	"github.com/flixhummel/mcduterm/internal/inputmode"
	"github.com/flixhummel/mcduterm/internal/pages"
	"github.com/flixhummel/mcduterm/internal/scratchpad"
	"github.com/flixhummel/mcduterm/internal/timing"
	"github.com/flixhummel/mcduterm/internal/validation"
)

// Options configures a terminal session.
type Options struct {
	// BridgeURL is the websocket URL of the bridge to connect to.
	BridgeURL string
}

// Run connects to the bridge and runs the terminal until the operator quits
// or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	reg, err := config.LoadRegistry()
	if err != nil {
		return fmt.Errorf("failed to load page templates: %w", err)
	}

	client := datapoint.NewClient(opts.BridgeURL)
	if err := client.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to bridge: %w", err)
	}
	defer func() { _ = client.Close() }()

	loop := event.NewLoop()
	clock := loop.Clock(timing.SystemClock{})

	pub := NewPublisher()
	controller := pages.NewController(reg, client, pub)

	// The dialog's own teardown repaints directly; every other repaint
	// path yields while a dialog owns the screen.
	dlg := dialog.New(clock, pub, func() { controller.RenderCurrentPage(ctx) })
	redraw := pageRepaint(dlg, func() { controller.RenderCurrentPage(ctx) })

	buf := scratchpad.New(clock, pub, redraw)
	manager := inputmode.NewManager(clock, buf, client, controller, validation.NewEngine())
	manager.SetConfirmer(dlg)
	dispatcher := event.NewDispatcher(manager, dlg)

	// Bridge pushes land on the loop so they serialize with key handling.
	client.OnUpdate = func(addr string, v datapoint.Value) {
		loop.Post(redraw)
	}

	model := NewModel(func(ev event.Event) {
		loop.Post(func() { dispatcher.Dispatch(ctx, ev) })
	})
	program := tea.NewProgram(model, tea.WithAltScreen())
	pub.Attach(program)

	loopCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go loop.Run(loopCtx)

	// First paint: the root page plus the empty scratchpad form.
	loop.Post(func() {
		controller.RenderCurrentPage(ctx)
		buf.Render()
	})

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("terminal UI failed: %w", err)
	}
	return nil
}

// pageRepaint wraps a page redraw so it becomes a no-op while a modal
// dialog is active. The dialog replaces page output wholesale; a stale
// overlay revert or a bridge push must not paint over it.
func pageRepaint(dlg *dialog.Dialog, redraw func()) func() {
	return func() {
		if dlg.Active() {
			return
		}
		redraw()
	}
}
