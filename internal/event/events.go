package event

import "github.com/flixhummel/mcduterm/internal/inputmode"

// Event is one operator action. The concrete types below are the complete
// set; the dispatcher switches over them exhaustively.
type Event interface {
	isEvent()
}

// KeyCharEvent is one keypad character press, already upcased by the
// front-end.
type KeyCharEvent struct {
	Char rune
}

// LSKEvent is a line-select key press. Row is 1-based (1..6).
type LSKEvent struct {
	Side inputmode.Side
	Row  int
}

// CLREvent is a press of the CLR key.
type CLREvent struct{}

// ConfirmEvent is a press of the hardware EXEC key.
type ConfirmEvent struct{}

func (KeyCharEvent) isEvent() {}
func (LSKEvent) isEvent()     {}
func (CLREvent) isEvent()     {}
func (ConfirmEvent) isEvent() {}
