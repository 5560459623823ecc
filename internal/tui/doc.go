// Package tui renders the 14x24 terminal display in a real terminal window
// and translates keyboard input into terminal key events.
//
// The Bubble Tea model owns only pixels: a grid of 14 colored lines. All
// input semantics live behind the event loop; the model posts events onto it
// and receives finished lines back as messages. Function keys stand in for
// the line-select keys (F1-F6 left, F7-F12 right), escape or backspace for
// CLR and enter for EXEC.
package tui
