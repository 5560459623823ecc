// Package display defines the contract between the input subsystem and the
// physical (or emulated) MCDU screen.
//
// The screen is a fixed 14-line by 24-column character grid. Row 13 (the
// bottom line) belongs to the scratchpad, row 12 carries transient
// error/success overlays, and rows 0-12 are composed by the page renderer.
// A modal confirmation dialog replaces the whole grid while active.
//
// Publishers transport lines to whatever is actually drawing: the bubbletea
// front-end in this repository, or a hardware bridge in a deployment.
package display
