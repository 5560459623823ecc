// Package inputmode tracks whether the operator is navigating or typing and
// routes key, line-select and CLR events accordingly.
//
// The manager owns the NORMAL/INPUT mode bit, the double-CLR emergency exit
// window, and the dispatch from line-select keys to datapoint edits. It is
// the only component that drives both the scratchpad buffer and the
// validation engine, so the ordering rules between them (validate before
// write, restore typed text on failure) live here.
package inputmode
