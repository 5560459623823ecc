// Package scratchpad implements the terminal's single-line entry buffer.
//
// The scratchpad is the subsystem's primary mutable entity: a capacity-20
// character buffer with a validity color annotation, rendered (debounced) on
// the bottom display line. Rejected entries use aviation-style two-stage
// recovery: the error token occupies the buffer and the first CLR restores
// the text that was there when the error appeared; only a second CLR empties
// the buffer for real.
//
// The buffer also hosts transient error/success overlays on the row above
// the scratchpad line, auto-reverting by asking the page renderer to redraw,
// and the stateless per-field entry check used by line editors.
package scratchpad
