// Package dialog implements the modal confirmation overlay.
//
// A dialog fully replaces the page rendering output while active. Three
// variants exist: Soft (confirm line-key or the hardware EXEC key confirms,
// cancel line-key cancels), Hard (only EXEC confirms; the cancel key is
// rejected with a brief wrong-key flash and nothing can reach a cancel
// callback), and Countdown (Soft plus a one-second tick that auto-confirms
// at zero).
//
// Showing a dialog force-clears any prior one, timers are always cancelled
// before state is cleared, and caller-supplied callbacks are invoked under
// recover so a throwing callback can never leave the dialog stuck open.
package dialog
