// Package event carries operator input from the front-end to the input
// subsystem and serializes everything onto one goroutine.
//
// The subsystem is written single-threaded: the scratchpad, the mode
// manager and the dialog all assume they are never called concurrently. The
// Loop provides that guarantee, and its Clock wrapper makes timer callbacks
// arrive on the same goroutine as key events. The Dispatcher decides who
// owns an incoming event: an active confirmation dialog captures the
// relevant keys, everything else goes to the mode manager.
package event
