// Package server implements the bridge simulator: a websocket server that
// speaks the bridge JSON protocol against an in-memory datapoint store.
//
// The simulator exists so a terminal can be developed and demonstrated
// without aircraft hardware. It serves any number of terminal sessions from
// one store, pushes value updates to all of them when any session writes,
// and advertises itself over mDNS so terminals find it without
// configuration.
//
// # Protocol
//
// Each session exchanges JSON messages (see internal/protocol). Requests
// carry a sequence number the reply echoes; updates are unsolicited and
// carry none. Malformed frames produce an error reply and the session stays
// open; a transport error closes the session.
package server
