// Package protocol defines the message envelope spoken between the terminal
// client and the bridge process over WebSocket.
//
// Messages are JSON text frames. The client sends requests (get, set, toggle,
// meta) carrying a sequence number; the bridge answers each request with a
// reply or error frame echoing the sequence number, and pushes unsolicited
// update frames when datapoint values change.
//
// The envelope is deliberately small: the input subsystem consumes the
// datapoint package's accessor contract and never sees these frames.
package protocol
