// Package datapoint models the remote value store the terminal edits.
//
// Every editable quantity on the remote side is a datapoint: an addressed
// value with declared metadata (type, writability, limits, unit). The input
// subsystem never branches on raw type strings; metadata carries a closed
// Type enum (Boolean, Number, String, Unsupported) that dispatch sites match
// exhaustively.
//
// Two Store implementations exist:
//
//   - MemStore: in-memory store used by tests and by the bridge simulator.
//   - Client: WebSocket client speaking the bridge protocol, with metadata
//     caching and typed error classification.
//
// Remote access failures are classified into RemoteError categories so the
// UI can render short fixed-vocabulary tokens instead of technical detail.
package datapoint
