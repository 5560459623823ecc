// Package logging provides structured logging for the MCDU terminal tools.
//
// This package wraps zap logger with convenience functions for common logging
// patterns used throughout the client and the bridge. It provides both general
// logging functions and specialized functions for input and remote-access
// logging needs.
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: Detailed debugging info (key events, dispatch decisions)
//   - Info: Normal operations (connections, page switches, writes)
//   - Warn: Non-fatal issues (remote write failures, retries)
//   - Error: Fatal issues (startup failures, critical errors)
//
// # Structured Logging
//
// All log functions use structured fields for queryability:
//
//	logging.Info("Bridge connected",
//	    zap.String("remote_addr", "192.168.1.100"),
//	    zap.String("bridge", "mcdu-bridge-01"),
//	)
//
// # Configuration
//
// Logging is controlled via the MCDU_LOG_LEVEL environment variable. When
// unset, the logger is a nop so the curated terminal output stays clean.
// While the full-screen UI is running, logs go to a file instead of the
// terminal (see InitializeToFile).
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap logger
// handles synchronization automatically.
package logging
