package datapoint

import (
	"errors"
	"fmt"
	"net"
	"os"
	"syscall"
)

// Error types for remote value store operations

// ErrorType represents the category of error that occurred
type ErrorType int

const (
	// ErrTypeNetwork indicates a network-level error (connection refused, timeout, etc.)
	ErrTypeNetwork ErrorType = iota
	// ErrTypeTimeout indicates a request timeout
	ErrTypeTimeout
	// ErrTypeConnectionRefused indicates the bridge refused the connection
	ErrTypeConnectionRefused
	// ErrTypeProtocol indicates a malformed or unexpected bridge message
	ErrTypeProtocol
	// ErrTypeNotFound indicates the addressed datapoint does not exist
	ErrTypeNotFound
	// ErrTypeNotWritable indicates a write to a read-only datapoint
	ErrTypeNotWritable
	// ErrTypeRejected indicates the bridge rejected the operation
	ErrTypeRejected
	// ErrTypeUnknown indicates an unknown or unexpected error
	ErrTypeUnknown
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeNetwork:
		return "Network Error"
	case ErrTypeTimeout:
		return "Timeout"
	case ErrTypeConnectionRefused:
		return "Connection Refused"
	case ErrTypeProtocol:
		return "Protocol Error"
	case ErrTypeNotFound:
		return "Datapoint Not Found"
	case ErrTypeNotWritable:
		return "Datapoint Not Writable"
	case ErrTypeRejected:
		return "Operation Rejected"
	default:
		return "Unknown Error"
	}
}

// RemoteError is a classified remote value store error. It carries the
// datapoint address for context; the UI never shows the message to the user,
// only a fixed-vocabulary token derived from the type.
type RemoteError struct {
	Type      ErrorType // Category of error
	Addr      string    // Datapoint address (for context)
	Message   string    // Human-readable error message
	Err       error     // Underlying error (if any)
	Retryable bool      // Whether the error is retryable
}

// Error implements the error interface
func (e *RemoteError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *RemoteError) Unwrap() error {
	return e.Err
}

// ClassifyNetworkError analyzes an error and returns a more specific error type
func ClassifyNetworkError(err error, addr string) *RemoteError {
	if err == nil {
		return nil
	}

	// Check for timeout errors
	if os.IsTimeout(err) {
		return &RemoteError{
			Type:      ErrTypeTimeout,
			Addr:      addr,
			Message:   "Request timed out",
			Err:       err,
			Retryable: true,
		}
	}

	// Check for connection refused
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		if errors.Is(opErr.Err, syscall.ECONNREFUSED) {
			return &RemoteError{
				Type:      ErrTypeConnectionRefused,
				Addr:      addr,
				Message:   "Bridge refused connection",
				Err:       err,
				Retryable: true,
			}
		}
	}

	// Generic network error
	return &RemoteError{
		Type:      ErrTypeNetwork,
		Addr:      addr,
		Message:   "Network error occurred",
		Err:       err,
		Retryable: true,
	}
}

// NewNotFoundError creates an error for an unknown datapoint address
func NewNotFoundError(addr string) *RemoteError {
	return &RemoteError{
		Type:    ErrTypeNotFound,
		Addr:    addr,
		Message: fmt.Sprintf("no datapoint at %q", addr),
	}
}

// NewNotWritableError creates an error for a write to a read-only datapoint
func NewNotWritableError(addr string) *RemoteError {
	return &RemoteError{
		Type:    ErrTypeNotWritable,
		Addr:    addr,
		Message: fmt.Sprintf("datapoint %q is not writable", addr),
	}
}

// NewProtocolError creates an error for a malformed bridge message
func NewProtocolError(message string, err error) *RemoteError {
	return &RemoteError{
		Type:    ErrTypeProtocol,
		Message: message,
		Err:     err,
	}
}

// NewRejectedError creates an error for a bridge-side rejection
func NewRejectedError(addr string, message string) *RemoteError {
	return &RemoteError{
		Type:    ErrTypeRejected,
		Addr:    addr,
		Message: message,
	}
}

// IsNotFound checks if an error indicates a missing datapoint
func IsNotFound(err error) bool {
	var re *RemoteError
	if errors.As(err, &re) {
		return re.Type == ErrTypeNotFound
	}
	return false
}

// IsNotWritable checks if an error indicates a read-only datapoint
func IsNotWritable(err error) bool {
	var re *RemoteError
	if errors.As(err, &re) {
		return re.Type == ErrTypeNotWritable
	}
	return false
}

// IsRetryable checks if an error is worth retrying
func IsRetryable(err error) bool {
	var re *RemoteError
	if errors.As(err, &re) {
		return re.Retryable
	}
	return false
}
