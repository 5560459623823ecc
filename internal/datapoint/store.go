package datapoint

import "context"

// Store is the remote value store the input subsystem edits. All methods are
// total from the caller's view in the sense that errors are classified
// RemoteErrors, never panics.
type Store interface {
	// Get reads the current value of the addressed datapoint.
	Get(ctx context.Context, addr string) (Value, error)

	// Set writes a new value. The store enforces writability; it does not
	// enforce min/max, which is the input subsystem's job.
	Set(ctx context.Context, addr string, v Value) error

	// Toggle inverts a boolean datapoint in one round trip.
	Toggle(ctx context.Context, addr string) error

	// Metadata returns the declared shape of the datapoint. A missing
	// datapoint yields an ErrTypeNotFound RemoteError.
	Metadata(ctx context.Context, addr string) (Metadata, error)
}
