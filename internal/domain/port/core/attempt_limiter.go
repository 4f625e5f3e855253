package core

import "context"

// AttemptLimiter counts PIN attempts per account number.
// Keys are the account numbers as submitted, whether or not such an account exists.
type AttemptLimiter interface {
	// Acquire counts one attempt for key and reports whether it may go ahead.
	// Counting and checking are a single step, so concurrent attempts cannot
	// all pass before any of them is counted.
	Acquire(ctx context.Context, key string) (bool, error)
	// Reset clears the count for key after a successful authentication
	Reset(ctx context.Context, key string) error
}
