package core

import "time"

// TimeProvider abstracts the clock so timestamps and token expiry can be pinned in tests
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) time.Duration
}
