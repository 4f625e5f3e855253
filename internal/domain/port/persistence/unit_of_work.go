package persistence

import (
	"context"
)

// UnitOfWork runs a group of repository calls inside one database transaction
type UnitOfWork interface {
	// Execute begins a transaction, calls fn with a transactional context and commits
	// if fn returns nil. Any error rolls the transaction back. Transient store failures
	// such as serialization conflicts are retried with backoff.
	Execute(ctx context.Context, fn func(txCtx context.Context) error) error

	// GetAccountRepository returns an account repository bound to the transaction in ctx,
	// or to the plain connection pool when ctx carries no transaction
	GetAccountRepository(ctx context.Context) AccountRepository
}
