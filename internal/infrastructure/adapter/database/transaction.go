package database

import (
	"context"
	"fmt"
	"time"

	coreport "github.com/amirhossein-jamali/bank-account-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/bank-account-service/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/bank-account-service/internal/infrastructure/adapter/repository"
	"gorm.io/gorm"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const txKey contextKey = "tx"

// UnitOfWork implements persistence.UnitOfWork on gorm transactions
type UnitOfWork struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	classifier   *repository.ErrorClassifier
	retryConfig  RetryConfig
	queryTimeout time.Duration
	isolationSQL string
}

var _ persistence.UnitOfWork = (*UnitOfWork)(nil)

// NewUnitOfWork creates a new UnitOfWork instance. The isolation level is only
// applied on postgres; sqlite transactions are already serializable.
func NewUnitOfWork(db *gorm.DB, config *Config, logger coreport.Logger, timeProvider coreport.TimeProvider) *UnitOfWork {
	uow := &UnitOfWork{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
		classifier:   repository.NewErrorClassifier(),
		retryConfig:  DefaultRetryConfig(),
	}
	if config == nil {
		return uow
	}

	uow.retryConfig = config.retryConfig()
	uow.queryTimeout = config.QueryTimeout

	if db.Dialector.Name() == DriverPostgres {
		// Validate has already rejected unknown levels
		uow.isolationSQL, _ = config.isolationSQL()
	}

	return uow
}

// Execute runs fn in a transaction. A ctx that already carries a transaction
// joins it instead of opening a new one. Each attempt gets its own QueryTimeout.
func (u *UnitOfWork) Execute(ctx context.Context, fn func(txCtx context.Context) error) error {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok && tx != nil {
		return fn(ctx)
	}

	return RetryOnTransientError(ctx, u.retryConfig, func() error {
		attemptCtx, cancel := u.withQueryTimeout(ctx)
		defer cancel()

		return u.db.WithContext(attemptCtx).Transaction(func(tx *gorm.DB) error {
			if u.isolationSQL != "" {
				if err := tx.Exec(u.isolationSQL).Error; err != nil {
					u.logger.Error("Failed to set transaction isolation level", map[string]any{"error": err.Error()})
					return fmt.Errorf("failed to set transaction isolation level: %w", err)
				}
			}
			return fn(context.WithValue(attemptCtx, txKey, tx))
		})
	}, u.classifier, u.logger)
}

func (u *UnitOfWork) withQueryTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if u.queryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, u.queryTimeout)
}

// GetAccountRepository returns an account repository in the current transaction
func (u *UnitOfWork) GetAccountRepository(ctx context.Context) persistence.AccountRepository {
	return repository.NewAccountRepository(u.getDbFromContext(ctx), u.timeProvider, u.logger)
}

func (u *UnitOfWork) getDbFromContext(ctx context.Context) *gorm.DB {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if ok && tx != nil {
		return tx
	}
	return u.db.WithContext(ctx)
}
