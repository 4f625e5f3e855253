package account

import (
	"context"
	"errors"
	"sync"

	"github.com/amirhossein-jamali/bank-account-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bank-account-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bank-account-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/bank-account-service/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/bank-account-service/internal/domain/port/usecase"
)

// Status messages returned on success
const (
	MsgAccountCreated = "Account created successfully"
	MsgDeposit        = "Deposit successful"
	MsgWithdrawal     = "Withdrawal successful"
	MsgDetailsUpdated = "Details updated successfully"
	MsgAccountDeleted = "Account deleted successfully"
)

const (
	// DefaultAccountNoAttempts bounds how often CreateAccount regenerates a colliding account number
	DefaultAccountNoAttempts = 5

	// pinForTiming is hashed once and compared against when the account does not exist,
	// so unknown account numbers take as long to reject as wrong PINs
	pinForTiming = "0000"
)

// Config holds the tunables of the account use case
type Config struct {
	PINHashCost       int
	AccountNoAttempts int
}

// AccountUseCase implements usecase.AccountUseCase on top of a unit of work
type AccountUseCase struct {
	uow          persistence.UnitOfWork
	limiter      coreport.AttemptLimiter
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	generateNo   entity.AccountNoGenerator
	cfg          Config

	dummyOnce sync.Once
	dummyHash string
}

// Option configures an AccountUseCase
type Option func(*AccountUseCase)

// WithAccountNoGenerator replaces the crypto/rand account number generator
func WithAccountNoGenerator(gen entity.AccountNoGenerator) Option {
	return func(uc *AccountUseCase) {
		uc.generateNo = gen
	}
}

var _ usecase.AccountUseCase = (*AccountUseCase)(nil)

// NewAccountUseCase creates a new AccountUseCase
func NewAccountUseCase(
	uow persistence.UnitOfWork,
	limiter coreport.AttemptLimiter,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	cfg Config,
	opts ...Option,
) *AccountUseCase {
	if uow == nil {
		panic("unit of work cannot be nil")
	}
	if cfg.AccountNoAttempts <= 0 {
		cfg.AccountNoAttempts = DefaultAccountNoAttempts
	}

	uc := &AccountUseCase{
		uow:          uow,
		limiter:      limiter,
		timeProvider: timeProvider,
		logger:       logger,
		generateNo:   entity.GenerateAccountNo,
		cfg:          cfg,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// authorizedFunc runs inside the transaction once the PIN was verified
type authorizedFunc func(txCtx context.Context, repo persistence.AccountRepository, account *entity.Account) error

// withAccount authenticates accountNo/pin and runs fn in the same transaction.
// The row is locked when lock is true so the balance cannot change underneath fn.
func (uc *AccountUseCase) withAccount(
	ctx context.Context,
	operation, accountNo, pin string,
	lock bool,
	fn authorizedFunc,
) error {
	if err := uc.checkAttempts(ctx, accountNo); err != nil {
		return err
	}

	authenticated := false
	err := uc.uow.Execute(ctx, func(txCtx context.Context) error {
		repo := uc.uow.GetAccountRepository(txCtx)

		account, err := uc.authenticate(txCtx, repo, accountNo, pin, lock)
		if err != nil {
			return err
		}
		authenticated = true

		return fn(txCtx, repo, account)
	})

	uc.recordAttempt(ctx, accountNo, authenticated)

	if err != nil && !isExpected(err) {
		accErr := &errs.AccountError{AccountNo: accountNo, Operation: operation, Err: err}
		uc.logger.Error("Account operation failed", accErr.LogFields())
		return accErr
	}
	return err
}

// authenticate loads the account and verifies the PIN. Unknown accounts and wrong
// PINs both yield ErrInvalidCredentials after a bcrypt comparison.
func (uc *AccountUseCase) authenticate(
	ctx context.Context,
	repo persistence.AccountRepository,
	accountNo, pin string,
	lock bool,
) (*entity.Account, error) {
	var (
		account *entity.Account
		err     error
	)
	if lock {
		account, err = repo.GetByAccountNoForUpdate(ctx, accountNo)
	} else {
		account, err = repo.GetByAccountNo(ctx, accountNo)
	}

	if err != nil {
		if errors.Is(err, errs.ErrAccountNotFound) {
			entity.ComparePIN(uc.timingHash(), pin)
			return nil, errs.ErrInvalidCredentials
		}
		return nil, err
	}

	if !account.VerifyPIN(pin) {
		return nil, errs.ErrInvalidCredentials
	}
	return account, nil
}

func (uc *AccountUseCase) timingHash() string {
	uc.dummyOnce.Do(func() {
		hash, err := entity.HashPIN(pinForTiming, uc.cfg.PINHashCost)
		if err != nil {
			uc.logger.Warn("Failed to prepare timing hash", map[string]any{"error": err.Error()})
			return
		}
		uc.dummyHash = hash
	})
	return uc.dummyHash
}

// checkAttempts counts the attempt before any PIN is compared.
// Limiter outages are logged and do not block callers.
func (uc *AccountUseCase) checkAttempts(ctx context.Context, accountNo string) error {
	if uc.limiter == nil {
		return nil
	}
	allowed, err := uc.limiter.Acquire(ctx, accountNo)
	if err != nil {
		uc.logger.Warn("Attempt limiter unavailable", map[string]any{
			"account_no": accountNo,
			"error":      err.Error(),
		})
		return nil
	}
	if !allowed {
		uc.logger.Warn("Account temporarily locked after failed pin attempts", map[string]any{
			"account_no": accountNo,
		})
		return errs.ErrTooManyAttempts
	}
	return nil
}

// recordAttempt clears the count once the PIN matched. Failed attempts were
// already counted by checkAttempts.
func (uc *AccountUseCase) recordAttempt(ctx context.Context, accountNo string, authenticated bool) {
	if uc.limiter == nil || !authenticated {
		return
	}

	if limErr := uc.limiter.Reset(ctx, accountNo); limErr != nil {
		uc.logger.Warn("Failed to update attempt limiter", map[string]any{
			"account_no": accountNo,
			"error":      limErr.Error(),
		})
	}
}

// isExpected reports whether err is a caller-facing outcome that needs no error log
func isExpected(err error) bool {
	return errs.IsValidationError(err) ||
		errors.Is(err, errs.ErrInvalidCredentials) ||
		errors.Is(err, errs.ErrTooManyAttempts)
}
