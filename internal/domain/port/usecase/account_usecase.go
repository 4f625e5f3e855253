package usecase

import (
	"context"

	"github.com/amirhossein-jamali/bank-account-service/internal/domain/entity"
)

// CreateAccountRequest carries the fields needed to open an account
type CreateAccountRequest struct {
	Name  string
	Email string
	Age   int
	PIN   string
}

// CreateAccountResult is returned after an account was opened
type CreateAccountResult struct {
	AccountNo string
	Message   string
}

// BalanceResult is returned after a deposit or withdrawal
type BalanceResult struct {
	AccountNo string
	Balance   int64
	Message   string
}

// UpdateDetailsRequest holds the optional new values for an account.
// Empty fields keep the stored value.
type UpdateDetailsRequest struct {
	NewName  string
	NewEmail string
	NewPIN   string
}

// AccountUseCase defines the account-record operations. Every mutating
// operation authenticates with the account number and PIN first.
type AccountUseCase interface {
	// CreateAccount validates the request, assigns a unique account number and opens the account with a zero balance
	CreateAccount(ctx context.Context, req CreateAccountRequest) (*CreateAccountResult, error)

	// Deposit adds amount to the balance. The amount must be in (0, 10000].
	Deposit(ctx context.Context, accountNo, pin string, amount int64) (*BalanceResult, error)

	// Withdraw subtracts amount from the balance. The amount must be in (0, balance].
	Withdraw(ctx context.Context, accountNo, pin string, amount int64) (*BalanceResult, error)

	// GetDetails returns the account record
	GetDetails(ctx context.Context, accountNo, pin string) (*entity.Account, error)

	// UpdateDetails merges the non-empty fields of req into the account and returns a status message
	UpdateDetails(ctx context.Context, accountNo, pin string, req UpdateDetailsRequest) (string, error)

	// DeleteAccount removes the account permanently and returns a status message
	DeleteAccount(ctx context.Context, accountNo, pin string) (string, error)

	// ListAllAccounts returns every account. Access control is the caller's job.
	ListAllAccounts(ctx context.Context) ([]*entity.Account, error)
}
