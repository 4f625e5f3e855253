package persistence

import (
	"context"

	"github.com/amirhossein-jamali/bank-account-service/internal/domain/entity"
)

// AccountRepository is the only access path to the accounts table
type AccountRepository interface {
	// Create inserts a new account and sets its ID
	//
	// Possible errors:
	// - ErrDuplicateAccountNo: If the account number is already taken
	// - ErrConstraintViolation: If a check constraint rejects the row
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, account *entity.Account) error

	// GetByAccountNo retrieves an account by its exact account number
	//
	// Possible errors:
	// - ErrAccountNotFound: If no account has that number
	// - ErrDatabaseConnection: If database connection fails
	GetByAccountNo(ctx context.Context, accountNo string) (*entity.Account, error)

	// GetByAccountNoForUpdate is GetByAccountNo with a row lock held until the
	// surrounding transaction ends. Outside a transaction it behaves like GetByAccountNo.
	GetByAccountNoForUpdate(ctx context.Context, accountNo string) (*entity.Account, error)

	// List returns every account ordered by ID
	List(ctx context.Context) ([]*entity.Account, error)

	// AdjustBalance adds delta to the balance in a single statement and returns the new balance.
	// A negative delta is applied only if the result stays >= 0.
	//
	// Possible errors:
	// - ErrInsufficientBalance: If the debit would make the balance negative
	// - ErrAccountNotFound: If the account no longer exists
	// - ErrDatabaseConnection: If database connection fails
	AdjustBalance(ctx context.Context, id uint64, delta int64) (int64, error)

	// UpdateProfile persists name, email and PIN hash
	//
	// Possible errors:
	// - ErrAccountNotFound: If the account no longer exists
	// - ErrDatabaseConnection: If database connection fails
	UpdateProfile(ctx context.Context, account *entity.Account) error

	// Delete permanently removes the account row
	//
	// Possible errors:
	// - ErrAccountNotFound: If the account no longer exists
	// - ErrDatabaseConnection: If database connection fails
	Delete(ctx context.Context, id uint64) error
}
