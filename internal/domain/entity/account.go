package entity

import (
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/bank-account-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bank-account-service/internal/domain/port/core"
)

const (
	// MinAge is the minimum age of an account holder at creation
	MinAge = 18
	// MaxDeposit is the largest amount accepted by a single deposit
	MaxDeposit int64 = 10000
)

// Account represents a bank account record
type Account struct {
	ID        uint64 // Store-assigned identifier
	Name      string // Owner's display name
	Email     string // Not format-validated
	Age       int    // Fixed at creation
	AccountNo string // External handle, fixed at creation
	pinHash   string // bcrypt hash of the 4-digit PIN
	balance   int64  // Whole currency units, never negative
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewAccount validates the opening data and returns an account with a zero balance.
// The PIN is hashed with the given bcrypt cost and never kept in clear text.
func NewAccount(
	name, email string,
	age int,
	pin string,
	accountNo string,
	pinHashCost int,
	timeProvider coreport.TimeProvider,
) (*Account, error) {
	if err := ValidateOpening(name, email, age, pin); err != nil {
		return nil, err
	}

	hash, err := HashPIN(pin, pinHashCost)
	if err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	return &Account{
		Name:      strings.TrimSpace(name),
		Email:     strings.TrimSpace(email),
		Age:       age,
		AccountNo: accountNo,
		pinHash:   hash,
		balance:   0,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// RestoreAccount rebuilds an account from persisted values (for repositories)
func RestoreAccount(
	id uint64,
	name, email string,
	age int,
	accountNo, pinHash string,
	balance int64,
	createdAt, updatedAt time.Time,
) *Account {
	return &Account{
		ID:        id,
		Name:      name,
		Email:     email,
		Age:       age,
		AccountNo: accountNo,
		pinHash:   pinHash,
		balance:   balance,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// ValidateOpening checks the fields required to open an account
func ValidateOpening(name, email string, age int, pin string) error {
	if age < MinAge {
		return errs.ErrUnderage
	}
	if err := ValidatePIN(pin); err != nil {
		return err
	}
	if strings.TrimSpace(name) == "" {
		return errs.ErrInvalidName
	}
	if strings.TrimSpace(email) == "" {
		return errs.ErrInvalidEmail
	}
	return nil
}

// Balance returns the current balance
func (a *Account) Balance() int64 {
	return a.balance
}

// PINHash returns the stored PIN hash (for repositories)
func (a *Account) PINHash() string {
	return a.pinHash
}

// VerifyPIN reports whether pin matches the stored hash
func (a *Account) VerifyPIN(pin string) bool {
	return ComparePIN(a.pinHash, pin)
}

// SetBalance records a balance reported by the store after an atomic update
func (a *Account) SetBalance(balance int64, timeProvider coreport.TimeProvider) {
	a.balance = balance
	a.UpdatedAt = timeProvider.Now()
}

// CanWithdraw checks that amount is positive and covered by the balance
func (a *Account) CanWithdraw(amount int64) error {
	if amount <= 0 || amount > a.balance {
		return errs.ErrInvalidWithdrawal
	}
	return nil
}

// ApplyUpdate merges the non-empty values into the account.
// A new PIN must be 4 digits and is re-hashed. Nothing changes if validation fails.
func (a *Account) ApplyUpdate(newName, newEmail, newPIN string, pinHashCost int, timeProvider coreport.TimeProvider) error {
	var newHash string
	if newPIN != "" {
		if err := ValidatePIN(newPIN); err != nil {
			return err
		}
		hash, err := HashPIN(newPIN, pinHashCost)
		if err != nil {
			return err
		}
		newHash = hash
	}

	if name := strings.TrimSpace(newName); name != "" {
		a.Name = name
	}
	if email := strings.TrimSpace(newEmail); email != "" {
		a.Email = email
	}
	if newHash != "" {
		a.pinHash = newHash
	}
	a.UpdatedAt = timeProvider.Now()
	return nil
}

// ValidateDepositAmount checks that amount is in (0, MaxDeposit]
func ValidateDepositAmount(amount int64) error {
	if amount <= 0 || amount > MaxDeposit {
		return errs.ErrDepositOutOfRange
	}
	return nil
}
