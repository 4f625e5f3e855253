package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeUnderage           = 4001
	CodeInvalidPIN         = 4002
	CodeDepositOutOfRange  = 4003
	CodeInvalidWithdrawal  = 4004
	CodeInvalidName        = 4005
	CodeInvalidEmail       = 4006
	CodeInvalidRequest     = 4007
	CodeInvalidCredentials = 4010
	CodeInvalidAdminLogin  = 4011
	CodeInvalidToken       = 4012
	CodeDuplicateAccountNo = 4090
	CodeTooManyAttempts    = 4290

	// 5xxx - Server errors
	CodeInternalServer     = 5000
	CodeDatabaseConnection = 5030
)

// Base error types
var (
	// ErrUnderage is returned when the account holder is younger than the minimum age
	ErrUnderage = errors.New("account holder must be at least 18 years old")

	// ErrInvalidPIN is returned when a PIN is not exactly four digits
	ErrInvalidPIN = errors.New("pin must be exactly 4 digits")

	// ErrInvalidName is returned when the account holder name is blank
	ErrInvalidName = errors.New("name cannot be empty")

	// ErrInvalidEmail is returned when the email is blank
	ErrInvalidEmail = errors.New("email cannot be empty")

	// ErrDepositOutOfRange is returned when a deposit is not in (0, 10000]
	ErrDepositOutOfRange = errors.New("deposit must be between 1 and 10000")

	// ErrInvalidWithdrawal is returned when a withdrawal is not positive or exceeds the balance
	ErrInvalidWithdrawal = errors.New("invalid withdrawal amount")

	// ErrInsufficientBalance is returned by the store when a debit would make the balance negative
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrInvalidCredentials is returned when no account matches the account number and PIN.
	// It is deliberately the same for an unknown account and a wrong PIN.
	ErrInvalidCredentials = errors.New("invalid account or pin")

	// ErrTooManyAttempts is returned when an account number is temporarily locked after failed PIN attempts
	ErrTooManyAttempts = errors.New("too many failed pin attempts, try again later")

	// ErrAccountNotFound is returned by the store when no row matches
	ErrAccountNotFound = errors.New("account not found")

	// ErrDuplicateAccountNo is returned when a generated account number already exists
	ErrDuplicateAccountNo = errors.New("account number already exists")

	// ErrInvalidAdminCredentials is returned when the admin username or password is wrong
	ErrInvalidAdminCredentials = errors.New("invalid admin credentials")

	// ErrInvalidToken is returned when an admin token is missing, expired or forged
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrConstraintViolation is returned when a database constraint other than uniqueness is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrUnderage):
		return CodeUnderage
	case errors.Is(err, ErrInvalidPIN):
		return CodeInvalidPIN
	case errors.Is(err, ErrDepositOutOfRange):
		return CodeDepositOutOfRange
	case errors.Is(err, ErrInvalidWithdrawal), errors.Is(err, ErrInsufficientBalance):
		return CodeInvalidWithdrawal
	case errors.Is(err, ErrInvalidName):
		return CodeInvalidName
	case errors.Is(err, ErrInvalidEmail):
		return CodeInvalidEmail
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrInvalidCredentials):
		return CodeInvalidCredentials
	case errors.Is(err, ErrInvalidAdminCredentials):
		return CodeInvalidAdminLogin
	case errors.Is(err, ErrInvalidToken):
		return CodeInvalidToken
	case errors.Is(err, ErrDuplicateAccountNo):
		return CodeDuplicateAccountNo
	case errors.Is(err, ErrTooManyAttempts):
		return CodeTooManyAttempts
	case errors.Is(err, ErrDatabaseConnection):
		return CodeDatabaseConnection
	default:
		return CodeInternalServer
	}
}

// IsValidationError reports whether err was raised before the store was touched
func IsValidationError(err error) bool {
	return errors.Is(err, ErrUnderage) ||
		errors.Is(err, ErrInvalidPIN) ||
		errors.Is(err, ErrInvalidName) ||
		errors.Is(err, ErrInvalidEmail) ||
		errors.Is(err, ErrDepositOutOfRange) ||
		errors.Is(err, ErrInvalidWithdrawal) ||
		errors.Is(err, ErrInvalidRequest)
}

// IsAuthenticationError reports whether err is an account or admin authentication failure
func IsAuthenticationError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrInvalidAdminCredentials) ||
		errors.Is(err, ErrInvalidToken)
}

// AccountError attaches the account number and operation to an underlying error
type AccountError struct {
	AccountNo string
	Operation string
	Err       error
}

// Error implements the error interface for AccountError
func (e *AccountError) Error() string {
	return fmt.Sprintf("%s failed for account %s: %v", e.Operation, e.AccountNo, e.Err)
}

// Unwrap returns the underlying error
func (e *AccountError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *AccountError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "account_error",
		"account_no": e.AccountNo,
		"operation":  e.Operation,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewAccountError wraps err with the account number and operation name
func NewAccountError(accountNo, operation string, err error) error {
	return &AccountError{
		AccountNo: accountNo,
		Operation: operation,
		Err:       err,
	}
}
