package dto

import (
	"time"

	"github.com/amirhossein-jamali/bank-account-service/internal/domain/entity"
)

// CreateAccountRequest represents the API request for opening an account
type CreateAccountRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Age   int    `json:"age"`
	PIN   string `json:"pin"`
}

// CreateAccountResponse is returned with 201 after an account was opened
type CreateAccountResponse struct {
	AccountNo string `json:"accountNo"`
	Message   string `json:"message"`
}

// CredentialsRequest identifies an account by number and PIN
type CredentialsRequest struct {
	AccountNo string `json:"accountNo" binding:"required"`
	PIN       string `json:"pin" binding:"required"`
}

// AmountRequest represents a deposit or withdrawal.
// Range checks happen after authentication, so amount has no binding rule.
type AmountRequest struct {
	AccountNo string `json:"accountNo" binding:"required"`
	PIN       string `json:"pin" binding:"required"`
	Amount    int64  `json:"amount"`
}

// BalanceResponse is returned after a deposit or withdrawal
type BalanceResponse struct {
	AccountNo string `json:"accountNo"`
	Balance   int64  `json:"balance"`
	Message   string `json:"message"`
}

// UpdateDetailsRequest carries the optional new values. Omitted fields are kept.
type UpdateDetailsRequest struct {
	AccountNo string `json:"accountNo" binding:"required"`
	PIN       string `json:"pin" binding:"required"`
	NewName   string `json:"newName"`
	NewEmail  string `json:"newEmail"`
	NewPIN    string `json:"newPin"`
}

// MessageResponse carries a status message
type MessageResponse struct {
	Message string `json:"message"`
}

// AccountView is the public representation of an account. The PIN hash is never exposed.
type AccountView struct {
	ID        uint64    `json:"id"`
	AccountNo string    `json:"accountNo"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Age       int       `json:"age"`
	Balance   int64     `json:"balance"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewAccountView maps an account to its public view
func NewAccountView(a *entity.Account) AccountView {
	return AccountView{
		ID:        a.ID,
		AccountNo: a.AccountNo,
		Name:      a.Name,
		Email:     a.Email,
		Age:       a.Age,
		Balance:   a.Balance(),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
