package handler

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/bank-account-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/bank-account-service/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/bank-account-service/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// AccountHandler handles account-related HTTP requests. Account numbers may
// contain '#', '&' and '%', so they are always read from the JSON body.
type AccountHandler struct {
	accountUseCase usecase.AccountUseCase
	logger         coreport.Logger
}

// NewAccountHandler creates a new account handler instance
func NewAccountHandler(accountUseCase usecase.AccountUseCase, logger coreport.Logger) *AccountHandler {
	return &AccountHandler{
		accountUseCase: accountUseCase,
		logger:         logger,
	}
}

// CreateAccount handles POST /accounts
func (h *AccountHandler) CreateAccount(c *gin.Context) {
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.accountUseCase.CreateAccount(c.Request.Context(), usecase.CreateAccountRequest{
		Name:  req.Name,
		Email: req.Email,
		Age:   req.Age,
		PIN:   req.PIN,
	})
	if err != nil {
		respondError(c, h.logger, "create_account", err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreateAccountResponse{
		AccountNo: result.AccountNo,
		Message:   result.Message,
	})
}

// Deposit handles POST /accounts/deposit
func (h *AccountHandler) Deposit(c *gin.Context) {
	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.accountUseCase.Deposit(c.Request.Context(), req.AccountNo, req.PIN, req.Amount)
	if err != nil {
		respondError(c, h.logger, "deposit", err)
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{
		AccountNo: result.AccountNo,
		Balance:   result.Balance,
		Message:   result.Message,
	})
}

// Withdraw handles POST /accounts/withdraw
func (h *AccountHandler) Withdraw(c *gin.Context) {
	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.accountUseCase.Withdraw(c.Request.Context(), req.AccountNo, req.PIN, req.Amount)
	if err != nil {
		respondError(c, h.logger, "withdraw", err)
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{
		AccountNo: result.AccountNo,
		Balance:   result.Balance,
		Message:   result.Message,
	})
}

// GetDetails handles POST /accounts/details
func (h *AccountHandler) GetDetails(c *gin.Context) {
	var req dto.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	account, err := h.accountUseCase.GetDetails(c.Request.Context(), req.AccountNo, req.PIN)
	if err != nil {
		respondError(c, h.logger, "get_details", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAccountView(account))
}

// UpdateDetails handles PATCH /accounts
func (h *AccountHandler) UpdateDetails(c *gin.Context) {
	var req dto.UpdateDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	message, err := h.accountUseCase.UpdateDetails(c.Request.Context(), req.AccountNo, req.PIN, usecase.UpdateDetailsRequest{
		NewName:  req.NewName,
		NewEmail: req.NewEmail,
		NewPIN:   req.NewPIN,
	})
	if err != nil {
		respondError(c, h.logger, "update_details", err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: message})
}

// DeleteAccount handles DELETE /accounts
func (h *AccountHandler) DeleteAccount(c *gin.Context) {
	var req dto.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	message, err := h.accountUseCase.DeleteAccount(c.Request.Context(), req.AccountNo, req.PIN)
	if err != nil {
		respondError(c, h.logger, "delete_account", err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: message})
}
