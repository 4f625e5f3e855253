package handler

import (
	"encoding/csv"
	"net/http"
	"strconv"

	coreport "github.com/amirhossein-jamali/bank-account-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/bank-account-service/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/bank-account-service/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/bank-account-service/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// ExportFileName is the attachment name of the CSV export
const ExportFileName = "bank_accounts.csv"

var exportHeader = []string{"ID", "Name", "Email", "Age", "Account No", "Balance"}

// csvSafe stops spreadsheet apps from evaluating a user-supplied cell as a formula
func csvSafe(value string) string {
	if value == "" {
		return value
	}
	switch value[0] {
	case '=', '+', '-', '@', '\t', '\r':
		return "'" + value
	}
	return value
}

// AdminHandler serves the admin login and the account listing views
type AdminHandler struct {
	authenticator  usecase.AdminAuthenticator
	accountUseCase usecase.AccountUseCase
	logger         coreport.Logger
}

// NewAdminHandler creates a new admin handler instance
func NewAdminHandler(
	authenticator usecase.AdminAuthenticator,
	accountUseCase usecase.AccountUseCase,
	logger coreport.Logger,
) *AdminHandler {
	return &AdminHandler{
		authenticator:  authenticator,
		accountUseCase: accountUseCase,
		logger:         logger,
	}
}

// Login handles POST /admin/login
func (h *AdminHandler) Login(c *gin.Context) {
	var req dto.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	session, err := h.authenticator.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, h.logger, "admin_login", err)
		return
	}

	c.JSON(http.StatusOK, dto.AdminLoginResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
	})
}

// ListAccounts handles GET /admin/accounts
func (h *AdminHandler) ListAccounts(c *gin.Context) {
	accounts, err := h.accountUseCase.ListAllAccounts(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "list_accounts", err)
		return
	}

	views := make([]dto.AccountView, 0, len(accounts))
	for _, account := range accounts {
		views = append(views, dto.NewAccountView(account))
	}
	c.JSON(http.StatusOK, views)
}

// ExportAccounts handles GET /admin/accounts/export and streams every account as CSV
func (h *AdminHandler) ExportAccounts(c *gin.Context) {
	accounts, err := h.accountUseCase.ListAllAccounts(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "export_accounts", err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+ExportFileName+`"`)
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)
	if err := w.Write(exportHeader); err != nil {
		h.logger.Error("Failed to write CSV export", map[string]any{"error": err.Error()})
		return
	}
	for _, account := range accounts {
		record := []string{
			strconv.FormatUint(account.ID, 10),
			csvSafe(account.Name),
			csvSafe(account.Email),
			strconv.Itoa(account.Age),
			account.AccountNo,
			strconv.FormatInt(account.Balance(), 10),
		}
		if err := w.Write(record); err != nil {
			h.logger.Error("Failed to write CSV export", map[string]any{"error": err.Error()})
			return
		}
	}
	w.Flush()

	if err := w.Error(); err != nil {
		h.logger.Error("Failed to flush CSV export", map[string]any{"error": err.Error()})
		return
	}

	h.logger.Info("Accounts exported", map[string]any{
		"count": len(accounts),
		"admin": c.GetString(middleware.AdminUserKey),
	})
}
