package handler

import (
	"errors"
	"net/http"

	domainerr "github.com/amirhossein-jamali/bank-account-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bank-account-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/bank-account-service/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/bank-account-service/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// clientErrors are safe to echo to callers with their own message
var clientErrors = []error{
	domainerr.ErrUnderage,
	domainerr.ErrInvalidPIN,
	domainerr.ErrInvalidName,
	domainerr.ErrInvalidEmail,
	domainerr.ErrDepositOutOfRange,
	domainerr.ErrInvalidWithdrawal,
	domainerr.ErrInsufficientBalance,
	domainerr.ErrInvalidCredentials,
	domainerr.ErrInvalidAdminCredentials,
	domainerr.ErrInvalidToken,
	domainerr.ErrTooManyAttempts,
	domainerr.ErrDuplicateAccountNo,
}

// statusFor maps domain errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case domainerr.IsValidationError(err), errors.Is(err, domainerr.ErrInsufficientBalance):
		return http.StatusBadRequest
	case domainerr.IsAuthenticationError(err):
		return http.StatusUnauthorized
	case errors.Is(err, domainerr.ErrTooManyAttempts):
		return http.StatusTooManyRequests
	case errors.Is(err, domainerr.ErrDuplicateAccountNo):
		return http.StatusConflict
	case errors.Is(err, domainerr.ErrDatabaseConnection):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// messageFor returns the caller-facing message. Store and internal details are not exposed.
func messageFor(err error) string {
	for _, known := range clientErrors {
		if errors.Is(err, known) {
			return known.Error()
		}
	}
	if errors.Is(err, domainerr.ErrDatabaseConnection) {
		return "Service temporarily unavailable"
	}
	return "Internal server error"
}

// respondError writes the {code,message} body. Server-side failures are logged here;
// client errors are already visible in the request log.
func respondError(c *gin.Context, logger coreport.Logger, operation string, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", map[string]any{
			"operation":  operation,
			"error":      err.Error(),
			"request_id": c.GetString(middleware.RequestIDKey),
		})
	}
	_ = c.Error(err)

	c.JSON(status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: messageFor(err),
	})
}

// respondBindError reports a malformed body
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
		Message: "Invalid request format: " + err.Error(),
	})
}
