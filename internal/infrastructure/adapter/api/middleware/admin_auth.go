package middleware

import (
	"net/http"
	"strings"

	domainerr "github.com/amirhossein-jamali/bank-account-service/internal/domain/error"
	"github.com/amirhossein-jamali/bank-account-service/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/bank-account-service/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// AdminUserKey is the gin context key holding the authenticated admin username
const AdminUserKey = "admin_user"

// AdminAuth rejects requests without a valid admin bearer token
func AdminAuth(authenticator usecase.AdminAuthenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			abortUnauthorized(c, domainerr.ErrInvalidToken)
			return
		}

		username, err := authenticator.Verify(strings.TrimSpace(token))
		if err != nil {
			_ = c.Error(err)
			abortUnauthorized(c, domainerr.ErrInvalidToken)
			return
		}

		c.Set(AdminUserKey, username)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, err error) {
	c.Header("WWW-Authenticate", `Bearer realm="admin"`)
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: err.Error(),
	})
}
