package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/bank-account-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bank-account-service/internal/domain/error"
	"github.com/amirhossein-jamali/bank-account-service/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/bank-account-service/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/bank-account-service/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/bank-account-service/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/bank-account-service/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/bank-account-service/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/bank-account-service/internal/infrastructure/adapter/time"
	mockusecase "github.com/amirhossein-jamali/bank-account-service/mocks/port/usecase"
)

const (
	annAccountNo = "ab1#C2d&3"
	annPIN       = "1234"
)

type stubPinger struct {
	err error
}

func (p *stubPinger) Ping(context.Context) error { return p.err }

type testServer struct {
	router   *gin.Engine
	accounts *mockusecase.MockAccountUseCase
	admin    *mockusecase.MockAdminAuthenticator
	pinger   *stubPinger
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.NewNoopLogger()
	accounts := mockusecase.NewMockAccountUseCase(t)
	admin := mockusecase.NewMockAdminAuthenticator(t)
	pinger := &stubPinger{}

	router := gin.New()
	routes.SetupMiddlewares(router, log, timeprovider.NewRealTimeProvider())
	routes.SetupRoutes(router, routes.Handlers{
		Account: handler.NewAccountHandler(accounts, log),
		Admin:   handler.NewAdminHandler(admin, accounts, log),
		Health:  handler.NewHealthHandler(pinger, log),
	}, admin)

	return &testServer{router: router, accounts: accounts, admin: admin, pinger: pinger}
}

func (s *testServer) do(t *testing.T, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
	return out
}

func assertError(t *testing.T, w *httptest.ResponseRecorder, status int, want error) {
	t.Helper()

	assert.Equal(t, status, w.Code)
	body := decode[dto.ErrorResponse](t, w)
	assert.Equal(t, errs.ErrorCode(want), body.Code)
	assert.Equal(t, want.Error(), body.Message)
}

func annAccount() *entity.Account {
	created := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	return entity.RestoreAccount(1, "Ann", "ann@x.com", 30, annAccountNo, "$2a$04$hash", 300, created, created)
}

func TestCreateAccount_Created(t *testing.T) {
	s := newTestServer(t)
	s.accounts.EXPECT().
		CreateAccount(mock.Anything, usecase.CreateAccountRequest{Name: "Ann", Email: "ann@x.com", Age: 30, PIN: "0042"}).
		Return(&usecase.CreateAccountResult{AccountNo: annAccountNo, Message: "Account created successfully"}, nil)

	w := s.do(t, http.MethodPost, "/accounts", map[string]any{
		"name": "Ann", "email": "ann@x.com", "age": 30, "pin": "0042",
	}, nil)

	assert.Equal(t, http.StatusCreated, w.Code)
	body := decode[dto.CreateAccountResponse](t, w)
	assert.Equal(t, annAccountNo, body.AccountNo)
	assert.Equal(t, "Account created successfully", body.Message)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func TestCreateAccount_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"underage", errs.ErrUnderage},
		{"invalid pin", errs.ErrInvalidPIN},
		{"invalid name", errs.ErrInvalidName},
		{"invalid email", errs.ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			s.accounts.EXPECT().CreateAccount(mock.Anything, mock.Anything).Return(nil, tt.err)

			w := s.do(t, http.MethodPost, "/accounts", map[string]any{
				"name": "Kid", "email": "kid@x.com", "age": 12, "pin": "1234",
			}, nil)

			assertError(t, w, http.StatusBadRequest, tt.err)
		})
	}
}

func TestCreateAccount_MalformedBody(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/accounts", `{"name":`, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decode[dto.ErrorResponse](t, w)
	assert.Equal(t, errs.ErrorCode(errs.ErrInvalidRequest), body.Code)
	assert.Contains(t, body.Message, "Invalid request format")
}

func TestCreateAccount_CollisionExhausted(t *testing.T) {
	s := newTestServer(t)
	s.accounts.EXPECT().CreateAccount(mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("giving up after 5 attempts: %w", errs.ErrDuplicateAccountNo))

	w := s.do(t, http.MethodPost, "/accounts", map[string]any{
		"name": "Ann", "email": "ann@x.com", "age": 30, "pin": "1234",
	}, nil)

	assertError(t, w, http.StatusConflict, errs.ErrDuplicateAccountNo)
}

func TestDeposit_Success(t *testing.T) {
	s := newTestServer(t)
	s.accounts.EXPECT().Deposit(mock.Anything, annAccountNo, annPIN, int64(500)).
		Return(&usecase.BalanceResult{AccountNo: annAccountNo, Balance: 500, Message: "Deposit successful! New balance: 500"}, nil)

	w := s.do(t, http.MethodPost, "/accounts/deposit", map[string]any{
		"accountNo": annAccountNo, "pin": annPIN, "amount": 500,
	}, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decode[dto.BalanceResponse](t, w)
	assert.Equal(t, int64(500), body.Balance)
	assert.Equal(t, "Deposit successful! New balance: 500", body.Message)
}

func TestDeposit_OutOfRange(t *testing.T) {
	s := newTestServer(t)
	s.accounts.EXPECT().Deposit(mock.Anything, annAccountNo, annPIN, int64(10001)).
		Return(nil, &errs.AccountError{AccountNo: annAccountNo, Operation: "deposit", Err: errs.ErrDepositOutOfRange})

	w := s.do(t, http.MethodPost, "/accounts/deposit", map[string]any{
		"accountNo": annAccountNo, "pin": annPIN, "amount": 10001,
	}, nil)

	assertError(t, w, http.StatusBadRequest, errs.ErrDepositOutOfRange)
}

func TestDeposit_MissingCredentials(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/accounts/deposit", map[string]any{"amount": 100}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, errs.ErrorCode(errs.ErrInvalidRequest), decode[dto.ErrorResponse](t, w).Code)
}

func TestWithdraw_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		want   error
	}{
		{"overdraft", errs.ErrInvalidWithdrawal, http.StatusBadRequest, errs.ErrInvalidWithdrawal},
		{"lost race", errs.ErrInsufficientBalance, http.StatusBadRequest, errs.ErrInsufficientBalance},
		{"wrong pin", errs.ErrInvalidCredentials, http.StatusUnauthorized, errs.ErrInvalidCredentials},
		{"locked out", errs.ErrTooManyAttempts, http.StatusTooManyRequests, errs.ErrTooManyAttempts},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			s.accounts.EXPECT().Withdraw(mock.Anything, annAccountNo, annPIN, int64(400)).
				Return(nil, &errs.AccountError{AccountNo: annAccountNo, Operation: "withdraw", Err: tt.err})

			w := s.do(t, http.MethodPost, "/accounts/withdraw", map[string]any{
				"accountNo": annAccountNo, "pin": annPIN, "amount": 400,
			}, nil)

			assertError(t, w, tt.status, tt.want)
		})
	}
}

func TestWithdraw_StoreFailuresAreNotLeaked(t *testing.T) {
	s := newTestServer(t)
	s.accounts.EXPECT().Withdraw(mock.Anything, annAccountNo, annPIN, int64(100)).
		Return(nil, fmt.Errorf("%w: dial tcp 10.0.0.5:5432: connection refused", errs.ErrDatabaseConnection))

	w := s.do(t, http.MethodPost, "/accounts/withdraw", map[string]any{
		"accountNo": annAccountNo, "pin": annPIN, "amount": 100,
	}, nil)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	body := decode[dto.ErrorResponse](t, w)
	assert.Equal(t, "Service temporarily unavailable", body.Message)
	assert.NotContains(t, w.Body.String(), "10.0.0.5")
}

func TestGetDetails_Success(t *testing.T) {
	s := newTestServer(t)
	s.accounts.EXPECT().GetDetails(mock.Anything, annAccountNo, annPIN).Return(annAccount(), nil)

	w := s.do(t, http.MethodPost, "/accounts/details", map[string]any{
		"accountNo": annAccountNo, "pin": annPIN,
	}, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	view := decode[dto.AccountView](t, w)
	assert.Equal(t, "Ann", view.Name)
	assert.Equal(t, int64(300), view.Balance)
	assert.Equal(t, annAccountNo, view.AccountNo)

	raw := decode[map[string]any](t, w)
	assert.NotContains(t, raw, "pin")
	assert.NotContains(t, raw, "pinHash")
	assert.NotContains(t, w.Body.String(), "$2a$")
}

func TestGetDetails_InvalidCredentials(t *testing.T) {
	s := newTestServer(t)
	s.accounts.EXPECT().GetDetails(mock.Anything, annAccountNo, "9999").Return(nil, errs.ErrInvalidCredentials)

	w := s.do(t, http.MethodPost, "/accounts/details", map[string]any{
		"accountNo": annAccountNo, "pin": "9999",
	}, nil)

	assertError(t, w, http.StatusUnauthorized, errs.ErrInvalidCredentials)
}

func TestUpdateDetails_MapsOptionalFields(t *testing.T) {
	s := newTestServer(t)
	s.accounts.EXPECT().
		UpdateDetails(mock.Anything, annAccountNo, annPIN, usecase.UpdateDetailsRequest{NewName: "Annie", NewPIN: "4321"}).
		Return("Details updated successfully", nil)

	w := s.do(t, http.MethodPatch, "/accounts", map[string]any{
		"accountNo": annAccountNo, "pin": annPIN, "newName": "Annie", "newPin": "4321",
	}, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Details updated successfully", decode[dto.MessageResponse](t, w).Message)
}

func TestUpdateDetails_InvalidNewPIN(t *testing.T) {
	s := newTestServer(t)
	s.accounts.EXPECT().UpdateDetails(mock.Anything, annAccountNo, annPIN, mock.Anything).Return("", errs.ErrInvalidPIN)

	w := s.do(t, http.MethodPatch, "/accounts", map[string]any{
		"accountNo": annAccountNo, "pin": annPIN, "newPin": "12a4",
	}, nil)

	assertError(t, w, http.StatusBadRequest, errs.ErrInvalidPIN)
}

func TestDeleteAccount(t *testing.T) {
	s := newTestServer(t)
	s.accounts.EXPECT().DeleteAccount(mock.Anything, annAccountNo, annPIN).Return("Account deleted successfully", nil)

	w := s.do(t, http.MethodDelete, "/accounts", map[string]any{
		"accountNo": annAccountNo, "pin": annPIN,
	}, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Account deleted successfully", decode[dto.MessageResponse](t, w).Message)
}

func TestUnexpectedErrorIsGeneric(t *testing.T) {
	s := newTestServer(t)
	s.accounts.EXPECT().DeleteAccount(mock.Anything, annAccountNo, annPIN).Return("", errors.New("pq: relation missing"))

	w := s.do(t, http.MethodDelete, "/accounts", map[string]any{
		"accountNo": annAccountNo, "pin": annPIN,
	}, nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decode[dto.ErrorResponse](t, w)
	assert.Equal(t, errs.ErrorCode(errs.ErrInternalServer), body.Code)
	assert.Equal(t, "Internal server error", body.Message)
}

func TestPanicIsRecovered(t *testing.T) {
	s := newTestServer(t)
	s.accounts.EXPECT().Deposit(mock.Anything, annAccountNo, annPIN, int64(1)).
		RunAndReturn(func(context.Context, string, string, int64) (*usecase.BalanceResult, error) {
			panic("boom")
		})

	w := s.do(t, http.MethodPost, "/accounts/deposit", map[string]any{
		"accountNo": annAccountNo, "pin": annPIN, "amount": 1,
	}, nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, errs.ErrorCode(errs.ErrInternalServer), decode[dto.ErrorResponse](t, w).Code)
}

func TestRequestIDIsEchoed(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/health", nil, map[string]string{middleware.RequestIDHeader: "req-42"})

	assert.Equal(t, "req-42", w.Header().Get(middleware.RequestIDHeader))
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/health", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, dto.HealthResponse{Status: "ok", Database: "up"}, decode[dto.HealthResponse](t, w))

	s.pinger.err = errors.New("connection refused")
	w = s.do(t, http.MethodGet, "/health", nil, nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "down", decode[dto.HealthResponse](t, w).Database)
}
