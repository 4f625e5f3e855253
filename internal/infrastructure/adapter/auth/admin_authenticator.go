package auth

import (
	"context"
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"

	errs "github.com/amirhossein-jamali/bank-account-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bank-account-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/bank-account-service/internal/domain/port/usecase"
)

// AdminAuthenticator checks the configured admin credential and issues bearer tokens
type AdminAuthenticator struct {
	username     string
	passwordHash []byte
	tokens       *TokenManager
	logger       coreport.Logger
}

var _ usecase.AdminAuthenticator = (*AdminAuthenticator)(nil)

// NewAdminAuthenticator creates an authenticator for one admin account.
// passwordHash is a bcrypt hash, never the password itself.
func NewAdminAuthenticator(username, passwordHash string, tokens *TokenManager, logger coreport.Logger) *AdminAuthenticator {
	return &AdminAuthenticator{
		username:     username,
		passwordHash: []byte(passwordHash),
		tokens:       tokens,
		logger:       logger,
	}
}

// Login verifies the credentials and issues a token
func (a *AdminAuthenticator) Login(_ context.Context, username, password string) (*usecase.AdminSession, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
	// The hash is always checked so a wrong username costs as much as a wrong password
	passOK := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password)) == nil

	if !userOK || !passOK {
		a.logger.Warn("Admin login rejected", map[string]any{"username": username})
		return nil, errs.ErrInvalidAdminCredentials
	}

	token, expiresAt, err := a.tokens.Generate(a.username)
	if err != nil {
		a.logger.Error("Failed to issue admin token", map[string]any{"error": err.Error()})
		return nil, err
	}

	a.logger.Info("Admin logged in", map[string]any{
		"username":   a.username,
		"expires_at": expiresAt,
	})
	return &usecase.AdminSession{Token: token, ExpiresAt: expiresAt}, nil
}

// Verify validates a bearer token and returns the admin username
func (a *AdminAuthenticator) Verify(token string) (string, error) {
	subject, err := a.tokens.Parse(token)
	if err != nil {
		return "", err
	}
	if subtle.ConstantTimeCompare([]byte(subject), []byte(a.username)) != 1 {
		return "", errs.ErrInvalidToken
	}
	return subject, nil
}
