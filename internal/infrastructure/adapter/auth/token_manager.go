package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	errs "github.com/amirhossein-jamali/bank-account-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bank-account-service/internal/domain/port/core"
)

// RoleAdmin is the only role the service issues
const RoleAdmin = "admin"

// AdminClaims are the JWT claims of an admin session
type AdminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies HS256-signed admin tokens
type TokenManager struct {
	secret       []byte
	issuer       string
	ttl          time.Duration
	timeProvider coreport.TimeProvider
}

// NewTokenManager creates a manager with the provided secret, issuer, and lifetime
func NewTokenManager(secret, issuer string, ttl time.Duration, timeProvider coreport.TimeProvider) *TokenManager {
	return &TokenManager{
		secret:       []byte(secret),
		issuer:       issuer,
		ttl:          ttl,
		timeProvider: timeProvider,
	}
}

// Generate issues a signed token for username and returns it with its expiry
func (t *TokenManager) Generate(username string) (string, time.Time, error) {
	now := t.timeProvider.Now()
	expiresAt := now.Add(t.ttl)

	claims := AdminClaims{
		Role: RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    t.issuer,
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%w: signing admin token: %w", errs.ErrInternalServer, err)
	}
	return signed, expiresAt, nil
}

// Parse validates signature, issuer, expiry and role and returns the subject
func (t *TokenManager) Parse(tokenString string) (string, error) {
	claims := &AdminClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (interface{}, error) {
			return t.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(t.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.timeProvider.Now),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %w", errs.ErrInvalidToken, err)
	}

	if claims.Role != RoleAdmin {
		return "", fmt.Errorf("%w: role %q", errs.ErrInvalidToken, claims.Role)
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("%w: missing subject", errs.ErrInvalidToken)
	}
	return claims.Subject, nil
}
