package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	errs "github.com/amirhossein-jamali/bank-account-service/internal/domain/error"
	"github.com/amirhossein-jamali/bank-account-service/internal/infrastructure/adapter/logger"
	mockcore "github.com/amirhossein-jamali/bank-account-service/mocks/port/core"
)

const (
	testSecret = "0123456789abcdef0123456789abcdef"
	testIssuer = "bank-account-service"
)

// movableClock returns a mocked clock whose time the test can advance
func movableClock(t *testing.T, start time.Time) (*mockcore.MockTimeProvider, *time.Time) {
	t.Helper()

	now := start
	clock := mockcore.NewMockTimeProvider(t)
	clock.EXPECT().Now().RunAndReturn(func() time.Time { return now }).Maybe()
	return clock, &now
}

func newAuthenticator(t *testing.T, password string) (*AdminAuthenticator, *time.Time) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	clock, now := movableClock(t, time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))
	tokens := NewTokenManager(testSecret, testIssuer, 30*time.Minute, clock)
	return NewAdminAuthenticator("admin", string(hash), tokens, logger.NewNoopLogger()), now
}

func TestAdminAuthenticator_Login(t *testing.T) {
	authn, now := newAuthenticator(t, "s3cret-pass")
	ctx := context.Background()

	t.Run("Valid credentials", func(t *testing.T) {
		session, err := authn.Login(ctx, "admin", "s3cret-pass")
		require.NoError(t, err)
		assert.NotEmpty(t, session.Token)
		assert.Equal(t, now.Add(30*time.Minute), session.ExpiresAt)

		username, err := authn.Verify(session.Token)
		require.NoError(t, err)
		assert.Equal(t, "admin", username)
	})

	t.Run("Wrong password", func(t *testing.T) {
		_, err := authn.Login(ctx, "admin", "wrong")
		assert.ErrorIs(t, err, errs.ErrInvalidAdminCredentials)
	})

	t.Run("Wrong username", func(t *testing.T) {
		_, err := authn.Login(ctx, "root", "s3cret-pass")
		assert.ErrorIs(t, err, errs.ErrInvalidAdminCredentials)
	})

	t.Run("Empty credentials", func(t *testing.T) {
		_, err := authn.Login(ctx, "", "")
		assert.ErrorIs(t, err, errs.ErrInvalidAdminCredentials)
	})
}

func TestAdminAuthenticator_Verify(t *testing.T) {
	authn, now := newAuthenticator(t, "s3cret-pass")
	ctx := context.Background()

	session, err := authn.Login(ctx, "admin", "s3cret-pass")
	require.NoError(t, err)

	t.Run("Garbage token", func(t *testing.T) {
		_, err := authn.Verify("not-a-token")
		assert.ErrorIs(t, err, errs.ErrInvalidToken)
	})

	t.Run("Tampered token", func(t *testing.T) {
		_, err := authn.Verify(session.Token + "x")
		assert.ErrorIs(t, err, errs.ErrInvalidToken)
	})

	t.Run("Other secret", func(t *testing.T) {
		clock, _ := movableClock(t, *now)
		other := NewTokenManager("another-secret-another-secret", testIssuer, time.Hour, clock)
		token, _, err := other.Generate("admin")
		require.NoError(t, err)

		_, err = authn.Verify(token)
		assert.ErrorIs(t, err, errs.ErrInvalidToken)
	})

	t.Run("Other issuer", func(t *testing.T) {
		clock, _ := movableClock(t, *now)
		other := NewTokenManager(testSecret, "someone-else", time.Hour, clock)
		token, _, err := other.Generate("admin")
		require.NoError(t, err)

		_, err = authn.Verify(token)
		assert.ErrorIs(t, err, errs.ErrInvalidToken)
	})

	t.Run("Other subject", func(t *testing.T) {
		clock, _ := movableClock(t, *now)
		other := NewTokenManager(testSecret, testIssuer, time.Hour, clock)
		token, _, err := other.Generate("mallory")
		require.NoError(t, err)

		_, err = authn.Verify(token)
		assert.ErrorIs(t, err, errs.ErrInvalidToken)
	})

	t.Run("Expired token", func(t *testing.T) {
		saved := *now
		*now = now.Add(31 * time.Minute)
		defer func() { *now = saved }()

		_, err := authn.Verify(session.Token)
		assert.ErrorIs(t, err, errs.ErrInvalidToken)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})
}

func TestTokenManager_RejectsOtherAlgorithmsAndRoles(t *testing.T) {
	clock, now := movableClock(t, time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))
	tokens := NewTokenManager(testSecret, testIssuer, time.Hour, clock)

	t.Run("HS512", func(t *testing.T) {
		claims := AdminClaims{
			Role: RoleAdmin,
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    testIssuer,
				Subject:   "admin",
				ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			},
		}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)

		_, err = tokens.Parse(signed)
		assert.ErrorIs(t, err, errs.ErrInvalidToken)
	})

	t.Run("Missing role", func(t *testing.T) {
		claims := AdminClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    testIssuer,
				Subject:   "admin",
				ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			},
		}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)

		_, err = tokens.Parse(signed)
		assert.ErrorIs(t, err, errs.ErrInvalidToken)
	})

	t.Run("Missing expiry", func(t *testing.T) {
		claims := AdminClaims{
			Role: RoleAdmin,
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:  testIssuer,
				Subject: "admin",
			},
		}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)

		_, err = tokens.Parse(signed)
		assert.ErrorIs(t, err, errs.ErrInvalidToken)
	})
}
