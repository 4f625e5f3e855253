package usecase

import (
	"context"
	"time"
)

// AdminSession is issued after a successful admin login
type AdminSession struct {
	Token     string
	ExpiresAt time.Time
}

// AdminAuthenticator gates the admin listing and export views
type AdminAuthenticator interface {
	// Login checks the admin credentials and issues a bearer token
	Login(ctx context.Context, username, password string) (*AdminSession, error)

	// Verify validates a bearer token and returns the admin username it was issued to
	Verify(token string) (string, error)
}
