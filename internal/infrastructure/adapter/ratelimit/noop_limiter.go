package ratelimit

import (
	"context"

	coreport "github.com/amirhossein-jamali/bank-account-service/internal/domain/port/core"
)

// NoopLimiter allows every attempt. It is used when no redis is configured.
type NoopLimiter struct{}

var _ coreport.AttemptLimiter = NoopLimiter{}

func (NoopLimiter) Acquire(context.Context, string) (bool, error) { return true, nil }
func (NoopLimiter) Reset(context.Context, string) error { return nil }
