package ratelimit

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	coreport "github.com/amirhossein-jamali/bank-account-service/internal/domain/port/core"
)

const defaultKeyPrefix = "bank:pin-attempts"

// acquireScript counts the attempt and reports whether it is within the limit.
// The window starts with the first attempt and later attempts do not extend it.
// KEYS[1] counter, ARGV[1] window in ms, ARGV[2] max attempts
var acquireScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
if current > tonumber(ARGV[2]) then
  return 0
end
return 1
`)

// RedisAttemptLimiter counts PIN attempts per account number in redis.
// Counters are shared by every service instance using the same redis, and a
// successful authentication clears them.
type RedisAttemptLimiter struct {
	client      redis.UniversalClient
	prefix      string
	maxAttempts int
	window      time.Duration
}

var _ coreport.AttemptLimiter = (*RedisAttemptLimiter)(nil)

// NewRedisAttemptLimiter creates a limiter that refuses attempts once maxAttempts
// attempts without a success were counted within window
func NewRedisAttemptLimiter(client redis.UniversalClient, prefix string, maxAttempts int, window time.Duration) *RedisAttemptLimiter {
	trimmedPrefix := strings.TrimSuffix(strings.TrimSpace(prefix), ":")
	if trimmedPrefix == "" {
		trimmedPrefix = defaultKeyPrefix
	}

	return &RedisAttemptLimiter{
		client:      client,
		prefix:      trimmedPrefix,
		maxAttempts: maxAttempts,
		window:      window,
	}
}

func (l *RedisAttemptLimiter) key(accountNo string) string {
	return l.prefix + ":" + accountNo
}

// Acquire counts one attempt and reports whether it may go ahead. Once
// maxAttempts attempts were counted in the window, every further one is refused
// until the window ends or Reset is called.
func (l *RedisAttemptLimiter) Acquire(ctx context.Context, accountNo string) (bool, error) {
	if l.maxAttempts <= 0 {
		return true, nil
	}

	// Windows shorter than a second are rounded up
	windowMs := l.window.Milliseconds()
	if windowMs < 1000 {
		windowMs = 1000
	}

	allowed, err := acquireScript.Run(ctx, l.client, []string{l.key(accountNo)}, windowMs, l.maxAttempts).Int()
	if err != nil {
		return false, fmt.Errorf("counting attempt: %w", err)
	}
	return allowed == 1, nil
}

// Reset clears the counter
func (l *RedisAttemptLimiter) Reset(ctx context.Context, accountNo string) error {
	if err := l.client.Del(ctx, l.key(accountNo)).Err(); err != nil {
		return fmt.Errorf("resetting attempt counter: %w", err)
	}
	return nil
}

// NewRedisClient parses a redis:// URL and pings the server
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("error parsing redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("error pinging redis: %w", err)
	}

	return client, nil
}
