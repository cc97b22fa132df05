// Package redis provides the optional Redis-backed rate-limiter store. It is
// only wired when REDIS_ADDR is configured; otherwise the router keeps its
// counters in process memory.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultTimeout = 5 * time.Second

// Config captures the connection and window settings for the limiter.
type Config struct {
	Addr     string
	DB       int
	Requests int
	Window   time.Duration
}

// commands is the slice of the Redis API the store uses. Satisfied by
// *redis.Client; tests substitute a stub.
type commands interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
	Close() error
}

// RateLimiterStore is a fixed-window per-identifier request counter backed by
// Redis, satisfying echo's middleware.RateLimiterStore. It lets several
// instances share one limit, unlike the default in-memory store.
// Key format: ratelimit:<identifier>
type RateLimiterStore struct {
	client commands
	limit  int
	window time.Duration
}

// NewRateLimiterStore dials Redis, verifies connectivity with a ping, and
// returns a store allowing cfg.Requests per cfg.Window for each identifier
// (the caller decides what identifies a client, typically IP).
func NewRateLimiterStore(ctx context.Context, cfg Config) (*RateLimiterStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &RateLimiterStore{client: client, limit: cfg.Requests, window: cfg.Window}, nil
}

// Allow increments the identifier's counter and reports whether it is still
// within the window's limit. The counter is created with its TTL before the
// increment, so the key can never outlive the window even if the process dies
// between the two commands.
func (s *RateLimiterStore) Allow(identifier string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	key := fmt.Sprintf("ratelimit:%s", identifier)

	if err := s.client.SetNX(ctx, key, 0, s.window).Err(); err != nil {
		return false, fmt.Errorf("rate limit setnx: %w", err)
	}

	n, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("rate limit incr: %w", err)
	}

	return n <= int64(s.limit), nil
}

// Close releases the underlying Redis connection.
func (s *RateLimiterStore) Close() error {
	return s.client.Close()
}
