package ratelimiter

import (
	"context"
	"fmt"
)

// Bucket is a token bucket limiter over a Store.
type Bucket struct {
	store Store
	cfg   Config
}

// NewBucket validates cfg and returns a limiter backed by store.
func NewBucket(store Store, cfg Config) (*Bucket, error) {
	switch {
	case cfg.Capacity <= 0:
		return nil, fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidConfig, cfg.Capacity)
	case cfg.RefillRate <= 0:
		return nil, fmt.Errorf("%w: refill rate must be positive, got %d", ErrInvalidConfig, cfg.RefillRate)
	case cfg.RefillInterval <= 0:
		return nil, fmt.Errorf("%w: refill interval must be positive, got %v", ErrInvalidConfig, cfg.RefillInterval)
	}
	return &Bucket{store: store, cfg: cfg}, nil
}

// Allow takes one token for key.
func (b *Bucket) Allow(ctx context.Context, key string) (Result, error) {
	return b.AllowN(ctx, key, 1)
}

// AllowN takes n tokens for key.
func (b *Bucket) AllowN(ctx context.Context, key string, n int) (Result, error) {
	if n <= 0 {
		return Result{}, fmt.Errorf("%w: must be positive, got %d", ErrInvalidTokenCount, n)
	}
	remaining, resetAt, err := b.store.ConsumeTokens(ctx, key, n, b.cfg)
	if err != nil {
		return Result{}, err
	}
	return Result{Limit: b.cfg.Capacity, Remaining: remaining, ResetAt: resetAt}, nil
}

// Reset forgets key's state.
func (b *Bucket) Reset(ctx context.Context, key string) error {
	return b.store.Reset(ctx, key)
}
