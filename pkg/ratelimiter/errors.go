package ratelimiter

import "errors"

var (
	// ErrInvalidConfig is returned by NewBucket for a non-positive setting.
	ErrInvalidConfig = errors.New("ratelimiter: invalid configuration")

	// ErrInvalidTokenCount is returned when a caller asks for fewer than one token.
	ErrInvalidTokenCount = errors.New("ratelimiter: invalid token count")
)
