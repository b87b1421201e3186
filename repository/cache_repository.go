package repository

import (
	"context"
	"time"
)

// CacheRepository stores encoded results by key. Get reports a miss with
// ok=false and a nil error; err is reserved for backend failures.
type CacheRepository interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
}
