package cache

import (
	"context"
	"time"
)

// Cache is the read-through layer in front of the candidate store. The
// dashboard list is the only hot path; persisting a candidate invalidates it.
type Cache interface {
	GetJSON(ctx context.Context, key string, dst any) (hit bool, err error)
	SetJSON(ctx context.Context, key string, val any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}
