package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

var ErrMiss = errors.New("cache miss")

// Store is a generic string-keyed cache. Implementations must be safe for concurrent use.
type Store interface {
	// Get returns ErrMiss when the key is absent or expired.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// Fetch reads key through the store and falls back to load on a miss or on any
// store failure. A failed write-back never fails the call.
func Fetch[T any](ctx context.Context, store Store, key string, ttl time.Duration, load func(ctx context.Context) (T, error)) (T, error) {
	if store != nil {
		raw, err := store.Get(ctx, key)
		switch {
		case err == nil:
			var cached T
			if jsonErr := json.Unmarshal(raw, &cached); jsonErr == nil {
				return cached, nil
			}
			slog.Warn("discarding undecodable cache entry", "key", key)
		case !errors.Is(err, ErrMiss):
			slog.Warn("cache read failed, falling through to source", "key", key, "error", err)
		}
	}

	value, err := load(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	if store != nil {
		raw, jsonErr := json.Marshal(value)
		if jsonErr == nil {
			if setErr := store.Set(ctx, key, raw, ttl); setErr != nil {
				slog.Warn("cache write failed", "key", key, "error", setErr)
			}
		}
	}
	return value, nil
}

func RoomKey(roomID int64) string {
	return fmt.Sprintf("room:%d", roomID)
}

func RoomStatusKey(roomID int64) string {
	return fmt.Sprintf("room:%d:status", roomID)
}

func RoomTypeKey(typeID int64) string {
	return fmt.Sprintf("room_type:%d", typeID)
}

func PricingRulesKey(typeID int64) string {
	return fmt.Sprintf("pricing_rules:%d", typeID)
}

const ExtrasKey = "extras"
