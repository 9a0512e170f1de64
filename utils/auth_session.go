// File: utils/auth_session.go
package utils

import (
	"context"
	"errors"

	"github.com/go-redis/redis/v8"
)

// ErrSessionSuperseded is returned when the presented token is no longer the
// customer's most recently issued one.
var ErrSessionSuperseded = errors.New("session superseded by a newer login")

// PrimeAuthSession records the token as the customer's current session. Login
// and registration call this so the newest token always wins.
func PrimeAuthSession(ctx context.Context, client *redis.Client, subject, token string) error {
	if client == nil {
		return nil
	}
	return client.Set(ctx, AuthCachePrefix+subject, HashToken(token), AuthCacheTTL).Err()
}

// CheckAuthSession verifies the token is the customer's current session and
// refreshes the entry's TTL. A cache miss primes the entry instead of
// rejecting, so a flushed cache never locks customers out.
func CheckAuthSession(ctx context.Context, client *redis.Client, subject, token string) error {
	if client == nil {
		return nil
	}
	key := AuthCachePrefix + subject
	hash := HashToken(token)

	cached, err := client.Get(ctx, key).Result()
	switch {
	case err == redis.Nil:
		return client.Set(ctx, key, hash, AuthCacheTTL).Err()
	case err != nil:
		return err
	case cached != hash:
		return ErrSessionSuperseded
	}
	return client.Expire(ctx, key, AuthCacheTTL).Err()
}
