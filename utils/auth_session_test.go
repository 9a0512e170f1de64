package utils

import (
	"context"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	return mr, redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func TestCheckAuthSessionPrimesOnFirstUse(t *testing.T) {
	_, cache := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, CheckAuthSession(ctx, cache, "cust-1", "token-a"))
	assert.NoError(t, CheckAuthSession(ctx, cache, "cust-1", "token-a"))
}

func TestNewerLoginSupersedesOlderToken(t *testing.T) {
	_, cache := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, PrimeAuthSession(ctx, cache, "cust-1", "token-a"))
	require.NoError(t, CheckAuthSession(ctx, cache, "cust-1", "token-a"))

	// Logging in again replaces the cached hash. The new token must
	// authenticate immediately; the old one is rejected.
	require.NoError(t, PrimeAuthSession(ctx, cache, "cust-1", "token-b"))
	assert.NoError(t, CheckAuthSession(ctx, cache, "cust-1", "token-b"))
	assert.ErrorIs(t, CheckAuthSession(ctx, cache, "cust-1", "token-a"), ErrSessionSuperseded)
}

func TestPrimeAuthSessionSetsTTL(t *testing.T) {
	mr, cache := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, PrimeAuthSession(ctx, cache, "cust-1", "token-a"))
	assert.Equal(t, AuthCacheTTL, mr.TTL(AuthCachePrefix+"cust-1"))
}

func TestAuthSessionNilClientIsNoop(t *testing.T) {
	ctx := context.Background()
	assert.NoError(t, PrimeAuthSession(ctx, nil, "cust-1", "token-a"))
	assert.NoError(t, CheckAuthSession(ctx, nil, "cust-1", "token-a"))
}
