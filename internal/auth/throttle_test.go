// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ptd0409/portfolio/internal/platform/apperr"
	redisclient "github.com/ptd0409/portfolio/internal/platform/redis"
	"github.com/ptd0409/portfolio/internal/testutil"
)

func TestRedisThrottle(t *testing.T) {
	redisURL := os.Getenv("CATALOG_TEST_REDIS_URL")
	if redisURL == "" {
		t.Skip("CATALOG_TEST_REDIS_URL not set; skipping Redis integration test")
	}

	ctx := context.Background()
	client, err := redisclient.NewClient(ctx, redisURL, testutil.Logger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	throttle := NewRedisThrottle(client, 2, time.Minute)
	address := "test-" + uuid.NewString()
	t.Cleanup(func() { _ = throttle.Reset(ctx, address) })

	require.NoError(t, throttle.Check(ctx, address))
	require.NoError(t, throttle.Fail(ctx, address))
	require.NoError(t, throttle.Check(ctx, address))
	require.NoError(t, throttle.Fail(ctx, address))

	err = throttle.Check(ctx, address)
	assert.True(t, apperr.HasCode(err, apperr.CodeRateLimited))

	ttl, err := client.TTL(ctx, throttle.key(address)).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, 50*time.Second)

	require.NoError(t, throttle.Reset(ctx, address))
	assert.NoError(t, throttle.Check(ctx, address))
}
