// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ptd0409/portfolio/internal/platform/apperr"
	"github.com/ptd0409/portfolio/internal/platform/constants"
)

// Throttle counts failed logins per client.
type Throttle interface {
	// Check fails with RATE_LIMITED while the client is locked out.
	Check(ctx context.Context, client string) error
	// Fail records one failed attempt.
	Fail(ctx context.Context, client string) error
	// Reset forgets the client's failures.
	Reset(ctx context.Context, client string) error
}

// RedisThrottle keeps one expiring counter per client under
// [constants.RedisPrefixLoginFailures]. The window starts at the first failure.
type RedisThrottle struct {
	client      *redis.Client
	maxAttempts int
	lockout     time.Duration
}

func NewRedisThrottle(client *redis.Client, maxAttempts int, lockout time.Duration) *RedisThrottle {
	return &RedisThrottle{client: client, maxAttempts: maxAttempts, lockout: lockout}
}

func (throttle *RedisThrottle) key(client string) string {
	return constants.RedisPrefixLoginFailures + client
}

func (throttle *RedisThrottle) Check(ctx context.Context, client string) error {
	failures, err := throttle.client.Get(ctx, throttle.key(client)).Int()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("redis: read login failures: %w", err)
	}
	if failures < throttle.maxAttempts {
		return nil
	}

	remaining, err := throttle.client.TTL(ctx, throttle.key(client)).Result()
	if err != nil || remaining <= 0 {
		remaining = throttle.lockout
	}
	return apperr.RateLimited(int(remaining.Round(time.Second).Seconds()))
}

func (throttle *RedisThrottle) Fail(ctx context.Context, client string) error {
	key := throttle.key(client)

	failures, err := throttle.client.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("redis: count login failure: %w", err)
	}
	if failures == 1 {
		if err := throttle.client.Expire(ctx, key, throttle.lockout).Err(); err != nil {
			return fmt.Errorf("redis: expire login failures: %w", err)
		}
	}
	return nil
}

func (throttle *RedisThrottle) Reset(ctx context.Context, client string) error {
	if err := throttle.client.Del(ctx, throttle.key(client)).Err(); err != nil {
		return fmt.Errorf("redis: reset login failures: %w", err)
	}
	return nil
}
