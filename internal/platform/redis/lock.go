// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package redis

import (
	stdctx "context"
	"errors"
	"fmt"
	"time"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"
)

// ErrLockHeld is returned when another instance already holds the requested lock.
var ErrLockHeld = errors.New("redis: lock is held by another instance")

// Locker obtains short-lived, cross-instance mutual exclusion backed by Redis.
type Locker struct {
	client *redislock.Client
}

// NewLocker wraps a connected go-redis client with a [redislock.Client].
func NewLocker(client *redis.Client) *Locker {
	return &Locker{client: redislock.New(client)}
}

/*
Acquire obtains the lock identified by key for at most ttl.

Parameters:
  - context: Context for the acquisition round-trip
  - key: Redis key of the lock
  - ttl: Lease duration; the lock expires on its own if never released

Returns:
  - func(stdctx.Context) error: Releases the lock
  - error: ErrLockHeld when another holder owns the key, or connectivity errors
*/
func (locker *Locker) Acquire(context stdctx.Context, key string, ttl time.Duration) (func(stdctx.Context) error, error) {
	lock, err := locker.client.Obtain(context, key, ttl, nil)
	if errors.Is(err, redislock.ErrNotObtained) {
		return nil, ErrLockHeld
	}
	if err != nil {
		return nil, fmt.Errorf("redis: obtain lock %q: %w", key, err)
	}

	release := func(ctx stdctx.Context) error {
		if err := lock.Release(ctx); err != nil && !errors.Is(err, redislock.ErrLockNotHeld) {
			return fmt.Errorf("redis: release lock %q: %w", key, err)
		}
		return nil
	}

	return release, nil
}
