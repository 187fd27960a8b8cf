// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package mapping

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/skumaster/internal/core/skucode"
	"github.com/taibuivan/skumaster/internal/platform/constants"
)

// RedisDictionaryCache implements [DictionaryCache] with a generation counter
// and one JSON snapshot per generation.
type RedisDictionaryCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewDictionaryCache creates a Redis-backed [DictionaryCache] whose snapshots expire after ttl.
func NewDictionaryCache(client *redis.Client, ttl time.Duration) *RedisDictionaryCache {
	return &RedisDictionaryCache{client: client, ttl: ttl}
}

func snapshotKey(generation int64) string {
	return fmt.Sprintf("%s:%d", constants.RedisKeyDictionary, generation)
}

/*
Get reads the current generation and its snapshot.

Returns:
  - []skucode.Entry: Entries in creation order
  - int64: Current generation (0 before the first invalidation)
  - bool: false when the snapshot is absent or expired
  - error: Connectivity or decoding failures
*/
func (cache *RedisDictionaryCache) Get(context context.Context) ([]skucode.Entry, int64, bool, error) {
	generation, err := cache.client.Get(context, constants.RedisKeyDictionaryGeneration).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, 0, false, fmt.Errorf("redis_dictionary_generation_failed: %w", err)
	}

	payload, err := cache.client.Get(context, snapshotKey(generation)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, generation, false, nil
		}
		return nil, 0, false, fmt.Errorf("redis_dictionary_get_failed: %w", err)
	}

	var entries []skucode.Entry
	if err := json.Unmarshal(payload, &entries); err != nil {
		return nil, 0, false, fmt.Errorf("redis_dictionary_decode_failed: %w", err)
	}

	return entries, generation, true, nil
}

// Set stores entries under generation with the configured TTL.
func (cache *RedisDictionaryCache) Set(context context.Context, generation int64, entries []skucode.Entry) error {
	payload, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("redis_dictionary_encode_failed: %w", err)
	}

	if err := cache.client.Set(context, snapshotKey(generation), payload, cache.ttl).Err(); err != nil {
		return fmt.Errorf("redis_dictionary_set_failed: %w", err)
	}
	return nil
}

// Invalidate bumps the generation. Older snapshots are left to expire.
func (cache *RedisDictionaryCache) Invalidate(context context.Context) error {
	if err := cache.client.Incr(context, constants.RedisKeyDictionaryGeneration).Err(); err != nil {
		return fmt.Errorf("redis_dictionary_invalidate_failed: %w", err)
	}
	return nil
}
