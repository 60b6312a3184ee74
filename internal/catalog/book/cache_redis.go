// Copyright (c) 2026 Bookvault. All rights reserved.

package book

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"github.com/minhngoc/bookvault/internal/platform/constants"
)

// Cache is a short-TTL Redis read cache for hydrated book records.
//
// It is strictly best-effort: every method is nil-safe and swallows Redis
// errors, falling back to the relational store. Writes evict eagerly; the
// TTL only bounds staleness after a missed invalidation.
type Cache struct {
	client *redis.Client
}

func NewCache(client *redis.Client) *Cache {
	return &Cache{client: client}
}

func (cache *Cache) key(id string) string {
	return constants.RedisPrefixBook + id
}

// Get returns the cached book and whether the lookup hit.
func (cache *Cache) Get(context context.Context, id string) (*Book, bool) {
	if cache == nil || cache.client == nil {
		return nil, false
	}

	payload, err := cache.client.Get(context, cache.key(id)).Bytes()
	if err != nil {
		return nil, false
	}

	b := &Book{}
	if err := json.Unmarshal(payload, b); err != nil {
		return nil, false
	}

	return b, true
}

// Set stores the hydrated book under its TTL.
func (cache *Cache) Set(context context.Context, b *Book) {
	if cache == nil || cache.client == nil || b == nil {
		return
	}

	payload, err := json.Marshal(b)
	if err != nil {
		return
	}

	cache.client.Set(context, cache.key(b.ID), payload, constants.BookCacheTTL)
}

// Invalidate evicts the cached entry for id.
func (cache *Cache) Invalidate(context context.Context, id string) {
	if cache == nil || cache.client == nil {
		return
	}

	cache.client.Del(context, cache.key(id))
}
