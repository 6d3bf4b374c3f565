package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"timed-trading-platform/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// PriceCache implements ports.PriceCache using Redis. The last quote per pair
// is written through from the live feed with no TTL so a restart can still
// settle against the last price seen before the outage.
type PriceCache struct {
	client *goredis.Client
	prefix string
}

// NewPriceCache creates a new Redis-backed price cache.
func NewPriceCache(client *goredis.Client) *PriceCache {
	return &PriceCache{
		client: client,
		prefix: "price:",
	}
}

// Put stores the quote as the last-known price for its pair.
func (c *PriceCache) Put(ctx context.Context, quote domain.Quote) error {
	data, err := json.Marshal(quote)
	if err != nil {
		return fmt.Errorf("marshal quote: %w", err)
	}
	if err := c.client.Set(ctx, c.key(quote.Pair), data, 0).Err(); err != nil {
		return fmt.Errorf("redis price put: %w", err)
	}
	return nil
}

// Get retrieves the last-known quote for a pair.
// Returns nil, nil if no quote has been cached.
func (c *PriceCache) Get(ctx context.Context, pair string) (*domain.Quote, error) {
	data, err := c.client.Get(ctx, c.key(pair)).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis price get: %w", err)
	}

	quote := &domain.Quote{}
	if err := json.Unmarshal(data, quote); err != nil {
		return nil, fmt.Errorf("unmarshal quote: %w", err)
	}
	return quote, nil
}

func (c *PriceCache) key(pair string) string {
	return c.prefix + strings.ToUpper(pair)
}
