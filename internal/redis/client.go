package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

type Client struct {
	rdb *redis.Client
}

func Initialize(redisURL string) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// NextOrderSequence increments and returns the order counter for the given
// day key (formatted YYYYMMDD). The counter expires two days later so stale
// keys do not accumulate.
func (c *Client) NextOrderSequence(day string) (int64, error) {
	ctx := context.Background()
	key := "order_seq:" + day
	n, err := c.rdb.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment order sequence: %w", err)
	}
	c.rdb.Expire(ctx, key, 48*time.Hour)
	return n, nil
}

// Checkout token cache

func (c *Client) SetCheckoutToken(token, orderID string, ttl time.Duration) error {
	ctx := context.Background()
	return c.rdb.Set(ctx, "checkout:"+token, orderID, ttl).Err()
}

func (c *Client) GetCheckoutToken(token string) (string, error) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, "checkout:"+token).Result()
	if err != nil {
		if err == redis.Nil {
			return "", fmt.Errorf("checkout token not cached")
		}
		return "", fmt.Errorf("failed to get checkout token: %w", err)
	}
	return val, nil
}

func (c *Client) DeleteCheckoutToken(token string) error {
	ctx := context.Background()
	return c.rdb.Del(ctx, "checkout:"+token).Err()
}

// Close Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
