package cache

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	listingKey = "catalog:services:active"
	listingTTL = 60 * time.Second
)

// ServiceListing caches the rendered public listing payload in Redis. A nil
// receiver disables caching, so handlers never branch on configuration.
type ServiceListing struct {
	client *redis.Client
}

func NewServiceListing(redisURL string) *ServiceListing {
	if redisURL == "" {
		return nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("invalid REDIS_URL, listing cache disabled: %v", err)
		return nil
	}

	return &ServiceListing{client: redis.NewClient(opts)}
}

func (c *ServiceListing) Get(ctx context.Context) ([]byte, bool) {
	if c == nil {
		return nil, false
	}

	b, err := c.client.Get(ctx, listingKey).Bytes()
	if err != nil {
		return nil, false
	}
	return b, true
}

func (c *ServiceListing) Set(ctx context.Context, payload []byte) {
	if c == nil {
		return
	}

	if err := c.client.Set(ctx, listingKey, payload, listingTTL).Err(); err != nil {
		log.Println("listing cache set failed:", err)
	}
}

func (c *ServiceListing) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}

	if err := c.client.Del(ctx, listingKey).Err(); err != nil {
		log.Println("listing cache invalidate failed:", err)
	}
}
