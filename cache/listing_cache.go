package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/dcode-github/dream_nest/models"
	"github.com/karlseguin/ccache/v3"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "listing:"

// ListingCache holds expanded listings for the detail endpoint. Listings are
// never updated after creation, so entries only leave through expiry.
type ListingCache interface {
	Get(ctx context.Context, id string) (*models.ListingDetails, bool)
	Set(ctx context.Context, listing *models.ListingDetails)
	Close()
}

// listingCache is a two level cache: a bounded in-process LRU in front of
// Redis. A nil Redis client leaves only the local tier.
type listingCache struct {
	local *ccache.Cache[*models.ListingDetails]
	redis *redis.Client
	ttl   time.Duration
}

func NewListingCache(redisClient *redis.Client, maxSize int64, ttl time.Duration) ListingCache {
	if maxSize <= 0 {
		maxSize = 1000
	}
	return &listingCache{
		local: ccache.New(ccache.Configure[*models.ListingDetails]().MaxSize(maxSize)),
		redis: redisClient,
		ttl:   ttl,
	}
}

func (c *listingCache) Get(ctx context.Context, id string) (*models.ListingDetails, bool) {
	key := keyPrefix + id

	if item := c.local.Get(key); item != nil && !item.Expired() {
		log.Printf("Cache Hit (local) for key: %s", key)
		return item.Value(), true
	}

	if c.redis == nil {
		return nil, false
	}

	data, err := c.redis.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("Redis GET error for key %s: %v", key, err)
		}
		return nil, false
	}

	var listing models.ListingDetails
	if err := json.Unmarshal(data, &listing); err != nil {
		log.Printf("Error decoding cached listing for key %s: %v", key, err)
		return nil, false
	}

	c.local.Set(key, &listing, c.ttl)
	log.Printf("Cache Hit (redis) for key: %s", key)
	return &listing, true
}

func (c *listingCache) Set(ctx context.Context, listing *models.ListingDetails) {
	key := keyPrefix + listing.ID.Hex()
	c.local.Set(key, listing, c.ttl)

	if c.redis == nil {
		return
	}

	data, err := json.Marshal(listing)
	if err != nil {
		log.Printf("Failed to serialize listing %s: %v", key, err)
		return
	}
	if err := c.redis.Set(ctx, key, data, c.ttl).Err(); err != nil {
		log.Printf("Failed to cache listing for key %s: %v", key, err)
	}
}

func (c *listingCache) Close() {
	c.local.Stop()
}
