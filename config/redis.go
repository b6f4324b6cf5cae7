package config

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// InitRedis returns nil without error when no address is configured; the
// listing cache then runs with its in-process tier only.
func InitRedis(settings RedisSettings) (*redis.Client, error) {
	if settings.Addr == "" {
		log.Println("REDIS_ADD not set, shared listing cache disabled")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     settings.Addr,
		Password: settings.Password,
		DB:       settings.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", settings.Addr, err)
	}
	log.Println("Connected to Redis")
	return client, nil
}
