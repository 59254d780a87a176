package database

import (
	"context"
	"log"

	"github.com/go-redis/redis/v8"
)

// NewRedisClient creates a Redis client for the rate cache. A failed
// ping is non-fatal: the caller may continue without a cache backend
// and the rate service degrades to fetch-every-time.
func NewRedisClient(ctx context.Context, addr, password string, db int) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("Redis connection failed, continuing without rate cache: %v", err)
		return nil
	}

	log.Println("Redis connection established.")
	return rdb
}
