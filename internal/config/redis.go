package config

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewCacheClient builds the Redis client that backs the award response
// cache; that cache is the only thing this service uses Redis for.
// Address resolution order: REDIS_ADDR, then REDIS_HOST (+ REDIS_PORT,
// default 6379), then localhost. REDIS_PASSWORD and REDIS_DB are
// optional. Returns nil when Redis cannot be reached within the startup
// timeout; the cache middleware treats a nil client as caching off, so
// award reads still work without Redis.
func NewCacheClient() *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		if host := os.Getenv("REDIS_HOST"); host != "" {
			port := os.Getenv("REDIS_PORT")
			if port == "" {
				port = "6379"
			}
			addr = host + ":" + port
		} else {
			addr = "localhost:6379"
		}
	}
	dbNum, _ := strconv.Atoi(os.Getenv("REDIS_DB"))

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       dbNum,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("redis: ping %s failed: %v", addr, err)
		_ = client.Close()
		return nil
	}
	return client
}
