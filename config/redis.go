package config

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

// Redis backs the storefront rate limiter and the upload double-submit guard.
var (
	RedisClient *redis.Client
	Ctx         = context.Background()
)

func ConnectRedis() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
		log.Printf("⚠️  REDIS_URL not set, falling back to %s", redisURL)
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatalf("❌ REDIS_URL is not a valid Redis URL: %v", err)
	}

	RedisClient = redis.NewClient(opt)

	if _, err := RedisClient.Ping(Ctx).Result(); err != nil {
		log.Fatalf("❌ Redis ping failed: %v", err)
	}
	fmt.Println("✅ Redis connected")
}
