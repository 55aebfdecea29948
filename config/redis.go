package config

import (
	"context"
	"log/slog"
	"os"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client

// InitRedis connects the shared Redis client used for rate limiting. A
// failed connection downgrades to a nil client; callers must treat nil as
// "limiter disabled" rather than an error.
func InitRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "127.0.0.1:6379"
	}
	RedisClient = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})
	pong, err := RedisClient.Ping(context.Background()).Result()
	if err != nil {
		slog.Warn("redis unavailable, rate limiting disabled", "addr", addr, "error", err)
		RedisClient = nil
		return
	}
	slog.Info("redis connected", "reply", pong)
}

// CloseRedis releases the Redis connection if one was established.
func CloseRedis() {
	if RedisClient != nil {
		_ = RedisClient.Close()
		RedisClient = nil
	}
}
