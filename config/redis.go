package config

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client

// InitRedis connects the shared Redis client used for response caching.
// Caching is best-effort: if REDIS_ADDR is unset the client stays nil and
// cached endpoints fall through to the database.
func InitRedis() error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}

	if config.RedisAddr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr,
		Password: config.RedisPass,
	})

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return fmt.Errorf("failed to connect to Redis: %v", err)
	}

	Redis = client
	return nil
}
