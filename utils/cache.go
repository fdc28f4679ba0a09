package utils

import (
	"context"
	"log"
	"time"

	"lamaison/config"

	"github.com/go-redis/redis/v8"
)

// SessionClient is the Redis client backing the conversation session store.
var SessionClient *redis.Client

// InitSessionCache initializes the Redis client for conversation sessions.
func InitSessionCache() {
	SessionClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := SessionClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Sessions): %v", err)
	}
}

// GetSessionClient returns the Redis client for conversation sessions.
func GetSessionClient() *redis.Client {
	if SessionClient == nil {
		InitSessionCache()
	}
	return SessionClient
}
