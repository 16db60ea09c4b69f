package utils

import (
	"context"
	"log"
	"time"

	"legalease/config"

	"github.com/go-redis/redis/v8"
)

// SessionCacheClient is the Redis client backing the redis session store.
var SessionCacheClient *redis.Client

// InitSessionCache initializes the Redis client used for session storage.
// Only called when SESSION_STORE=redis.
func InitSessionCache() {
	SessionCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := SessionCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Sessions): %v", err)
	}
}

// GetSessionCacheClient returns the session cache client.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		InitSessionCache()
	}
	return SessionCacheClient
}
