package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Redis     bool      `json:"redis"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

// StartHealthMonitor performs periodic health checks and updates in-memory state.
// A nil client marks Redis healthy (in-memory session mode has no dependency).
func StartHealthMonitor(client *redis.Client) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		ctx := context.Background()

		for range ticker.C {
			redisHealthy := true
			if client != nil {
				redisHealthy = client.Ping(ctx).Err() == nil
			}

			mu.Lock()
			currentHealth = HealthStatus{
				Redis:     redisHealthy,
				CheckedAt: time.Now(),
			}
			mu.Unlock()
		}
	}()
}
