package utils

import (
	"context"
	"sync"
	"time"

	"avira/config"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus reports reachability of the service's backing stores: the
// booking database, the slot-view cache, and the session cache.
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	Cache     bool      `json:"cache"`
	AuthCache bool      `json:"authCache"`
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

// probeHealth pings each dependency once. A nil client reads as down.
func probeHealth(ctx context.Context, cache, authCache *redis.Client, mongoClient *mongo.Client) HealthStatus {
	status := HealthStatus{CheckedAt: time.Now()}

	if cache != nil {
		status.Cache = cache.Ping(ctx).Err() == nil
	}
	if authCache != nil {
		status.AuthCache = authCache.Ping(ctx).Err() == nil
	}
	if mongoClient != nil {
		status.Mongo = mongoClient.Ping(ctx, nil) == nil
	}
	return status
}

// StartHealthMonitor probes the dependencies on the configured interval and
// stores the snapshot served by the liveness endpoint.
func StartHealthMonitor(cache, authCache *redis.Client, mongoClient *mongo.Client) {
	interval := time.Duration(config.AppConfig.HealthCheckIntervalSec) * time.Second
	if interval <= 0 {
		interval = 60 * time.Second
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		ctx := context.Background()

		for range ticker.C {
			status := probeHealth(ctx, cache, authCache, mongoClient)

			mu.Lock()
			currentHealth = status
			mu.Unlock()
		}
	}()
}
