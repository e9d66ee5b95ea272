package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus represents current status of external services.
// Nil pointers mean the dependency is not in use.
type HealthStatus struct {
	Mongo     *bool     `json:"mongo,omitempty"`
	Redis     *bool     `json:"redis,omitempty"`
	CheckedAt time.Time `json:"checkedAt"`
}

// HealthMonitor pings optional backing services and keeps the latest snapshot.
type HealthMonitor struct {
	redisClient *redis.Client
	mongoClient *mongo.Client
	interval    time.Duration

	mu      sync.RWMutex
	current HealthStatus
}

func NewHealthMonitor(redisClient *redis.Client, mongoClient *mongo.Client, interval time.Duration) *HealthMonitor {
	return &HealthMonitor{
		redisClient: redisClient,
		mongoClient: mongoClient,
		interval:    interval,
		current:     HealthStatus{CheckedAt: time.Now()},
	}
}

// Status returns latest stored health snapshot.
func (m *HealthMonitor) Status() HealthStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Check pings every configured dependency once and stores the result.
func (m *HealthMonitor) Check(ctx context.Context) HealthStatus {
	status := HealthStatus{CheckedAt: time.Now()}
	if m.redisClient != nil {
		ok := m.redisClient.Ping(ctx).Err() == nil
		status.Redis = &ok
	}
	if m.mongoClient != nil {
		ok := m.mongoClient.Ping(ctx, nil) == nil
		status.Mongo = &ok
	}

	m.mu.Lock()
	m.current = status
	m.mu.Unlock()
	return status
}

// Start performs periodic health checks until ctx is done.
func (m *HealthMonitor) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()

		m.Check(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.Check(ctx)
			}
		}
	}()
}
