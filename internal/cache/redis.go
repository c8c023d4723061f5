// Package cache реализует ленту последних измерений Web Vitals в Redis
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"perf-policy-service/internal/models"
)

const (
	// RecentBeaconsKey ключ списка последних измерений
	RecentBeaconsKey = "vitals:recent"
	// BeaconsTotalKey счетчик всех принятых измерений
	BeaconsTotalKey = "beacons:total"
	// ZeroScoreBeaconsKey счетчик измерений с нулевой оценкой
	ZeroScoreBeaconsKey = "beacons:zero_score"
	// FeedTTL время жизни ленты после последней записи
	FeedTTL = 1 * time.Hour
	// DefaultMaxRecent длина ленты по умолчанию
	DefaultMaxRecent = 1000
)

// RedisCache ведет ленту последних измерений и счетчики в Redis.
// Источником истины остается хранилище в памяти, лента нужна для отчетов.
type RedisCache struct {
	client    *redis.Client
	maxRecent int64
}

// NewRedisCache создает новое подключение к Redis
func NewRedisCache(ctx context.Context, addr, password string, db int, maxRecent int) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		PoolSize:     100,
		MinIdleConns: 10,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	if maxRecent <= 0 {
		maxRecent = DefaultMaxRecent
	}

	return &RedisCache{
		client:    client,
		maxRecent: int64(maxRecent),
	}, nil
}

// PushBeacon добавляет измерение в ленту и увеличивает счетчики одним pipeline
func (r *RedisCache) PushBeacon(ctx context.Context, rec models.BeaconRecord, score int) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal beacon: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.LPush(ctx, RecentBeaconsKey, data)
	pipe.LTrim(ctx, RecentBeaconsKey, 0, r.maxRecent-1)
	pipe.Expire(ctx, RecentBeaconsKey, FeedTTL)
	pipe.Incr(ctx, BeaconsTotalKey)
	if score == 0 {
		pipe.Incr(ctx, ZeroScoreBeaconsKey)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to push beacon: %w", err)
	}
	return nil
}

// GetRecentBeacons возвращает последние count измерений, новые первыми
func (r *RedisCache) GetRecentBeacons(ctx context.Context, count int64) ([]models.BeaconRecord, error) {
	data, err := r.client.LRange(ctx, RecentBeaconsKey, 0, count-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get recent beacons: %w", err)
	}

	beacons := make([]models.BeaconRecord, 0, len(data))
	for _, d := range data {
		var b models.BeaconRecord
		if err := json.Unmarshal([]byte(d), &b); err != nil {
			continue
		}
		beacons = append(beacons, b)
	}

	return beacons, nil
}

// GetCounter возвращает значение счетчика, отсутствующий счетчик равен нулю
func (r *RedisCache) GetCounter(ctx context.Context, key string) (int64, error) {
	val, err := r.client.Get(ctx, key).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	return val, err
}

// Ping проверяет соединение с Redis
func (r *RedisCache) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close закрывает соединение
func (r *RedisCache) Close() error {
	return r.client.Close()
}

// FlushDB очищает базу (только для тестов)
func (r *RedisCache) FlushDB(ctx context.Context) error {
	return r.client.FlushDB(ctx).Err()
}
