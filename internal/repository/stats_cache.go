//go:generate mockery --name StatsCache --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"scrum_sensei/internal/config"
	"scrum_sensei/internal/middleware"
	"scrum_sensei/internal/model"

	goredis "github.com/redis/go-redis/v9"
)

// StatsCache は学習統計のキャッシュ。ミス時は (nil, nil) を返す。
type StatsCache interface {
	Get(ctx context.Context, userID string) (*model.LearningStatistics, error)
	Set(ctx context.Context, userID string, stats *model.LearningStatistics) error
	Invalidate(ctx context.Context, userID string) error
}

const statsKeyPrefix = "scrum_sensei:stats:"

type redisStatsCache struct {
	rdb *goredis.Client
	ttl time.Duration
}

func NewRedisStatsCache(rdb *goredis.Client, ttl time.Duration) StatsCache {
	if ttl <= 0 {
		ttl = config.DefaultStatsTTL
	}
	return &redisStatsCache{rdb: rdb, ttl: ttl}
}

// NewRedisClient は Redis に接続し、疎通確認をしてから返します。
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*goredis.Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: 5 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}

func statsKey(userID string) string {
	return statsKeyPrefix + userID
}

func (c *redisStatsCache) Get(ctx context.Context, userID string) (*model.LearningStatistics, error) {
	raw, err := c.rdb.Get(ctx, statsKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redisStatsCache.Get: %w", err)
	}

	var stats model.LearningStatistics
	if err := json.Unmarshal(raw, &stats); err != nil {
		// 壊れたエントリは捨てる
		middleware.GetLogger(ctx).Warn("Discarding corrupt stats cache entry", "error", err, "user_id", userID)
		_ = c.rdb.Del(ctx, statsKey(userID)).Err()
		return nil, nil
	}
	return &stats, nil
}

func (c *redisStatsCache) Set(ctx context.Context, userID string, stats *model.LearningStatistics) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("redisStatsCache.Set: %w", err)
	}
	if err := c.rdb.Set(ctx, statsKey(userID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redisStatsCache.Set: %w", err)
	}
	return nil
}

func (c *redisStatsCache) Invalidate(ctx context.Context, userID string) error {
	if err := c.rdb.Del(ctx, statsKey(userID)).Err(); err != nil {
		return fmt.Errorf("redisStatsCache.Invalidate: %w", err)
	}
	return nil
}
