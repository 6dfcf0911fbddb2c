package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Domenick1991/airroute/config"
	"github.com/Domenick1991/airroute/internal/domain"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client   *redis.Client
	routeTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, routeTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:   redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		routeTTL: routeTTL,
	}
}

// GetRoute returns nil, nil on a miss.
func (c *RedisCache) GetRoute(ctx context.Context, snapshot uint64, q domain.RouteQuery) (*domain.RouteResult, error) {
	data, err := c.client.Get(ctx, RouteKey(snapshot, q)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var result domain.RouteResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *RedisCache) SetRoute(ctx context.Context, result *domain.RouteResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, RouteKey(result.Snapshot, result.Query), payload, c.routeTTL).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

// RouteKey scopes a query to the schedule snapshot it was answered against,
// so a reload never serves routes from an older schedule.
func RouteKey(snapshot uint64, q domain.RouteQuery) string {
	return fmt.Sprintf("cache:route:%016x:%s:%d:%d:%d:%d", snapshot, q.Criterion, q.StartCity, q.EndCity, q.T1, q.T2)
}
