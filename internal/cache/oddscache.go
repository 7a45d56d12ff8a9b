package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/GlebRadaev/hyperacing/internal/domain"
	"github.com/redis/go-redis/v9"
)

const oddsKey = "odds:current"

func ConnectRedis(ctx context.Context, addr string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}

	return rdb, nil
}

type cachedOdds struct {
	Data      domain.OddsTable `json:"data"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// OddsCache keeps the published odds table in redis for ttl.
type OddsCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewOddsCache(client redis.Cmdable, ttl time.Duration) *OddsCache {
	return &OddsCache{client: client, ttl: ttl}
}

func (c *OddsCache) Get(ctx context.Context) (*domain.Odds, bool, error) {
	b, err := c.client.Get(ctx, oddsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var cached cachedOdds
	if err := json.Unmarshal(b, &cached); err != nil {
		return nil, false, err
	}
	return &domain.Odds{
		Data:      cached.Data,
		UpdatedAt: cached.UpdatedAt,
		Source:    domain.OddsSourcePublished,
	}, true, nil
}

func (c *OddsCache) Set(ctx context.Context, odds *domain.Odds) error {
	b, err := json.Marshal(cachedOdds{Data: odds.Data, UpdatedAt: odds.UpdatedAt})
	if err != nil {
		return err
	}
	return c.client.Set(ctx, oddsKey, string(b), c.ttl).Err()
}

func (c *OddsCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, oddsKey).Err()
}
