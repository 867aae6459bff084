package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client 用到的最小命令集；*redis.Client 满足，测试可替换
type Client interface {
	Ping(ctx context.Context) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Close() error
}

type Cache struct {
	rdb Client
}

func New(addr, pass string, db int) *Cache {
	return NewWithClient(redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db}))
}

func NewWithClient(rdb Client) *Cache { return &Cache{rdb: rdb} }

func (c *Cache) Ping(ctx context.Context) error { return c.rdb.Ping(ctx).Err() }

// Get 未命中返回 ok=false 且 err=nil
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

// Set ttl<=0 表示不过期
func (c *Cache) Set(ctx context.Context, key string, b []byte, ttl time.Duration) error {
	return c.rdb.Set(ctx, key, b, max(ttl, 0)).Err()
}

func (c *Cache) Del(ctx context.Context, key string) error { return c.rdb.Del(ctx, key).Err() }

func (c *Cache) Close() error { return c.rdb.Close() }
