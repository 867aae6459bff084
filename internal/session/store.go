// Package session 持久化已登录身份：Store 负责存取序列化后的用户，
// Gate 负责登录、恢复（校验用户仍然存在）与退出。
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"asset-inventory/internal/core/cache"
)

var ErrNoSession = errors.New("no active session")

type Store interface {
	// Get 不存在或已过期返回 ErrNoSession
	Get(ctx context.Context, sid string) ([]byte, error)
	Set(ctx context.Context, sid string, blob []byte) error
	Clear(ctx context.Context, sid string) error
}

// ---------- memory ----------

type entry struct {
	blob    []byte
	expires time.Time // 零值不过期
}

type MemoryStore struct {
	mu    sync.Mutex
	ttl   time.Duration
	m     map[string]entry
	now   func() time.Time
	swept time.Time // 上次清理过期会话的时间
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{ttl: ttl, m: map[string]entry{}, now: time.Now}
}

func (s *MemoryStore) Get(_ context.Context, sid string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.m[sid]
	if !ok {
		return nil, ErrNoSession
	}
	if !e.expires.IsZero() && !s.now().Before(e.expires) {
		delete(s.m, sid)
		return nil, ErrNoSession
	}
	return append([]byte(nil), e.blob...), nil
}

func (s *MemoryStore) Set(_ context.Context, sid string, blob []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	e := entry{blob: append([]byte(nil), blob...)}
	if s.ttl > 0 {
		e.expires = now.Add(s.ttl)
		s.sweep(now)
	}
	s.m[sid] = e
	return nil
}

// sweep 每个 ttl 周期最多清理一次从未再读取的过期会话；调用方持锁
func (s *MemoryStore) sweep(now time.Time) {
	if now.Sub(s.swept) < s.ttl {
		return
	}
	for sid, e := range s.m {
		if !e.expires.IsZero() && !now.Before(e.expires) {
			delete(s.m, sid)
		}
	}
	s.swept = now
}

func (s *MemoryStore) Clear(_ context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, sid)
	return nil
}

// ---------- redis ----------

type RedisStore struct {
	c      *cache.Cache
	prefix string
	ttl    time.Duration
}

func NewRedisStore(c *cache.Cache, prefix string, ttl time.Duration) *RedisStore {
	return &RedisStore{c: c, prefix: prefix, ttl: ttl}
}

func (s *RedisStore) key(sid string) string { return s.prefix + sid }

func (s *RedisStore) Get(ctx context.Context, sid string) ([]byte, error) {
	b, ok, err := s.c.Get(ctx, s.key(sid))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNoSession
	}
	return b, nil
}

func (s *RedisStore) Set(ctx context.Context, sid string, blob []byte) error {
	return s.c.Set(ctx, s.key(sid), blob, s.ttl)
}

func (s *RedisStore) Clear(ctx context.Context, sid string) error {
	return s.c.Del(ctx, s.key(sid))
}
