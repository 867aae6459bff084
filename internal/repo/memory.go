package repo

import (
	"context"
	"sync"

	"asset-inventory/internal/domain"
)

var _ domain.Repository = (*Memory)(nil)

// Memory 进程内数据存储：三张表，进程重启即重建。
// 主键按 max+1 生成，所有写操作在同一把锁内完成。
type Memory struct {
	mu        sync.RWMutex
	users     []domain.User
	locations []domain.Location
	assets    []domain.Asset
}

func NewMemory() *Memory { return &Memory{} }

// NewSeededMemory 带初始数据
func NewSeededMemory() *Memory {
	return &Memory{
		users:     SeedUsers(),
		locations: SeedLocations(),
		assets:    SeedAssets(),
	}
}

func nextKey[T any](items []T, key func(T) int) int {
	m := 0
	for _, it := range items {
		if k := key(it); k > m {
			m = k
		}
	}
	return m + 1
}

// ---------- users ----------

func (m *Memory) ListUsers(_ context.Context) ([]domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.User, len(m.users))
	for i, u := range m.users {
		out[i] = u.Clone()
	}
	return out, nil
}

func (m *Memory) FindUserByID(_ context.Context, id int) (domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.ID == id {
			return u.Clone(), nil
		}
	}
	return domain.User{}, domain.ErrUserNotFound
}

func (m *Memory) FindActiveUserByLogin(_ context.Context, login string) (domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.Login == login && u.Active {
			return u.Clone(), nil
		}
	}
	return domain.User{}, domain.ErrUserNotFound
}

func (m *Memory) CreateUser(_ context.Context, u *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u.ID = nextKey(m.users, func(x domain.User) int { return x.ID })
	m.users = append(m.users, u.Clone())
	return nil
}

func (m *Memory) UpdateUser(_ context.Context, u *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.users {
		if m.users[i].ID == u.ID {
			m.users[i] = u.Clone()
			return nil
		}
	}
	return domain.ErrUserNotFound
}

// ---------- locations ----------

func (m *Memory) ListLocations(_ context.Context) ([]domain.Location, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]domain.Location(nil), m.locations...), nil
}

func (m *Memory) CreateLocation(_ context.Context, l *domain.Location) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	l.Code = nextKey(m.locations, func(x domain.Location) int { return x.Code })
	m.locations = append(m.locations, *l)
	return nil
}

func (m *Memory) UpdateLocation(_ context.Context, l *domain.Location) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.locations {
		if m.locations[i].Code == l.Code {
			m.locations[i] = *l
			return nil
		}
	}
	return domain.ErrLocationNotFound
}

func (m *Memory) DeleteLocation(_ context.Context, code int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.assets {
		if a.LocationCode == code {
			return domain.ErrLocationInUse
		}
	}
	kept := m.locations[:0:0]
	for _, l := range m.locations {
		if l.Code != code {
			kept = append(kept, l)
		}
	}
	m.locations = kept
	return nil
}

// ---------- assets ----------

func (m *Memory) ListAssets(_ context.Context) ([]domain.Asset, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Asset, len(m.assets))
	for i, a := range m.assets {
		out[i] = a.Clone()
	}
	return out, nil
}

func (m *Memory) FindAssetByCode(_ context.Context, code string) (domain.Asset, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, a := range m.assets {
		if a.Code == code {
			return a.Clone(), nil
		}
	}
	return domain.Asset{}, domain.ErrAssetNotFound
}

func (m *Memory) CreateAsset(_ context.Context, a *domain.Asset) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a.Cod = nextKey(m.assets, func(x domain.Asset) int { return x.Cod })
	m.assets = append(m.assets, a.Clone())
	return nil
}

func (m *Memory) UpdateAsset(_ context.Context, a *domain.Asset) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.assets {
		if m.assets[i].Cod == a.Cod {
			m.assets[i] = a.Clone()
			return nil
		}
	}
	return domain.ErrAssetNotFound
}

// DeleteAsset 无条件删除，不存在也不报错
func (m *Memory) DeleteAsset(_ context.Context, cod int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.assets[:0:0]
	for _, a := range m.assets {
		if a.Cod != cod {
			kept = append(kept, a)
		}
	}
	m.assets = kept
	return nil
}
