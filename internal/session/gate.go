package session

import (
	"context"
	"encoding/json"
	"errors"

	"asset-inventory/internal/domain"
	"asset-inventory/pkg/utils"
)

type Authenticator interface {
	Login(ctx context.Context, login, password string) (domain.User, error)
}

type UserFinder interface {
	FindUserByID(ctx context.Context, id int) (domain.User, error)
}

type Gate struct {
	auth  Authenticator
	users UserFinder
	store Store
	newID func() string
}

func NewGate(auth Authenticator, users UserFinder, store Store) *Gate {
	return &Gate{auth: auth, users: users, store: store, newID: utils.NewID}
}

// Login 成功后把完整用户记录序列化存入新会话
func (g *Gate) Login(ctx context.Context, login, password string) (domain.User, string, error) {
	u, err := g.auth.Login(ctx, login, password)
	if err != nil {
		return domain.User{}, "", err
	}
	blob, err := json.Marshal(u)
	if err != nil {
		return domain.User{}, "", err
	}
	sid := g.newID()
	if err := g.store.Set(ctx, sid, blob); err != nil {
		return domain.User{}, "", err
	}
	return u, sid, nil
}

// Restore 返回会话中保存的用户；仅当其 id 仍在当前用户集合中才接受，
// 否则清掉会话并返回 ErrNoSession。
func (g *Gate) Restore(ctx context.Context, sid string) (domain.User, error) {
	blob, err := g.store.Get(ctx, sid)
	if err != nil {
		return domain.User{}, err
	}
	var u domain.User
	if err := json.Unmarshal(blob, &u); err != nil {
		_ = g.store.Clear(ctx, sid)
		return domain.User{}, ErrNoSession
	}
	if _, err := g.users.FindUserByID(ctx, u.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			_ = g.store.Clear(ctx, sid)
			return domain.User{}, ErrNoSession
		}
		return domain.User{}, err
	}
	return u, nil
}

func (g *Gate) Logout(ctx context.Context, sid string) error {
	return g.store.Clear(ctx, sid)
}
