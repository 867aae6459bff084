package service

import (
	"context"
	"errors"

	"asset-inventory/internal/domain"
	"asset-inventory/pkg/utils"
)

// AuthService 校验登录。口令是全局固定值（mock），不是逐用户凭据。
type AuthService struct {
	repo     domain.UserRepository
	lat      Latency
	passHash string
}

func NewAuthService(repo domain.UserRepository, mockPassword string, lat Latency) *AuthService {
	return &AuthService{repo: repo, lat: lat, passHash: utils.HashPassword(mockPassword)}
}

// Login 未知账号、停用账号、口令错误统一返回 ErrInvalidCredentials
func (s *AuthService) Login(ctx context.Context, login, password string) (domain.User, error) {
	if err := wait(ctx, s.lat.Login); err != nil {
		return domain.User{}, err
	}
	u, err := s.repo.FindActiveUserByLogin(ctx, login)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.User{}, domain.ErrInvalidCredentials
	}
	if err != nil {
		return domain.User{}, err
	}
	if !utils.CheckPassword(password, s.passHash) {
		return domain.User{}, domain.ErrInvalidCredentials
	}
	return u, nil
}
