package service

import (
	"context"
	"time"

	"asset-inventory/internal/domain"
)

const dateLayout = "2006-01-02"

type UserService struct {
	repo domain.UserRepository
	lat  Latency
	now  func() time.Time
}

func NewUserService(repo domain.UserRepository, lat Latency) *UserService {
	return &UserService{repo: repo, lat: lat, now: time.Now}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	if err := wait(ctx, s.lat.List); err != nil {
		return nil, err
	}
	return s.repo.ListUsers(ctx)
}

func (s *UserService) Get(ctx context.Context, id int) (domain.User, error) {
	if err := wait(ctx, s.lat.Get); err != nil {
		return domain.User{}, err
	}
	return s.repo.FindUserByID(ctx, id)
}

// Create 分配 id 并写入当天的注册日期
func (s *UserService) Create(ctx context.Context, u domain.User) (domain.User, error) {
	if err := wait(ctx, s.lat.Write); err != nil {
		return domain.User{}, err
	}
	u.RegisteredAt = s.now().Format(dateLayout)
	if err := s.repo.CreateUser(ctx, &u); err != nil {
		return domain.User{}, err
	}
	return u, nil
}

// Update 整体替换，注册日期保持不变
func (s *UserService) Update(ctx context.Context, u domain.User) (domain.User, error) {
	if err := wait(ctx, s.lat.Write); err != nil {
		return domain.User{}, err
	}
	cur, err := s.repo.FindUserByID(ctx, u.ID)
	if err != nil {
		return domain.User{}, err
	}
	u.RegisteredAt = cur.RegisteredAt
	if err := s.repo.UpdateUser(ctx, &u); err != nil {
		return domain.User{}, err
	}
	return u, nil
}
