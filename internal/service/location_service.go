package service

import (
	"context"

	"asset-inventory/internal/domain"
)

type LocationService struct {
	repo domain.LocationRepository
	lat  Latency
}

func NewLocationService(repo domain.LocationRepository, lat Latency) *LocationService {
	return &LocationService{repo: repo, lat: lat}
}

func (s *LocationService) List(ctx context.Context) ([]domain.Location, error) {
	if err := wait(ctx, s.lat.List); err != nil {
		return nil, err
	}
	return s.repo.ListLocations(ctx)
}

func (s *LocationService) Create(ctx context.Context, l domain.Location) (domain.Location, error) {
	if err := wait(ctx, s.lat.Write); err != nil {
		return domain.Location{}, err
	}
	if err := s.repo.CreateLocation(ctx, &l); err != nil {
		return domain.Location{}, err
	}
	return l, nil
}

// Update 不校验是否仍有资产引用；停用的位置照样可以被资产指向
func (s *LocationService) Update(ctx context.Context, l domain.Location) (domain.Location, error) {
	if err := wait(ctx, s.lat.Write); err != nil {
		return domain.Location{}, err
	}
	if err := s.repo.UpdateLocation(ctx, &l); err != nil {
		return domain.Location{}, err
	}
	return l, nil
}

func (s *LocationService) Delete(ctx context.Context, code int) error {
	if err := wait(ctx, s.lat.Delete); err != nil {
		return err
	}
	return s.repo.DeleteLocation(ctx, code)
}
