package service

import (
	"context"

	"asset-inventory/internal/domain"
)

type AssetService struct {
	repo domain.AssetRepository
	lat  Latency
}

func NewAssetService(repo domain.AssetRepository, lat Latency) *AssetService {
	return &AssetService{repo: repo, lat: lat}
}

func (s *AssetService) List(ctx context.Context) ([]domain.Asset, error) {
	if err := wait(ctx, s.lat.List); err != nil {
		return nil, err
	}
	return s.repo.ListAssets(ctx)
}

// GetByCode 入参可不补零，例如 "789" 查找 "00000789"
func (s *AssetService) GetByCode(ctx context.Context, code string) (domain.Asset, error) {
	if err := wait(ctx, s.lat.Get); err != nil {
		return domain.Asset{}, err
	}
	return s.repo.FindAssetByCode(ctx, domain.PadAssetCode(code))
}

func (s *AssetService) Create(ctx context.Context, a domain.Asset) (domain.Asset, error) {
	if err := wait(ctx, s.lat.Write); err != nil {
		return domain.Asset{}, err
	}
	a.Code = domain.PadAssetCode(a.Code)
	if err := s.repo.CreateAsset(ctx, &a); err != nil {
		return domain.Asset{}, err
	}
	return a, nil
}

// Update 整体替换（无合并语义）
func (s *AssetService) Update(ctx context.Context, a domain.Asset) (domain.Asset, error) {
	if err := wait(ctx, s.lat.Write); err != nil {
		return domain.Asset{}, err
	}
	a.Code = domain.PadAssetCode(a.Code)
	if err := s.repo.UpdateAsset(ctx, &a); err != nil {
		return domain.Asset{}, err
	}
	return a, nil
}

func (s *AssetService) Delete(ctx context.Context, cod int) error {
	if err := wait(ctx, s.lat.Delete); err != nil {
		return err
	}
	return s.repo.DeleteAsset(ctx, cod)
}
