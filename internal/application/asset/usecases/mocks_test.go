package usecases

import (
	"context"

	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/domain/asset"
)

type mockAssetRepository struct {
	CreateFunc        func(ctx context.Context, a *asset.Asset) error
	UpdateFunc        func(ctx context.Context, a *asset.Asset) error
	GetByIDFunc       func(ctx context.Context, id uint) (*asset.Asset, error)
	ListByCompanyFunc func(ctx context.Context, companyID uint) ([]*asset.Asset, error)
	CountExistingFunc func(ctx context.Context, ids []uint) (int64, error)
	DeleteFunc        func(ctx context.Context, id uint) error
}

func (m *mockAssetRepository) Create(ctx context.Context, a *asset.Asset) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, a)
	}
	return nil
}

func (m *mockAssetRepository) Update(ctx context.Context, a *asset.Asset) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, a)
	}
	return nil
}

func (m *mockAssetRepository) GetByID(ctx context.Context, id uint) (*asset.Asset, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockAssetRepository) ListByCompany(ctx context.Context, companyID uint) ([]*asset.Asset, error) {
	if m.ListByCompanyFunc != nil {
		return m.ListByCompanyFunc(ctx, companyID)
	}
	return nil, nil
}

func (m *mockAssetRepository) CountExisting(ctx context.Context, ids []uint) (int64, error) {
	if m.CountExistingFunc != nil {
		return m.CountExistingFunc(ctx, ids)
	}
	return 0, nil
}

func (m *mockAssetRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}
