package usecases

import (
	"context"

	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/domain/company"
)

type mockCompanyRepository struct {
	CreateFunc             func(ctx context.Context, c *company.Company) error
	UpdateFunc             func(ctx context.Context, c *company.Company) error
	GetByIDFunc            func(ctx context.Context, id uint) (*company.Company, error)
	ListFunc               func(ctx context.Context) ([]*company.Company, error)
	ExistsFunc             func(ctx context.Context, id uint) (bool, error)
	DeleteFunc             func(ctx context.Context, id uint) error
	FindByContactEmailFunc func(ctx context.Context, email string) (*company.Company, error)
}

func (m *mockCompanyRepository) Create(ctx context.Context, c *company.Company) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return nil
}

func (m *mockCompanyRepository) Update(ctx context.Context, c *company.Company) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockCompanyRepository) GetByID(ctx context.Context, id uint) (*company.Company, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockCompanyRepository) List(ctx context.Context) ([]*company.Company, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockCompanyRepository) Exists(ctx context.Context, id uint) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, id)
	}
	return false, nil
}

func (m *mockCompanyRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockCompanyRepository) FindByContactEmail(ctx context.Context, email string) (*company.Company, error) {
	if m.FindByContactEmailFunc != nil {
		return m.FindByContactEmailFunc(ctx, email)
	}
	return nil, nil
}
