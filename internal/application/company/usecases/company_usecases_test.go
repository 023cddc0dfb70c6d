package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/domain/company"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/errors"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/logger"
)

func TestCreateCompanyUseCase_Execute(t *testing.T) {
	t.Run("creates", func(t *testing.T) {
		repo := &mockCompanyRepository{
			CreateFunc: func(ctx context.Context, c *company.Company) error { return c.SetID(3) },
		}

		result, err := NewCreateCompanyUseCase(repo, logger.NewNop()).Execute(context.Background(), CompanyCommand{
			Name:         "Acme",
			ContactEmail: "it@acme.test",
		})
		require.NoError(t, err)
		assert.Equal(t, uint(3), result.ID)
		assert.Equal(t, "it@acme.test", result.ContactEmail)
	})

	t.Run("missing name", func(t *testing.T) {
		_, err := NewCreateCompanyUseCase(&mockCompanyRepository{}, logger.NewNop()).Execute(context.Background(), CompanyCommand{})
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("duplicate name", func(t *testing.T) {
		repo := &mockCompanyRepository{
			CreateFunc: func(ctx context.Context, c *company.Company) error {
				return errors.NewConflictError("A company with this name already exists.")
			},
		}
		_, err := NewCreateCompanyUseCase(repo, logger.NewNop()).Execute(context.Background(), CompanyCommand{Name: "Acme"})
		assert.True(t, errors.IsConflictError(err))
	})
}

func TestUpdateCompanyUseCase_Execute(t *testing.T) {
	existing := func() *company.Company {
		c, err := company.ReconstructCompany(4, "Acme", company.Contact{Person: "Ann", Phone: "555"}, time.Now())
		require.NoError(t, err)
		return c
	}

	t.Run("replaces all fields", func(t *testing.T) {
		var saved *company.Company
		repo := &mockCompanyRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*company.Company, error) { return existing(), nil },
			UpdateFunc: func(ctx context.Context, c *company.Company) error {
				saved = c
				return nil
			},
		}

		result, err := NewUpdateCompanyUseCase(repo, logger.NewNop()).Execute(context.Background(), UpdateCompanyCommand{
			CompanyID:      4,
			CompanyCommand: CompanyCommand{Name: "Acme Ltd"},
		})
		require.NoError(t, err)
		assert.Equal(t, "Acme Ltd", result.Name)
		assert.Empty(t, result.ContactPerson)
		assert.Empty(t, saved.Contact().Phone)
	})

	t.Run("absent company", func(t *testing.T) {
		repo := &mockCompanyRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*company.Company, error) {
				return nil, errors.NewNotFoundError("Company not found.")
			},
		}
		_, err := NewUpdateCompanyUseCase(repo, logger.NewNop()).Execute(context.Background(), UpdateCompanyCommand{CompanyID: 9})
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("blank name", func(t *testing.T) {
		updated := false
		repo := &mockCompanyRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*company.Company, error) { return existing(), nil },
			UpdateFunc: func(ctx context.Context, c *company.Company) error {
				updated = true
				return nil
			},
		}
		_, err := NewUpdateCompanyUseCase(repo, logger.NewNop()).Execute(context.Background(), UpdateCompanyCommand{
			CompanyID:      4,
			CompanyCommand: CompanyCommand{Name: " "},
		})
		assert.True(t, errors.IsValidationError(err))
		assert.False(t, updated)
	})
}

func TestListAndDeleteCompanies(t *testing.T) {
	c, err := company.ReconstructCompany(1, "Acme", company.Contact{}, time.Now())
	require.NoError(t, err)

	repo := &mockCompanyRepository{
		ListFunc: func(ctx context.Context) ([]*company.Company, error) { return []*company.Company{c}, nil },
		DeleteFunc: func(ctx context.Context, id uint) error {
			if id != 1 {
				return errors.NewNotFoundError("Company not found.")
			}
			return nil
		},
	}

	list, err := NewListCompaniesUseCase(repo, logger.NewNop()).Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Acme", list[0].Name)

	del := NewDeleteCompanyUseCase(repo, logger.NewNop())
	assert.NoError(t, del.Execute(context.Background(), 1))
	assert.True(t, errors.IsNotFoundError(del.Execute(context.Background(), 2)))
}
