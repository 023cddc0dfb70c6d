package company

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/application/company/dto"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/application/company/usecases"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/interfaces/http/handlers/testutil"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/errors"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/logger"
)

type mockCreateUC struct {
	got    usecases.CompanyCommand
	result *dto.CompanyDTO
	err    error
}

func (m *mockCreateUC) Execute(_ context.Context, cmd usecases.CompanyCommand) (*dto.CompanyDTO, error) {
	m.got = cmd
	return m.result, m.err
}

type mockUpdateUC struct {
	got    usecases.UpdateCompanyCommand
	result *dto.CompanyDTO
	err    error
}

func (m *mockUpdateUC) Execute(_ context.Context, cmd usecases.UpdateCompanyCommand) (*dto.CompanyDTO, error) {
	m.got = cmd
	return m.result, m.err
}

type mockListUC struct {
	result []*dto.CompanyDTO
	err    error
}

func (m *mockListUC) Execute(_ context.Context) ([]*dto.CompanyDTO, error) {
	return m.result, m.err
}

type mockDeleteUC struct {
	got uint
	err error
}

func (m *mockDeleteUC) Execute(_ context.Context, companyID uint) error {
	m.got = companyID
	return m.err
}

type mocks struct {
	create *mockCreateUC
	update *mockUpdateUC
	list   *mockListUC
	delete *mockDeleteUC
}

func newHandler() (*Handler, *mocks) {
	m := &mocks{
		create: &mockCreateUC{},
		update: &mockUpdateUC{},
		list:   &mockListUC{},
		delete: &mockDeleteUC{},
	}
	return NewHandler(m.create, m.update, m.list, m.delete, logger.NewNop()), m
}

func TestListCompanies(t *testing.T) {
	h, m := newHandler()
	m.list.result = []*dto.CompanyDTO{{ID: 2, Name: "Acme"}, {ID: 1, Name: "Zeta"}}
	c, w := testutil.NewTestContext(http.MethodGet, "/api/companies", nil)

	h.ListCompanies(c)

	require.Equal(t, http.StatusOK, w.Code)
	var got []dto.CompanyDTO
	require.NoError(t, testutil.ParseResponse(w, &got))
	assert.Equal(t, "Acme", got[0].Name)
}

func TestCreateCompany(t *testing.T) {
	tests := []struct {
		name       string
		body       map[string]string
		err        error
		wantStatus int
	}{
		{"created", map[string]string{"name": "Acme", "contact_email": "it@acme.test"}, nil, http.StatusCreated},
		{"invalid contact email", map[string]string{"name": "Acme", "contact_email": "nope"}, nil, http.StatusBadRequest},
		{"missing name", map[string]string{}, errors.NewValidationError("Company name is required."), http.StatusBadRequest},
		{"duplicate", map[string]string{"name": "Acme"}, errors.NewConflictError("Company name already exists."), http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newHandler()
			m.create.result = &dto.CompanyDTO{ID: 1, Name: tt.body["name"]}
			m.create.err = tt.err
			c, w := testutil.NewTestContext(http.MethodPost, "/api/companies", tt.body)

			h.CreateCompany(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusCreated {
				assert.Equal(t, "it@acme.test", m.create.got.ContactEmail)
			}
		})
	}
}

func TestUpdateCompany(t *testing.T) {
	t.Run("replaces fields", func(t *testing.T) {
		h, m := newHandler()
		m.update.result = &dto.CompanyDTO{ID: 5, Name: "Renamed"}
		c, w := testutil.NewTestContext(http.MethodPut, "/api/companies/5", map[string]string{"name": "Renamed", "address": "1 Main St"})
		testutil.SetURLParam(c, "id", "5")

		h.UpdateCompany(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, uint(5), m.update.got.CompanyID)
		assert.Equal(t, "1 Main St", m.update.got.Address)
	})

	t.Run("not found", func(t *testing.T) {
		h, m := newHandler()
		m.update.err = errors.NewNotFoundError("Company not found.")
		c, w := testutil.NewTestContext(http.MethodPut, "/api/companies/9", map[string]string{"name": "X"})
		testutil.SetURLParam(c, "id", "9")

		h.UpdateCompany(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Company not found.", testutil.ErrorMessage(w))
	})
}

func TestDeleteCompany(t *testing.T) {
	h, m := newHandler()
	c, w := testutil.NewTestContext(http.MethodDelete, "/api/companies/3", nil)
	testutil.SetURLParam(c, "id", "3")

	h.DeleteCompany(c)

	assert.Equal(t, http.StatusNoContent, testutil.Status(c, w))
	assert.Equal(t, uint(3), m.delete.got)
}
