package company

import "context"

type Repository interface {
	// Create and Update return a ConflictError for a duplicate name.
	Create(ctx context.Context, company *Company) error
	Update(ctx context.Context, company *Company) error
	GetByID(ctx context.Context, id uint) (*Company, error)
	// List returns every company ordered by name.
	List(ctx context.Context) ([]*Company, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Delete(ctx context.Context, id uint) error
	// FindByContactEmail matches case-insensitively and returns nil, nil
	// when no company uses the address.
	FindByContactEmail(ctx context.Context, email string) (*Company, error)
}
