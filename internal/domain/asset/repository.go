package asset

import "context"

type Repository interface {
	// Create and Update return a ConflictError for a duplicate serial number.
	Create(ctx context.Context, asset *Asset) error
	Update(ctx context.Context, asset *Asset) error
	GetByID(ctx context.Context, id uint) (*Asset, error)
	// ListByCompany returns the company's assets ordered by asset_name.
	ListByCompany(ctx context.Context, companyID uint) ([]*Asset, error)
	// CountExisting reports how many of ids exist.
	CountExisting(ctx context.Context, ids []uint) (int64, error)
	Delete(ctx context.Context, id uint) error
}
