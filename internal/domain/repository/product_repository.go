package repository

import (
	"context"

	"market/internal/domain/entity"
	"market/internal/errors"
)

// ErrProductNotFound is returned when a product is absent or soft-deleted.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines persistence operations for products.
type ProductRepository interface {
	FindActiveByID(ctx context.Context, id int64) (*entity.Product, error)
	ListActive(ctx context.Context) ([]*entity.Product, error)
	ListActiveByCategory(ctx context.Context, categoryID int64) ([]*entity.Product, error)
	Create(ctx context.Context, product *entity.Product) error

	// Update writes the seller-editable fields. Rating is never written here.
	Update(ctx context.Context, product *entity.Product) error

	SoftDelete(ctx context.Context, id int64) error

	// UpdateRating stores a freshly aggregated rating for the product.
	UpdateRating(ctx context.Context, id int64, rating float64) error
}
