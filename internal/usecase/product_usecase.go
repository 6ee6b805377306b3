package usecase

import (
	"context"

	"market/internal/domain/entity"
	"market/internal/domain/policy"

	"github.com/shopspring/decimal"
)

// ProductInput carries the seller-editable fields of a product.
type ProductInput struct {
	Name        string
	Description *string
	Price       decimal.Decimal
	ImageURL    *string
	Stock       int
	CategoryID  int64
}

// ProductUsecase defines product listing operations. Mutations require the
// seller role, and updates and deletes also require ownership.
type ProductUsecase interface {
	ListProducts(ctx context.Context) ([]*entity.Product, error)

	// ListProductsByCategory fails with a 400 when the category is not active.
	ListProductsByCategory(ctx context.Context, categoryID int64) ([]*entity.Product, error)
	GetProduct(ctx context.Context, id int64) (*entity.Product, error)
	CreateProduct(ctx context.Context, actor policy.Actor, input *ProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, actor policy.Actor, id int64, input *ProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, actor policy.Actor, id int64) (*entity.Product, error)

	// ProductQRCode renders a PNG share code for an active product.
	ProductQRCode(ctx context.Context, id int64) ([]byte, error)
}
