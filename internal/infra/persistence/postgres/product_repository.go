package postgres

import (
	"context"

	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/repository"
	"market/internal/errors"
	"market/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (repo *productRepository) FindActiveByID(ctx context.Context, id int64) (*entity.Product, error) {
	productM, err := firstActive[model.ProductModel](ctx, repo.db, id, repository.ErrProductNotFound)
	if err != nil {
		return nil, err
	}

	return toProductDomain(productM), nil
}

func (repo *productRepository) ListActive(ctx context.Context) ([]*entity.Product, error) {
	rows, err := listActive[model.ProductModel](ctx, repo.db)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return mapSlice(rows, toProductDomain), nil
}

func (repo *productRepository) ListActiveByCategory(ctx context.Context, categoryID int64) ([]*entity.Product, error) {
	rows, err := listActive[model.ProductModel](ctx, repo.db, "category_id = ?", categoryID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list products of category %d", categoryID)
	}

	return mapSlice(rows, toProductDomain), nil
}

func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductCategoryNotFound.WrapMessage("category reference rejected by storage")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("price must be positive and stock non-negative")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.Rating = productM.Rating
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// Update writes the seller-editable columns. rating, seller_id and is_active are left alone.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where(activeByID, product.ID, true).
		Updates(map[string]any{
			"name":        product.Name,
			"description": product.Description,
			"price":       product.Price,
			"image_url":   product.ImageURL,
			"stock":       product.Stock,
			"category_id": product.CategoryID,
		})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrProductCategoryNotFound.WrapMessage("category reference rejected by storage")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

func (repo *productRepository) SoftDelete(ctx context.Context, id int64) error {
	return softDelete[model.ProductModel](ctx, repo.db, id, repository.ErrProductNotFound)
}

// UpdateRating writes the aggregated rating. Soft-deleted products are updated too
// so that their stored rating keeps matching their reviews.
func (repo *productRepository) UpdateRating(ctx context.Context, id int64, rating float64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		Update("rating", rating)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product rating")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

func toProductDomain(m *model.ProductModel) *entity.Product {
	return &entity.Product{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		ImageURL:    m.ImageURL,
		Stock:       m.Stock,
		CategoryID:  m.CategoryID,
		SellerID:    m.SellerID,
		Rating:      m.Rating,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func fromProductDomain(p *entity.Product) *model.ProductModel {
	return &model.ProductModel{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		ImageURL:    p.ImageURL,
		Stock:       p.Stock,
		CategoryID:  p.CategoryID,
		SellerID:    p.SellerID,
		Rating:      p.Rating,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
