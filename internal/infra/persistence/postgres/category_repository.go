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

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

func (repo *categoryRepository) FindActiveByID(ctx context.Context, id int64) (*entity.Category, error) {
	categoryM, err := firstActive[model.CategoryModel](ctx, repo.db, id, repository.ErrCategoryNotFound)
	if err != nil {
		return nil, err
	}

	return toCategoryDomain(categoryM), nil
}

func (repo *categoryRepository) ListActive(ctx context.Context) ([]*entity.Category, error) {
	rows, err := listActive[model.CategoryModel](ctx, repo.db)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return mapSlice(rows, toCategoryDomain), nil
}

func (repo *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryM := fromCategoryDomain(category)

	if err := repo.db.WithContext(ctx).Create(categoryM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrParentCategoryNotFound.WrapMessage("parent reference rejected by storage")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create category")
	}

	category.ID = categoryM.ID

	return nil
}

// Update writes name and parent_id. A nil ParentID is written as NULL.
func (repo *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where(activeByID, category.ID, true).
		Updates(map[string]any{
			"name":      category.Name,
			"parent_id": category.ParentID,
		})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrParentCategoryNotFound.WrapMessage("parent reference rejected by storage")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update category")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCategoryNotFound
	}

	return nil
}

func (repo *categoryRepository) SoftDelete(ctx context.Context, id int64) error {
	return softDelete[model.CategoryModel](ctx, repo.db, id, repository.ErrCategoryNotFound)
}

func toCategoryDomain(m *model.CategoryModel) *entity.Category {
	return &entity.Category{
		ID:       m.ID,
		Name:     m.Name,
		ParentID: m.ParentID,
		IsActive: m.IsActive,
	}
}

func fromCategoryDomain(c *entity.Category) *model.CategoryModel {
	return &model.CategoryModel{
		ID:       c.ID,
		Name:     c.Name,
		ParentID: c.ParentID,
		IsActive: c.IsActive,
	}
}
