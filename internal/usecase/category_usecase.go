package usecase

import (
	"context"

	"market/internal/domain/entity"
	"market/internal/domain/policy"
)

// CategoryInput carries the mutable fields of a category.
// A nil ParentID makes the category a root.
type CategoryInput struct {
	Name     string
	ParentID *int64
}

// CategoryUsecase defines catalog tree operations. Mutations are admin only.
type CategoryUsecase interface {
	ListCategories(ctx context.Context) ([]*entity.Category, error)
	GetCategory(ctx context.Context, id int64) (*entity.Category, error)
	CreateCategory(ctx context.Context, actor policy.Actor, input *CategoryInput) (*entity.Category, error)

	// UpdateCategory replaces name and parent. A new parent must be active and
	// must not make the category its own ancestor.
	UpdateCategory(ctx context.Context, actor policy.Actor, id int64, input *CategoryInput) (*entity.Category, error)

	// DeleteCategory soft-deletes the category without touching its children or products.
	DeleteCategory(ctx context.Context, actor policy.Actor, id int64) (*entity.Category, error)
}
