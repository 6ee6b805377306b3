package repository

import (
	"context"

	"market/internal/domain/entity"
	"market/internal/errors"
)

// ErrCategoryNotFound is returned when a category is absent or soft-deleted.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryRepository defines persistence operations for categories.
// Every read is restricted to active rows.
type CategoryRepository interface {
	FindActiveByID(ctx context.Context, id int64) (*entity.Category, error)
	ListActive(ctx context.Context) ([]*entity.Category, error)
	Create(ctx context.Context, category *entity.Category) error

	// Update writes name and parent_id of an existing category.
	Update(ctx context.Context, category *entity.Category) error

	// SoftDelete flips is_active to false. Children are left untouched.
	SoftDelete(ctx context.Context, id int64) error
}
