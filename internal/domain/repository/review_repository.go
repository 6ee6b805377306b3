package repository

import (
	"context"

	"market/internal/domain/entity"
	"market/internal/errors"
)

// ErrReviewNotFound is returned when a review is absent or soft-deleted.
var ErrReviewNotFound = errors.New("review not found")

// ReviewRepository defines persistence operations for reviews.
type ReviewRepository interface {
	FindActiveByID(ctx context.Context, id int64) (*entity.Review, error)

	// FindActiveByUserAndProduct returns ErrReviewNotFound when the user holds
	// no active review for the product.
	FindActiveByUserAndProduct(ctx context.Context, userID, productID int64) (*entity.Review, error)

	ListActive(ctx context.Context) ([]*entity.Review, error)
	ListActiveByProduct(ctx context.Context, productID int64) ([]*entity.Review, error)
	Create(ctx context.Context, review *entity.Review) error

	// Update writes comment and grade only.
	Update(ctx context.Context, review *entity.Review) error

	SoftDelete(ctx context.Context, id int64) error

	// AverageActiveGrade returns the mean grade over active reviews of the
	// product, or 0 when there are none.
	AverageActiveGrade(ctx context.Context, productID int64) (float64, error)
}
