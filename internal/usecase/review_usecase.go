package usecase

import (
	"context"

	"market/internal/domain/entity"
	"market/internal/domain/policy"
)

// ReviewInput carries the fields a buyer submits. ProductID cannot change on update.
type ReviewInput struct {
	ProductID int64
	Comment   *string
	Grade     int
}

// ReviewUsecase defines review operations. Every mutation recomputes the
// product's rating once the review change has committed.
type ReviewUsecase interface {
	ListReviews(ctx context.Context) ([]*entity.Review, error)

	// ListProductReviews returns the active reviews of an active product.
	ListProductReviews(ctx context.Context, productID int64) ([]*entity.Review, error)
	CreateReview(ctx context.Context, actor policy.Actor, input *ReviewInput) (*entity.Review, error)
	UpdateReview(ctx context.Context, actor policy.Actor, id int64, input *ReviewInput) (*entity.Review, error)
	DeleteReview(ctx context.Context, actor policy.Actor, id int64) (*entity.Review, error)
}

// RatingAggregator rewrites a product's rating from its active reviews.
type RatingAggregator interface {
	// Recompute stores the mean active grade (0 when there are none) and returns it.
	// trigger names the mutation that caused the recompute and is attached to the published event.
	Recompute(ctx context.Context, productID int64, trigger string) (float64, error)
}
