package usecase

import (
	"context"

	"market/internal/domain/service"
)

// RatingEventUsecase reacts to rating changes delivered by the event bus.
type RatingEventUsecase interface {
	// HandleRatingRecomputed tells the product's seller about the new rating.
	// ErrProductNotFound means the event is stale and must not be retried.
	HandleRatingRecomputed(ctx context.Context, event *service.RatingRecomputedEvent) error
}
