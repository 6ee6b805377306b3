package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "market/internal/delivery/context"
	"market/internal/domain/repository"
	"market/internal/domain/service"
	"market/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Rating recompute triggers attached to published events.
const (
	TriggerReviewCreated = "review.created"
	TriggerReviewUpdated = "review.updated"
	TriggerReviewDeleted = "review.deleted"
)

type ratingAggregator struct {
	txManager repository.TransactionManager
	publisher service.EventPublisher
	now       func() time.Time
	logger    *slog.Logger
}

// RatingAggregatorParams holds dependencies for RatingAggregator, injected by Fx.
type RatingAggregatorParams struct {
	fx.In

	TxManager repository.TransactionManager
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewRatingAggregator creates the aggregator that owns products.rating.
func NewRatingAggregator(params RatingAggregatorParams) usecase.RatingAggregator {
	return &ratingAggregator{
		txManager: params.TxManager,
		publisher: params.Publisher,
		now:       time.Now,
		logger:    params.Logger,
	}
}

func (agg *ratingAggregator) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, agg.logger)
}

// Recompute averages active grades and stores the result in one transaction,
// then publishes the new rating. Publish failures are logged only.
func (agg *ratingAggregator) Recompute(ctx context.Context, productID int64, trigger string) (float64, error) {
	var rating float64
	err := agg.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		avg, err := repoFactory.NewReviewRepository().AverageActiveGrade(ctx, productID)
		if err != nil {
			return errors.Wrap(err, "failed to average active grades")
		}

		if err := repoFactory.NewProductRepository().UpdateRating(ctx, productID, avg); err != nil {
			return errors.Wrap(err, "failed to store product rating")
		}
		rating = avg

		return nil
	})
	if err != nil {
		return 0, errors.Wrapf(err, "failed to recompute rating of product %d", productID)
	}

	agg.log(ctx).Debug("Product rating recomputed",
		slog.Int64("productID", productID),
		slog.Float64("rating", rating),
		slog.String("trigger", trigger),
	)

	event := &service.RatingRecomputedEvent{
		RequestID:    deliverycontext.GetRequestIDFromContext(ctx),
		ProductID:    productID,
		Rating:       rating,
		Trigger:      trigger,
		RecomputedAt: agg.now(),
	}
	if err := agg.publisher.PublishRatingRecomputed(ctx, event); err != nil {
		agg.log(ctx).Warn("Failed to publish rating event", slog.Int64("productID", productID), slog.Any("error", err))
	}

	return rating, nil
}
