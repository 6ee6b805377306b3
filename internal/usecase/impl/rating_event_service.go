package impl

import (
	"context"
	"log/slog"
	"strconv"

	deliverycontext "market/internal/delivery/context"
	"market/internal/domain/repository"
	"market/internal/domain/service"
	"market/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const ratingUpdatedTitle = "Rating updated"

type ratingEventService struct {
	productRepo repository.ProductRepository
	notifier    service.NotificationService
	logger      *slog.Logger
}

// RatingEventServiceParams holds dependencies for the rating event consumer, injected by Fx.
type RatingEventServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Notifier    service.NotificationService
	Logger      *slog.Logger
}

// NewRatingEventService creates the consumer side of rating.recomputed.
func NewRatingEventService(params RatingEventServiceParams) usecase.RatingEventUsecase {
	return &ratingEventService{
		productRepo: params.ProductRepo,
		notifier:    params.Notifier,
		logger:      params.Logger,
	}
}

func (srv *ratingEventService) HandleRatingRecomputed(ctx context.Context, event *service.RatingRecomputedEvent) error {
	product, err := srv.productRepo.FindActiveByID(ctx, event.ProductID)
	if err != nil {
		return translateProductNotFound(err)
	}

	rating := strconv.FormatFloat(event.Rating, 'f', 2, 64)
	body := product.Name + " is now rated " + rating
	data := map[string]string{
		"product_id": strconv.FormatInt(product.ID, 10),
		"rating":     rating,
		"trigger":    event.Trigger,
	}

	if err := srv.notifier.SendTopicNotification(ctx, service.SellerTopic(product.SellerID), ratingUpdatedTitle, body, data); err != nil {
		return errors.Wrapf(err, "failed to notify seller %d", product.SellerID)
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Seller notified of rating change",
		slog.Int64("productID", product.ID),
		slog.Int64("sellerID", product.SellerID),
		slog.String("rating", rating),
	)

	return nil
}
