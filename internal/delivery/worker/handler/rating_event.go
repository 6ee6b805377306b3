package handler

import (
	"context"
	"log/slog"

	domainerrors "market/internal/domain/errors"
	"market/internal/domain/service"
	"market/internal/usecase"

	"github.com/pkg/errors"
)

// outcome tells a transport whether a well-formed event is done or must be retried.
type outcome int

const (
	outcomeAck outcome = iota
	outcomeRetry
)

// processRatingEvent runs the usecase. Events for products that are gone can
// never succeed and are acknowledged; any other failure is retried.
func processRatingEvent(ctx context.Context, logger *slog.Logger, events usecase.RatingEventUsecase, event *service.RatingRecomputedEvent) outcome {
	err := events.HandleRatingRecomputed(ctx, event)
	switch {
	case err == nil:
		return outcomeAck
	case errors.Is(err, domainerrors.ErrProductNotFound):
		logger.Info("[Worker] Dropping event for missing product", slog.Int64("product_id", event.ProductID))

		return outcomeAck
	default:
		logger.Error("[Worker] Failed to process rating event",
			slog.Int64("product_id", event.ProductID),
			slog.Any("error", err),
		)

		return outcomeRetry
	}
}
