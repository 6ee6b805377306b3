package handler

import (
	"context"
	"encoding/json"
	"log/slog"

	deliverycontext "market/internal/delivery/context"
	"market/internal/domain/service"
	"market/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/fx"
)

// QueueHandler consumes rating.recomputed events published to RabbitMQ.
// Malformed bodies are rejected without requeue, transient failures are
// requeued and everything else is acked.
type QueueHandler struct {
	logger       *slog.Logger
	ratingEvents usecase.RatingEventUsecase
}

// QueueHandlerParams holds dependencies for the QueueHandler
type QueueHandlerParams struct {
	fx.In

	Logger       *slog.Logger
	RatingEvents usecase.RatingEventUsecase
}

// NewQueueHandler creates a new RabbitMQ delivery handler
func NewQueueHandler(params QueueHandlerParams) *QueueHandler {
	return &QueueHandler{
		logger:       params.Logger,
		ratingEvents: params.RatingEvents,
	}
}

// HandleDelivery processes one delivery and settles it with the broker.
func (h *QueueHandler) HandleDelivery(ctx context.Context, d amqp.Delivery) error {
	var event service.RatingRecomputedEvent
	if err := json.Unmarshal(d.Body, &event); err != nil || event.ProductID <= 0 {
		h.logger.Error("[Worker] Failed to parse queued rating event",
			slog.Uint64("delivery_tag", d.DeliveryTag),
			slog.Any("error", err),
		)

		return errors.WithStack(d.Nack(false, false))
	}

	ctx, reqLogger := deliverycontext.WithRequestScope(ctx, h.logger, deliveryRequestID(&d, &event))

	reqLogger.Info("[Worker] Processing queued rating event",
		slog.Uint64("delivery_tag", d.DeliveryTag),
		slog.Int64("product_id", event.ProductID),
		slog.String("trigger", event.Trigger),
	)

	if processRatingEvent(ctx, reqLogger, h.ratingEvents, &event) == outcomeRetry {
		return errors.WithStack(d.Nack(false, true))
	}

	return errors.WithStack(d.Ack(false))
}

// deliveryRequestID prefers the request_id header, then the correlation id,
// then the event payload.
func deliveryRequestID(d *amqp.Delivery, event *service.RatingRecomputedEvent) string {
	if requestID, ok := d.Headers["request_id"].(string); ok && requestID != "" {
		return requestID
	}
	if d.CorrelationId != "" {
		return d.CorrelationId
	}
	if event.RequestID != "" {
		return event.RequestID
	}

	return uuid.NewString()
}
