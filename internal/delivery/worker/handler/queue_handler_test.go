package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	deliverycontext "market/internal/delivery/context"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/service"
	mockUsecase "market/internal/mocks/usecase"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// recordingAcker remembers how a delivery was settled.
type recordingAcker struct {
	acked    bool
	nacked   bool
	requeued bool
}

func (a *recordingAcker) Ack(uint64, bool) error {
	a.acked = true

	return nil
}

func (a *recordingAcker) Nack(_ uint64, _ bool, requeue bool) error {
	a.nacked = true
	a.requeued = requeue

	return nil
}

func (a *recordingAcker) Reject(_ uint64, requeue bool) error {
	return a.Nack(0, false, requeue)
}

func newQueueHandler(t *testing.T) (*QueueHandler, *mockUsecase.MockRatingEventUsecase) {
	events := mockUsecase.NewMockRatingEventUsecase(t)

	return NewQueueHandler(QueueHandlerParams{
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		RatingEvents: events,
	}), events
}

func newDelivery(t *testing.T, payload any, acker amqp.Acknowledger) amqp.Delivery {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	return amqp.Delivery{Acknowledger: acker, DeliveryTag: 7, Body: body}
}

func TestQueueHandler_HandleDelivery(t *testing.T) {
	event := service.RatingRecomputedEvent{ProductID: 11, Rating: 3, Trigger: "review.deleted"}

	tests := []struct {
		name         string
		payload      any
		setup        func(events *mockUsecase.MockRatingEventUsecase)
		wantAck      bool
		wantRequeued bool
	}{
		{
			name:    "processed",
			payload: event,
			setup: func(events *mockUsecase.MockRatingEventUsecase) {
				events.EXPECT().HandleRatingRecomputed(mock.Anything, mock.MatchedBy(func(e *service.RatingRecomputedEvent) bool {
					return e.ProductID == 11 && e.Trigger == "review.deleted"
				})).Return(nil)
			},
			wantAck: true,
		},
		{
			name:    "stale product is acked",
			payload: event,
			setup: func(events *mockUsecase.MockRatingEventUsecase) {
				events.EXPECT().HandleRatingRecomputed(mock.Anything, mock.Anything).Return(domainerrors.ErrProductNotFound)
			},
			wantAck: true,
		},
		{
			name:    "transient failure is requeued",
			payload: event,
			setup: func(events *mockUsecase.MockRatingEventUsecase) {
				events.EXPECT().HandleRatingRecomputed(mock.Anything, mock.Anything).Return(errors.New("fcm unavailable"))
			},
			wantRequeued: true,
		},
		{
			name:    "event without product is dropped",
			payload: map[string]any{"rating": 2},
		},
		{
			name:    "body is not json",
			payload: "not an event",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, events := newQueueHandler(t)
			if tt.setup != nil {
				tt.setup(events)
			}
			acker := &recordingAcker{}

			require.NoError(t, h.HandleDelivery(context.Background(), newDelivery(t, tt.payload, acker)))

			assert.Equal(t, tt.wantAck, acker.acked)
			assert.Equal(t, !tt.wantAck, acker.nacked)
			assert.Equal(t, tt.wantRequeued, acker.requeued)
		})
	}
}

func TestQueueHandler_RequestID(t *testing.T) {
	tests := []struct {
		name string
		mod  func(d *amqp.Delivery)
		want string
	}{
		{name: "header wins", mod: func(d *amqp.Delivery) {
			d.Headers = amqp.Table{"request_id": "from-header"}
			d.CorrelationId = "from-correlation"
		}, want: "from-header"},
		{name: "correlation id", mod: func(d *amqp.Delivery) { d.CorrelationId = "from-correlation" }, want: "from-correlation"},
		{name: "event payload", mod: func(*amqp.Delivery) {}, want: "from-event"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, events := newQueueHandler(t)

			var gotID string
			events.EXPECT().HandleRatingRecomputed(mock.Anything, mock.Anything).
				RunAndReturn(func(ctx context.Context, _ *service.RatingRecomputedEvent) error {
					gotID = deliverycontext.GetRequestIDFromContext(ctx)

					return nil
				})

			d := newDelivery(t, service.RatingRecomputedEvent{RequestID: "from-event", ProductID: 3}, &recordingAcker{})
			tt.mod(&d)

			require.NoError(t, h.HandleDelivery(context.Background(), d))
			assert.Equal(t, tt.want, gotID)
		})
	}
}

func TestQueueHandler_UnsettledDelivery(t *testing.T) {
	h, events := newQueueHandler(t)
	events.EXPECT().HandleRatingRecomputed(mock.Anything, mock.Anything).Return(nil)

	d := newDelivery(t, service.RatingRecomputedEvent{ProductID: 3}, nil)

	assert.Error(t, h.HandleDelivery(context.Background(), d))
}
