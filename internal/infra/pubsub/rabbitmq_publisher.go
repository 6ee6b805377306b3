package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"market/internal/domain/service"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
)

// rabbitMQPublisher publishes events as persistent JSON messages on a durable queue.
type rabbitMQPublisher struct {
	conn   *amqp.Connection
	ch     *amqp.Channel
	queue  string
	logger *slog.Logger
}

// NewRabbitMQPublisher dials the broker and declares the durable queue.
func NewRabbitMQPublisher(url, queue string, logger *slog.Logger) (service.EventPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, errors.Wrap(err, "failed to dial rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()

		return nil, errors.Wrap(err, "failed to open rabbitmq channel")
	}

	if _, err := ch.QueueDeclare(
		queue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()

		return nil, errors.Wrapf(err, "failed to declare queue %s", queue)
	}

	return &rabbitMQPublisher{conn: conn, ch: ch, queue: queue, logger: logger}, nil
}

func (p *rabbitMQPublisher) PublishRatingRecomputed(ctx context.Context, event *service.RatingRecomputedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	headers := amqp.Table{}
	for k, v := range eventAttributes(event) {
		headers[k] = v
	}

	err = p.ch.PublishWithContext(ctx,
		"",      // default exchange
		p.queue, // routing key = queue
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:   "application/json",
			DeliveryMode:  amqp.Persistent,
			Timestamp:     time.Now().UTC(),
			CorrelationId: event.RequestID,
			Headers:       headers,
			Body:          body,
		},
	)
	if err != nil {
		return errors.Wrap(err, "failed to publish to rabbitmq")
	}

	p.logger.DebugContext(ctx, "[RabbitMQ] Event published",
		slog.String("queue", p.queue),
		slog.Int64("product_id", event.ProductID),
	)

	return nil
}

func (p *rabbitMQPublisher) Close() error {
	var errs []error
	if p.ch != nil {
		errs = append(errs, p.ch.Close())
	}
	if p.conn != nil {
		errs = append(errs, p.conn.Close())
	}

	for _, err := range errs {
		if err != nil && !errors.Is(err, amqp.ErrClosed) {
			return errors.WithStack(err)
		}
	}

	return nil
}
