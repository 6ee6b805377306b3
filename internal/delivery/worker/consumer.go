package worker

import (
	"context"
	"log/slog"
	"sync"

	"market/config"
	"market/internal/delivery"
	"market/internal/delivery/worker/handler"
	"market/internal/domain/constants"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/fx"
)

const (
	consumerTag      = "market-worker"
	consumerPrefetch = 10
)

type queueConsumer struct {
	enabled bool
	url     string
	queue   string
	logger  *slog.Logger
	handler *handler.QueueHandler

	mu       sync.Mutex
	conn     *amqp.Connection
	stopping bool
}

// ConsumerParams holds dependencies for the RabbitMQ consumer
type ConsumerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	QueueHandler *handler.QueueHandler
}

// NewConsumer creates the consumer for the queue the rabbitmq publisher
// writes to. It stays idle unless pubsub.provider is rabbitmq.
func NewConsumer(params ConsumerParams) delivery.Delivery {
	c := &queueConsumer{
		logger:  params.Logger,
		handler: params.QueueHandler,
	}

	if cfg := params.Cfg.PubSub; cfg != nil && cfg.Provider == constants.PubSubProviderRabbitMQ {
		c.enabled = true
		c.url = cfg.RabbitMQURL
		c.queue = cfg.TopicID
		if c.queue == "" {
			c.queue = constants.TopicRatingRecomputed
		}
	}

	params.Lc.Append(fx.Hook{
		OnStop: c.stop,
	})

	return c
}

// Serve consumes until stop closes the connection. A connection lost for
// any other reason is returned as an error so the process shuts down.
func (c *queueConsumer) Serve(ctx context.Context) error {
	if !c.enabled {
		c.logger.Debug("RabbitMQ consumer disabled")

		return nil
	}

	conn, err := amqp.Dial(c.url)
	if err != nil {
		return errors.Wrap(err, "failed to dial rabbitmq")
	}
	c.mu.Lock()
	c.conn = conn
	c.mu.Unlock()

	ch, err := conn.Channel()
	if err != nil {
		return errors.Wrap(err, "failed to open rabbitmq channel")
	}
	if err := ch.Qos(consumerPrefetch, 0, false); err != nil {
		return errors.Wrap(err, "failed to set rabbitmq prefetch")
	}
	if _, err := ch.QueueDeclare(c.queue, true, false, false, false, nil); err != nil {
		return errors.Wrapf(err, "failed to declare queue %s", c.queue)
	}

	msgs, err := ch.Consume(c.queue, consumerTag, false, false, false, false, nil)
	if err != nil {
		return errors.Wrapf(err, "failed to consume queue %s", c.queue)
	}

	c.logger.Info("Starting rating event consumer", slog.String("queue", c.queue))
	for d := range msgs {
		if err := c.handler.HandleDelivery(ctx, d); err != nil {
			c.logger.Warn("Failed to settle rating event delivery", slog.Any("error", err))
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stopping {
		return nil
	}

	return errors.New("rabbitmq deliveries channel closed")
}

func (c *queueConsumer) stop(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopping = true
	if c.conn == nil {
		return nil
	}

	c.logger.Info("Shutting down rating event consumer")
	if err := c.conn.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
		return errors.WithStack(err)
	}

	return nil
}
