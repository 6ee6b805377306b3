package service

import (
	"context"
	"time"
)

// RatingRecomputedEvent is published after a product rating is rewritten.
type RatingRecomputedEvent struct {
	RequestID    string    `json:"request_id,omitempty"`
	ProductID    int64     `json:"product_id"`
	Rating       float64   `json:"rating"`
	Trigger      string    `json:"trigger"`
	RecomputedAt time.Time `json:"recomputed_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishRatingRecomputed publishes a rating change for downstream consumers.
	PublishRatingRecomputed(ctx context.Context, event *RatingRecomputedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
