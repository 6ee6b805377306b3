package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"market/config"
	"market/internal/domain/constants"
	"market/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PostsPushMessage(t *testing.T) {
	var received PushMessage
	var requestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, constants.TopicRatingRecomputed, discardLogger())
	event := &service.RatingRecomputedEvent{
		RequestID:    "req-1",
		ProductID:    12,
		Rating:       3.5,
		Trigger:      "review.created",
		RecomputedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	require.NoError(t, publisher.PublishRatingRecomputed(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "12", received.Message.Attributes["product_id"])
	assert.Equal(t, "review.created", received.Message.Attributes["trigger"])
	assert.Equal(t, "projects/local/subscriptions/rating.recomputed", received.Subscription)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var decoded service.RatingRecomputedEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, int64(12), decoded.ProductID)
	assert.InDelta(t, 3.5, decoded.Rating, 1e-9)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, constants.TopicRatingRecomputed, discardLogger())

	err := publisher.PublishRatingRecomputed(context.Background(), &service.RatingRecomputedEvent{ProductID: 1})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestNewPublisher_ProviderSelection(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr bool
	}{
		{name: "nil config", cfg: nil},
		{name: "none", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderNone}},
		{name: "local", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:1"}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, wantErr: true},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}, wantErr: true},
		{name: "rabbitmq without url", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderRabbitMQ}, wantErr: true},
		{name: "unknown", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := newPublisher(ctx, tt.cfg, discardLogger())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, publisher)
			assert.NoError(t, publisher.Close())
		})
	}
}
