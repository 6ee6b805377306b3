package notification

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"market/internal/domain/service"
	"market/internal/errors"

	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMessagingClient struct {
	sent []*messaging.Message
	err  error
}

func (f *fakeMessagingClient) Send(_ context.Context, message *messaging.Message) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.sent = append(f.sent, message)

	return "projects/market/messages/1", nil
}

func TestFirebaseService_SendTopicNotification(t *testing.T) {
	client := &fakeMessagingClient{}
	svc := &firebaseService{client: client}

	err := svc.SendTopicNotification(context.Background(), service.SellerTopic(9), "New review", "4/5 on Kettle",
		map[string]string{"product_id": "3"})
	require.NoError(t, err)

	require.Len(t, client.sent, 1)
	assert.Equal(t, "seller-9", client.sent[0].Topic)
	assert.Equal(t, "New review", client.sent[0].Notification.Title)
	assert.Equal(t, "3", client.sent[0].Data["product_id"])
}

func TestFirebaseService_SendFailure(t *testing.T) {
	svc := &firebaseService{client: &fakeMessagingClient{err: errors.New("quota exceeded")}}

	err := svc.SendTopicNotification(context.Background(), "seller-1", "t", "b", nil)
	assert.ErrorContains(t, err, "seller-1")
}

func TestLogOnlyService(t *testing.T) {
	svc := NewLogOnlyService(slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.NoError(t, svc.SendTopicNotification(context.Background(), "seller-1", "t", "b", nil))
}
