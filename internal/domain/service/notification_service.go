package service

import (
	"context"
	"strconv"
)

// SellerTopic returns the push topic every device of a seller subscribes to.
func SellerTopic(sellerID int64) string {
	return "seller-" + strconv.FormatInt(sellerID, 10)
}

// NotificationService defines the interface for push notification services
type NotificationService interface {
	// SendTopicNotification sends a push notification to every device subscribed to the topic.
	SendTopicNotification(ctx context.Context, topic, title, body string, data map[string]string) error
}
