package notification

import "context"

type Repository interface {
	CreateBulk(ctx context.Context, notifications []Notification) error
	ListByRecipient(ctx context.Context, recipientID string) ([]Notification, error)
	MarkAsRead(ctx context.Context, recipientID, notificationID string) error
}
