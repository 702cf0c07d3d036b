package notification

import (
	"context"
	"fmt"

	"github.com/JL1365/hr3-backoffice-go/internal/domain/notification"
)

type NotificationService struct {
	repo notification.Repository
}

func NewNotificationService(repo notification.Repository) *NotificationService {
	return &NotificationService{repo: repo}
}

func (s *NotificationService) MyNotifications(ctx context.Context, recipientID string) ([]notification.Notification, error) {
	notifications, err := s.repo.ListByRecipient(ctx, recipientID)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return notifications, nil
}

func (s *NotificationService) MarkAsRead(ctx context.Context, recipientID, notificationID string) error {
	return s.repo.MarkAsRead(ctx, recipientID, notificationID)
}
