package postgresql

import (
	"context"
	"fmt"

	"github.com/JL1365/hr3-backoffice-go/internal/domain/notification"
	"github.com/JL1365/hr3-backoffice-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type notificationRepository struct {
	db *database.DB
}

func NewNotificationRepository(db *database.DB) notification.Repository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) CreateBulk(ctx context.Context, notifications []notification.Notification) error {
	q := GetQuerier(ctx, r.db)

	for _, n := range notifications {
		_, err := q.Exec(ctx, `
			INSERT INTO notifications (recipient_id, type, message, is_read)
			VALUES ($1, $2, $3, false)
		`, n.RecipientID, n.Type, n.Message)
		if err != nil {
			return fmt.Errorf("failed to insert notification for %s: %w", n.RecipientID, err)
		}
	}

	return nil
}

func (r *notificationRepository) ListByRecipient(ctx context.Context, recipientID string) ([]notification.Notification, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, recipient_id, type, message, is_read, created_at
		FROM notifications
		WHERE recipient_id = $1
		ORDER BY created_at DESC
	`, recipientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	var notifications []notification.Notification
	for rows.Next() {
		var n notification.Notification
		if err := rows.Scan(&n.ID, &n.RecipientID, &n.Type, &n.Message, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		notifications = append(notifications, n)
	}

	return notifications, nil
}

func (r *notificationRepository) MarkAsRead(ctx context.Context, recipientID, notificationID string) error {
	q := GetQuerier(ctx, r.db)

	var id string
	err := q.QueryRow(ctx, `
		UPDATE notifications
		SET is_read = true
		WHERE id = $1 AND recipient_id = $2
		RETURNING id
	`, notificationID, recipientID).Scan(&id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return notification.ErrNotificationNotFound
		}
		return fmt.Errorf("failed to mark notification read: %w", err)
	}

	return nil
}
