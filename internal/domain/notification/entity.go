package notification

import "time"

type NotificationType string

const (
	TypePayrollFinalized NotificationType = "payroll_finalized"
)

type Notification struct {
	ID          string
	RecipientID string
	Type        NotificationType
	Message     string
	IsRead      bool
	CreatedAt   time.Time
}
